package service

import (
	"context"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
)

type rentalQueryService struct {
	rentalRepo  repository.RentalRepository
	historyRepo repository.RentalHistoryRepository
}

func NewRentalQueryService(
	rentalRepo repository.RentalRepository,
	historyRepo repository.RentalHistoryRepository,
) RentalQueryService {
	return &rentalQueryService{
		rentalRepo:  rentalRepo,
		historyRepo: historyRepo,
	}
}

func (s *rentalQueryService) MyRentals(ctx context.Context, userID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByParticipant(ctx, userID)
}

func (s *rentalQueryService) History(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	return s.historyRepo.ListByParticipant(ctx, userID)
}
