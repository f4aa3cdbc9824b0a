package service

import (
	"context"
	"fmt"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
)

type outfitService struct {
	outfitRepo repository.OutfitRepository
	userRepo   repository.UserRepository
}

func NewOutfitService(outfitRepo repository.OutfitRepository, userRepo repository.UserRepository) OutfitService {
	return &outfitService{outfitRepo: outfitRepo, userRepo: userRepo}
}

func (s *outfitService) AddOutfit(ctx context.Context, ownerID string, outfit *domain.Outfit) error {
	if outfit.Title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	if outfit.DailyPriceCents <= 0 {
		return fmt.Errorf("daily price must be positive: %w", domain.ErrValidation)
	}
	outfit.OwnerID = ownerID
	if outfit.Status == "" {
		outfit.Status = domain.OutfitStatusAvailable
	}
	return s.outfitRepo.Create(ctx, outfit)
}

func (s *outfitService) GetOutfit(ctx context.Context, id string) (*domain.Outfit, error) {
	outfit, err := s.outfitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetByID(ctx, outfit.OwnerID); err == nil {
		outfit.Owner = owner
	}
	return outfit, nil
}

func (s *outfitService) ListOutfits(ctx context.Context) ([]domain.Outfit, error) {
	return s.outfitRepo.List(ctx)
}

func (s *outfitService) ListMyOutfits(ctx context.Context, ownerID string) ([]domain.Outfit, error) {
	return s.outfitRepo.ListByOwner(ctx, ownerID)
}
