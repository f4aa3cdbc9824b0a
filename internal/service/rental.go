package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/repository"
	"closetshare-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	outfitRepo repository.OutfitRepository
	userRepo   repository.UserRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	outfitRepo repository.OutfitRepository,
	userRepo repository.UserRepository,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		outfitRepo: outfitRepo,
		userRepo:   userRepo,
	}
}

var liveStatuses = []domain.RentalStatus{domain.RentalStatusPending, domain.RentalStatusActive}

func (s *rentalService) RequestRental(ctx context.Context, renterID, outfitID, startDate, endDate string) (*domain.Rental, error) {
	outfit, err := s.outfitRepo.GetByID(ctx, outfitID)
	if err != nil {
		return nil, err
	}
	if outfit.OwnerID == renterID {
		return nil, fmt.Errorf("you cannot rent your own outfit: %w", domain.ErrValidation)
	}

	existing, err := s.rentalRepo.FindByRenterAndOutfit(ctx, renterID, outfitID, liveStatuses)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("you already have a pending or active rental for this outfit: %w", domain.ErrConflict)
	}
	rented, err := s.rentalRepo.HasWithStatusForOutfit(ctx, outfitID, []domain.RentalStatus{domain.RentalStatusActive})
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, fmt.Errorf("outfit is currently rented out: %w", domain.ErrConflict)
	}

	start, end, days, err := normalizePeriod(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.GetByID(ctx, outfit.OwnerID)
	if err != nil {
		return nil, err
	}

	rt := &domain.Rental{
		Outfit: domain.OutfitSnapshot{
			OutfitID:        outfit.ID,
			Title:           outfit.Title,
			Description:     outfit.Description,
			ImageURLs:       outfit.ImageURLs,
			DailyPriceCents: outfit.DailyPriceCents,
		},
		Owner:  owner.Party(),
		Renter: renter.Party(),
		Period: domain.RentalPeriod{StartDate: start, EndDate: end, TotalDays: days},
		Payment: domain.Payment{
			TotalAmountCents: days * outfit.DailyPriceCents,
			Status:           domain.PaymentStatusPending,
		},
		Status: domain.RentalStatusPending,
	}

	entry := domain.SnapshotOf(rt, domain.HistoryStatusPending, rt.Renter)
	if err := s.rentalRepo.CreateWithHistory(ctx, rt, entry); err != nil {
		return nil, err
	}
	logger.Info("rental requested", "rental_id", rt.ID, "outfit_id", outfitID, "renter_id", renterID)
	return rt, nil
}

func (s *rentalService) AcceptRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Owner.UserID != ownerID {
		return nil, fmt.Errorf("only the owner may accept a rental: %w", domain.ErrUnauthorized)
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, fmt.Errorf("rental is not pending: %w", domain.ErrInvalidState)
	}
	if rt.Payment.ReceiptImage == nil {
		return nil, fmt.Errorf("payment receipt has not been uploaded: %w", domain.ErrValidation)
	}

	version := rt.Version
	rt.Status = domain.RentalStatusActive
	entry := domain.SnapshotOf(rt, domain.HistoryStatusAccepted, rt.Owner)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) DeclineRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Owner.UserID != ownerID {
		return nil, fmt.Errorf("only the owner may decline a rental: %w", domain.ErrUnauthorized)
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, fmt.Errorf("rental is not pending: %w", domain.ErrInvalidState)
	}

	version := rt.Version
	// Decline and cancel share the CANCELLED terminal status on the record.
	// The history entry keeps them distinguishable.
	rt.Status = domain.RentalStatusCancelled
	entry := domain.SnapshotOf(rt, domain.HistoryStatusDeclined, rt.Owner)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Renter.UserID != renterID {
		return nil, fmt.Errorf("only the renter may cancel a rental: %w", domain.ErrUnauthorized)
	}
	if rt.Status != domain.RentalStatusPending {
		return nil, fmt.Errorf("rental is not pending: %w", domain.ErrInvalidState)
	}

	version := rt.Version
	rt.Status = domain.RentalStatusCancelled
	entry := domain.SnapshotOf(rt, domain.HistoryStatusCancelled, rt.Renter)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, userID, rentalID string) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if !rt.IsParticipant(userID) {
		return fmt.Errorf("only a participant may delete a rental: %w", domain.ErrUnauthorized)
	}
	if rt.Status != domain.RentalStatusPending {
		return fmt.Errorf("only pending rentals can be deleted: %w", domain.ErrInvalidState)
	}
	// Hard delete, no history entry.
	return s.rentalRepo.Delete(ctx, rentalID)
}

func (s *rentalService) UploadReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Renter.UserID != renterID {
		return nil, fmt.Errorf("only the renter may upload a receipt: %w", domain.ErrUnauthorized)
	}

	version := rt.Version
	now := time.Now().UTC().Format(time.RFC3339)
	var entry *domain.RentalHistoryEntry
	if rt.Extension.InFlight() {
		rt.Extension.ReceiptImage = &receiptURL
		rt.Extension.TransactionDate = &now
		entry = domain.SnapshotOf(rt, domain.HistoryStatusExtensionReceiptUploaded, rt.Renter)
	} else {
		rt.Payment.ReceiptImage = &receiptURL
		rt.Payment.TransactionDate = &now
		rt.Payment.Status = domain.PaymentStatusCompleted
		entry = domain.SnapshotOf(rt, domain.HistoryStatusReceiptUploaded, rt.Renter)
	}
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) RequestExtension(ctx context.Context, renterID, rentalID, startDate, endDate string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Renter.UserID != renterID {
		return nil, fmt.Errorf("only the renter may request an extension: %w", domain.ErrUnauthorized)
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, fmt.Errorf("extensions require an active rental: %w", domain.ErrInvalidState)
	}
	if rt.Extension.InFlight() {
		return nil, fmt.Errorf("an extension request is already pending: %w", domain.ErrConflict)
	}

	start, end, days, err := normalizePeriod(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}

	version := rt.Version
	// A fresh round overwrites the previous extension slot. Prior rounds stay
	// visible through the history log only.
	rt.Extension = &domain.ExtensionRequest{
		Requested:   true,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   days,
		AmountCents: days * rt.Outfit.DailyPriceCents,
		Status:      domain.ExtensionStatusPending,
	}
	entry := domain.SnapshotOf(rt, domain.HistoryStatusExtensionRequested, rt.Renter)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) UploadExtensionReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Renter.UserID != renterID {
		return nil, fmt.Errorf("only the renter may upload a receipt: %w", domain.ErrUnauthorized)
	}
	if !rt.Extension.InFlight() {
		return nil, fmt.Errorf("no pending extension request: %w", domain.ErrInvalidState)
	}

	version := rt.Version
	now := time.Now().UTC().Format(time.RFC3339)
	rt.Extension.ReceiptImage = &receiptURL
	rt.Extension.TransactionDate = &now
	entry := domain.SnapshotOf(rt, domain.HistoryStatusExtensionReceiptUploaded, rt.Renter)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) AcceptExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Owner.UserID != ownerID {
		return nil, fmt.Errorf("only the owner may accept an extension: %w", domain.ErrUnauthorized)
	}
	if !rt.Extension.InFlight() {
		return nil, fmt.Errorf("no pending extension request: %w", domain.ErrInvalidState)
	}
	if rt.Extension.ReceiptImage == nil {
		return nil, fmt.Errorf("extension receipt has not been uploaded: %w", domain.ErrValidation)
	}

	version := rt.Version
	// One-way ratchet: period and amount only ever grow.
	rt.Period.EndDate = rt.Extension.EndDate
	rt.Period.TotalDays += rt.Extension.TotalDays
	rt.Payment.TotalAmountCents += rt.Extension.AmountCents
	rt.Extension.Status = domain.ExtensionStatusAccepted
	entry := domain.SnapshotOf(rt, domain.HistoryStatusExtensionAccepted, rt.Owner)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) DeclineExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Owner.UserID != ownerID {
		return nil, fmt.Errorf("only the owner may decline an extension: %w", domain.ErrUnauthorized)
	}
	if !rt.Extension.InFlight() {
		return nil, fmt.Errorf("no pending extension request: %w", domain.ErrInvalidState)
	}

	version := rt.Version
	rt.Extension.Status = domain.ExtensionStatusDeclined
	entry := domain.SnapshotOf(rt, domain.HistoryStatusExtensionDeclined, rt.Owner)
	if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
		return nil, mapVersionConflict(err)
	}
	return rt, nil
}

func (s *rentalService) CompleteEndedRentals(ctx context.Context, cutoff string) (int, error) {
	rentals, err := s.rentalRepo.ListActiveEndedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range rentals {
		rt := &rentals[i]
		version := rt.Version
		rt.Status = domain.RentalStatusCompleted
		entry := domain.SnapshotOf(rt, domain.HistoryStatusCompleted, domain.SystemParty)
		if err := s.rentalRepo.UpdateWithHistory(ctx, rt, version, entry); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				logger.Warn("rental changed while completing, skipping", "rental_id", rt.ID)
				continue
			}
			return completed, err
		}
		completed++
	}
	return completed, nil
}

// normalizePeriod parses, validates and canonicalizes a date range and returns
// the billable day count.
func normalizePeriod(startDate, endDate string) (string, string, int32, error) {
	days, err := utils.RentalDays(startDate, endDate)
	if err != nil {
		return "", "", 0, err
	}
	start, _ := utils.ParseRentalDate(startDate)
	end, _ := utils.ParseRentalDate(endDate)
	return start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), days, nil
}

// mapVersionConflict turns a lost optimistic-concurrency race into the same
// failure the loser would have seen had it loaded after the winner.
func mapVersionConflict(err error) error {
	if errors.Is(err, domain.ErrVersionConflict) {
		return fmt.Errorf("rental was changed by a concurrent action: %w", domain.ErrInvalidState)
	}
	return err
}
