package service

import (
	"context"

	"closetshare-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, avatarURL string) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type OutfitService interface {
	AddOutfit(ctx context.Context, ownerID string, outfit *domain.Outfit) error
	GetOutfit(ctx context.Context, id string) (*domain.Outfit, error)
	ListOutfits(ctx context.Context) ([]domain.Outfit, error)
	ListMyOutfits(ctx context.Context, ownerID string) ([]domain.Outfit, error)
}

// RentalService is the lifecycle state machine. Every operation validates the
// caller's role and the current state, mutates the rental, and persists it
// together with exactly one history entry.
type RentalService interface {
	RequestRental(ctx context.Context, renterID, outfitID, startDate, endDate string) (*domain.Rental, error)
	AcceptRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	DeclineRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error)
	DeleteRental(ctx context.Context, userID, rentalID string) error
	UploadReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error)
	RequestExtension(ctx context.Context, renterID, rentalID, startDate, endDate string) (*domain.Rental, error)
	UploadExtensionReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error)
	AcceptExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	DeclineExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)

	// CompleteEndedRentals moves ACTIVE rentals whose end date lies before the
	// cutoff to COMPLETED. Invoked by the scheduler, acting as the system.
	CompleteEndedRentals(ctx context.Context, cutoff string) (int, error)
}

// RentalQueryService is the read-only projection side.
type RentalQueryService interface {
	MyRentals(ctx context.Context, userID string) ([]domain.Rental, error)
	History(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error)
}
