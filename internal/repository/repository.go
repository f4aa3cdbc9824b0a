package repository

import (
	"context"

	"closetshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type OutfitRepository interface {
	Create(ctx context.Context, outfit *domain.Outfit) error
	GetByID(ctx context.Context, id string) (*domain.Outfit, error)
	Update(ctx context.Context, outfit *domain.Outfit) error
	List(ctx context.Context) ([]domain.Outfit, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Outfit, error)
}

// RentalRepository persists the rental aggregate. Writes that correspond to a
// lifecycle transition carry the matching history entry and land in a single
// database transaction, so the audit trail can never run behind the record.
type RentalRepository interface {
	// CreateWithHistory inserts the rental and its first history entry.
	CreateWithHistory(ctx context.Context, rental *domain.Rental, entry *domain.RentalHistoryEntry) error

	GetByID(ctx context.Context, id string) (*domain.Rental, error)

	// UpdateWithHistory writes the rental conditional on expectedVersion and
	// appends the history entry in the same transaction. Returns
	// domain.ErrVersionConflict when a concurrent transition won the race.
	UpdateWithHistory(ctx context.Context, rental *domain.Rental, expectedVersion int32, entry *domain.RentalHistoryEntry) error

	// Delete hard-deletes the rental. No history entry is written.
	Delete(ctx context.Context, id string) error

	// ListByParticipant returns rentals where userID matches the denormalized
	// owner or renter id, newest first.
	ListByParticipant(ctx context.Context, userID string) ([]domain.Rental, error)

	// FindByRenterAndOutfit returns rentals by this renter on this outfit in
	// any of the given statuses.
	FindByRenterAndOutfit(ctx context.Context, renterID, outfitID string, statuses []domain.RentalStatus) ([]domain.Rental, error)

	// HasWithStatusForOutfit reports whether any rental on the outfit is in one
	// of the given statuses.
	HasWithStatusForOutfit(ctx context.Context, outfitID string, statuses []domain.RentalStatus) (bool, error)

	// ListActiveEndedBefore returns ACTIVE rentals whose end date is before the
	// cutoff. Used by the scheduled completion job.
	ListActiveEndedBefore(ctx context.Context, cutoff string) ([]domain.Rental, error)
}

// RentalHistoryRepository is the read side of the audit trail. Appends happen
// only inside RentalRepository transactions; nothing updates or deletes entries.
type RentalHistoryRepository interface {
	ListByParticipant(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error)
	ListByRental(ctx context.Context, rentalID string) ([]domain.RentalHistoryEntry, error)
}
