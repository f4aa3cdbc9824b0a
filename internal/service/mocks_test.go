package service

import (
	"context"

	"closetshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockOutfitRepo
type MockOutfitRepo struct {
	mock.Mock
}

func (m *MockOutfitRepo) Create(ctx context.Context, outfit *domain.Outfit) error {
	args := m.Called(ctx, outfit)
	return args.Error(0)
}
func (m *MockOutfitRepo) GetByID(ctx context.Context, id string) (*domain.Outfit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outfit), args.Error(1)
}
func (m *MockOutfitRepo) Update(ctx context.Context, outfit *domain.Outfit) error {
	args := m.Called(ctx, outfit)
	return args.Error(0)
}
func (m *MockOutfitRepo) List(ctx context.Context) ([]domain.Outfit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Outfit), args.Error(1)
}
func (m *MockOutfitRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Outfit, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Outfit), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithHistory(ctx context.Context, rental *domain.Rental, entry *domain.RentalHistoryEntry) error {
	args := m.Called(ctx, rental, entry)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateWithHistory(ctx context.Context, rental *domain.Rental, expectedVersion int32, entry *domain.RentalHistoryEntry) error {
	args := m.Called(ctx, rental, expectedVersion, entry)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByParticipant(ctx context.Context, userID string) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindByRenterAndOutfit(ctx context.Context, renterID, outfitID string, statuses []domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, renterID, outfitID, statuses)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) HasWithStatusForOutfit(ctx context.Context, outfitID string, statuses []domain.RentalStatus) (bool, error) {
	args := m.Called(ctx, outfitID, statuses)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListActiveEndedBefore(ctx context.Context, cutoff string) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockHistoryRepo
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) ListByParticipant(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.RentalHistoryEntry), args.Error(1)
}
func (m *MockHistoryRepo) ListByRental(ctx context.Context, rentalID string) ([]domain.RentalHistoryEntry, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalHistoryEntry), args.Error(1)
}
