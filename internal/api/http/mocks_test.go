package http

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"closetshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) RequestRental(ctx context.Context, renterID, outfitID, startDate, endDate string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, outfitID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) AcceptRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeclineRental(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CancelRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeleteRental(ctx context.Context, userID, rentalID string) error {
	args := m.Called(ctx, userID, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) UploadReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, rentalID, receiptURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) RequestExtension(ctx context.Context, renterID, rentalID, startDate, endDate string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, rentalID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) UploadExtensionReceipt(ctx context.Context, renterID, rentalID, receiptURL string) (*domain.Rental, error) {
	args := m.Called(ctx, renterID, rentalID, receiptURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) AcceptExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) DeclineExtension(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CompleteEndedRentals(ctx context.Context, cutoff string) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockQueryService
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) MyRentals(ctx context.Context, userID string) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockQueryService) History(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalHistoryEntry), args.Error(1)
}

// memBlobStore keeps uploads in memory for handler tests.
type memBlobStore struct {
	files map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{files: make(map[string][]byte)}
}

func (s *memBlobStore) Save(ctx context.Context, key, contentType string, reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.files[key] = data
	return "http://localhost:8080/files/" + key, nil
}

func (s *memBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memBlobStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	data, ok := s.files[key]
	return ok, int64(len(data)), nil
}

func (s *memBlobStore) Delete(ctx context.Context, key string) error {
	delete(s.files, key)
	return nil
}
