package postgres_test

import (
	"context"
	"testing"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func sampleRental() *domain.Rental {
	return &domain.Rental{
		Outfit: domain.OutfitSnapshot{
			OutfitID:        "outfit-1",
			Title:           "Velvet blazer",
			DailyPriceCents: 2000,
		},
		Owner:  domain.PartySnapshot{UserID: "owner-1", Name: "Olive"},
		Renter: domain.PartySnapshot{UserID: "renter-1", Name: "Rae"},
		Period: domain.RentalPeriod{
			StartDate: "2025-03-01T00:00:00Z",
			EndDate:   "2025-03-04T00:00:00Z",
			TotalDays: 3,
		},
		Payment: domain.Payment{
			TotalAmountCents: 6000,
			Status:           domain.PaymentStatusPending,
		},
		Status: domain.RentalStatusPending,
	}
}

func rentalRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "outfit_id", "owner_id", "renter_id", "outfit", "owner", "renter",
		"start_date", "end_date", "total_days", "total_amount_cents", "payment_status",
		"receipt_image", "transaction_date", "status", "extension", "version", "created_on", "updated_on",
	}).AddRow(
		"rental-1", "outfit-1", "owner-1", "renter-1",
		[]byte(`{"outfit_id":"outfit-1","title":"Velvet blazer","daily_price_cents":2000}`),
		[]byte(`{"user_id":"owner-1","name":"Olive"}`),
		[]byte(`{"user_id":"renter-1","name":"Rae"}`),
		now, now.Add(72*time.Hour), 3, 6000, "PENDING",
		nil, nil, "PENDING", nil, 1, now, now,
	)
}

func TestRentalRepository_CreateWithHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := sampleRental()
		entry := domain.SnapshotOf(rental, domain.HistoryStatusPending, rental.Renter)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO rentals").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rental_history").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithHistory(ctx, rental, entry)
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.ID)
		assert.Equal(t, int32(1), rental.Version)
		assert.Equal(t, rental.ID, entry.RentalID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("HistoryInsertFailureRollsBack", func(t *testing.T) {
		rental := sampleRental()
		entry := domain.SnapshotOf(rental, domain.HistoryStatusPending, rental.Renter)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO rentals").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rental_history").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateWithHistory(ctx, rental, entry)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_UpdateWithHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := sampleRental()
		rental.ID = "rental-1"
		rental.Status = domain.RentalStatusActive
		entry := domain.SnapshotOf(rental, domain.HistoryStatusAccepted, rental.Owner)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rental_history").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateWithHistory(ctx, rental, 2, entry)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), rental.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StaleVersionConflicts", func(t *testing.T) {
		rental := sampleRental()
		rental.ID = "rental-1"
		entry := domain.SnapshotOf(rental, domain.HistoryStatusAccepted, rental.Owner)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateWithHistory(ctx, rental, 2, entry)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("rental-1").
			WillReturnRows(rentalRows())

		rental, err := repo.GetByID(ctx, "rental-1")
		assert.NoError(t, err)
		assert.Equal(t, "rental-1", rental.ID)
		assert.Equal(t, "Velvet blazer", rental.Outfit.Title)
		assert.Equal(t, "owner-1", rental.Owner.UserID)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
		assert.Nil(t, rental.Extension)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rental, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, rental)
	})
}

func TestRentalRepository_HasWithStatusForOutfit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("outfit-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rented, err := repo.HasWithStatusForOutfit(ctx, "outfit-1", []domain.RentalStatus{domain.RentalStatusActive})
	assert.NoError(t, err)
	assert.True(t, rented)
}

func TestRentalRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rentals WHERE id = \\$1").
			WithArgs("rental-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "rental-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rentals WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
	})
}
