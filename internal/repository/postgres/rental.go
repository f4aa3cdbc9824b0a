package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
	"closetshare-backend/internal/utils"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, outfit_id, owner_id, renter_id, outfit, owner, renter,
	start_date, end_date, total_days, total_amount_cents, payment_status,
	receipt_image, transaction_date, status, extension, version, created_on, updated_on`

func (r *rentalRepository) CreateWithHistory(ctx context.Context, rt *domain.Rental, entry *domain.RentalHistoryEntry) error {
	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}
	start, err := utils.ParseRentalDate(rt.Period.StartDate)
	if err != nil {
		return err
	}
	end, err := utils.ParseRentalDate(rt.Period.EndDate)
	if err != nil {
		return err
	}
	outfitJSON, ownerJSON, renterJSON, extJSON, err := marshalRentalParts(rt)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `INSERT INTO rentals (id, outfit_id, owner_id, renter_id, outfit, owner, renter,
	          start_date, end_date, total_days, total_amount_cents, payment_status,
	          receipt_image, transaction_date, status, extension, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = tx.ExecContext(ctx, query,
		rt.ID, rt.Outfit.OutfitID, rt.Owner.UserID, rt.Renter.UserID,
		outfitJSON, ownerJSON, renterJSON,
		start, end, rt.Period.TotalDays, rt.Payment.TotalAmountCents, rt.Payment.Status,
		nullString(rt.Payment.ReceiptImage), nullTime(rt.Payment.TransactionDate),
		rt.Status, extJSON, 1, now, now)
	if err != nil {
		return err
	}
	rt.Version = 1
	rt.CreatedOn = now.Format(time.RFC3339)
	rt.UpdatedOn = rt.CreatedOn

	entry.RentalID = rt.ID
	if err := appendHistoryTx(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %s: %w", id, domain.ErrNotFound)
	}
	return rt, err
}

func (r *rentalRepository) UpdateWithHistory(ctx context.Context, rt *domain.Rental, expectedVersion int32, entry *domain.RentalHistoryEntry) error {
	end, err := utils.ParseRentalDate(rt.Period.EndDate)
	if err != nil {
		return err
	}
	_, _, _, extJSON, err := marshalRentalParts(rt)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `UPDATE rentals SET end_date=$1, total_days=$2, total_amount_cents=$3,
	          payment_status=$4, receipt_image=$5, transaction_date=$6, status=$7,
	          extension=$8, version=version+1, updated_on=$9
	          WHERE id=$10 AND version=$11`
	res, err := tx.ExecContext(ctx, query,
		end, rt.Period.TotalDays, rt.Payment.TotalAmountCents,
		rt.Payment.Status, nullString(rt.Payment.ReceiptImage), nullTime(rt.Payment.TransactionDate),
		rt.Status, extJSON, now, rt.ID, expectedVersion)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVersionConflict
	}
	rt.Version = expectedVersion + 1
	rt.UpdatedOn = now.Format(time.RFC3339)

	entry.RentalID = rt.ID
	if err := appendHistoryTx(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rental %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *rentalRepository) ListByParticipant(ctx context.Context, userID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE owner_id = $1 OR renter_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) FindByRenterAndOutfit(ctx context.Context, renterID, outfitID string, statuses []domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE renter_id = $1 AND outfit_id = $2 AND status = ANY($3) ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, renterID, outfitID, pq.Array(statusStrings(statuses)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) HasWithStatusForOutfit(ctx context.Context, outfitID string, statuses []domain.RentalStatus) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE outfit_id = $1 AND status = ANY($2))`
	err := r.db.QueryRowContext(ctx, query, outfitID, pq.Array(statusStrings(statuses))).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) ListActiveEndedBefore(ctx context.Context, cutoff string) ([]domain.Rental, error) {
	cut, err := utils.ParseRentalDate(cutoff)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE status = $1 AND end_date < $2 ORDER BY end_date ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, cut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var (
		outfitID, ownerID, renterID      string
		outfitJSON, ownerJSON, rentJSON  []byte
		extJSON                          []byte
		start, end, createdOn, updatedOn time.Time
		receipt                          sql.NullString
		txDate                           sql.NullTime
	)
	err := row.Scan(&rt.ID, &outfitID, &ownerID, &renterID, &outfitJSON, &ownerJSON, &rentJSON,
		&start, &end, &rt.Period.TotalDays, &rt.Payment.TotalAmountCents, &rt.Payment.Status,
		&receipt, &txDate, &rt.Status, &extJSON, &rt.Version, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if err := jsonCodec.Unmarshal(outfitJSON, &rt.Outfit); err != nil {
		return nil, fmt.Errorf("decode outfit snapshot: %w", err)
	}
	if err := jsonCodec.Unmarshal(ownerJSON, &rt.Owner); err != nil {
		return nil, fmt.Errorf("decode owner snapshot: %w", err)
	}
	if err := jsonCodec.Unmarshal(rentJSON, &rt.Renter); err != nil {
		return nil, fmt.Errorf("decode renter snapshot: %w", err)
	}
	if len(extJSON) > 0 {
		rt.Extension = &domain.ExtensionRequest{}
		if err := jsonCodec.Unmarshal(extJSON, rt.Extension); err != nil {
			return nil, fmt.Errorf("decode extension: %w", err)
		}
	}
	rt.Period.StartDate = start.UTC().Format(time.RFC3339)
	rt.Period.EndDate = end.UTC().Format(time.RFC3339)
	if receipt.Valid {
		rt.Payment.ReceiptImage = &receipt.String
	}
	if txDate.Valid {
		d := txDate.Time.UTC().Format(time.RFC3339)
		rt.Payment.TransactionDate = &d
	}
	rt.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	rt.UpdatedOn = updatedOn.UTC().Format(time.RFC3339)
	return rt, nil
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func marshalRentalParts(rt *domain.Rental) (outfit, owner, renter, ext []byte, err error) {
	if outfit, err = jsonCodec.Marshal(rt.Outfit); err != nil {
		return
	}
	if owner, err = jsonCodec.Marshal(rt.Owner); err != nil {
		return
	}
	if renter, err = jsonCodec.Marshal(rt.Renter); err != nil {
		return
	}
	if rt.Extension != nil {
		ext, err = jsonCodec.Marshal(rt.Extension)
	}
	return
}

func statusStrings(statuses []domain.RentalStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(s *string) sql.NullTime {
	if s == nil {
		return sql.NullTime{}
	}
	t, err := utils.ParseRentalDate(*s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
