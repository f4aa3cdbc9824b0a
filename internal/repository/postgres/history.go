package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"

	"github.com/google/uuid"
)

type rentalHistoryRepository struct {
	db *sql.DB
}

func NewRentalHistoryRepository(db *sql.DB) repository.RentalHistoryRepository {
	return &rentalHistoryRepository{db: db}
}

// historySnapshot is the JSONB payload layout of one audit entry. The full
// value copy lives here; owner_id/renter_id/status columns exist only for
// filtering and ordering.
type historySnapshot struct {
	Outfit    domain.OutfitSnapshot    `json:"outfit"`
	Owner     domain.PartySnapshot     `json:"owner"`
	Renter    domain.PartySnapshot     `json:"renter"`
	Period    domain.RentalPeriod      `json:"rental_period"`
	Payment   domain.Payment           `json:"payment"`
	Extension *domain.ExtensionRequest `json:"extension_request,omitempty"`
}

// appendHistoryTx inserts one immutable history entry inside the caller's
// transaction. There is deliberately no update or delete counterpart.
func appendHistoryTx(ctx context.Context, tx *sql.Tx, entry *domain.RentalHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	snapshot := historySnapshot{
		Outfit:    entry.Outfit,
		Owner:     entry.Owner,
		Renter:    entry.Renter,
		Period:    entry.Period,
		Payment:   entry.Payment,
		Extension: entry.Extension,
	}
	snapJSON, err := jsonCodec.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode history snapshot: %w", err)
	}
	actionByJSON, err := jsonCodec.Marshal(entry.ActionBy)
	if err != nil {
		return fmt.Errorf("encode history actor: %w", err)
	}

	now := time.Now().UTC()
	query := `INSERT INTO rental_history (id, rental_id, owner_id, renter_id, status, snapshot, action_by, action_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(ctx, query,
		entry.ID, entry.RentalID, entry.Owner.UserID, entry.Renter.UserID,
		entry.Status, snapJSON, actionByJSON, now); err != nil {
		return err
	}
	entry.ActionDate = now.Format(time.RFC3339)
	return nil
}

func (r *rentalHistoryRepository) ListByParticipant(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	query := `SELECT id, rental_id, status, snapshot, action_by, action_date FROM rental_history
	          WHERE owner_id = $1 OR renter_id = $1 ORDER BY action_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHistory(rows)
}

func (r *rentalHistoryRepository) ListByRental(ctx context.Context, rentalID string) ([]domain.RentalHistoryEntry, error) {
	query := `SELECT id, rental_id, status, snapshot, action_by, action_date FROM rental_history
	          WHERE rental_id = $1 ORDER BY action_date DESC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHistory(rows)
}

func collectHistory(rows *sql.Rows) ([]domain.RentalHistoryEntry, error) {
	var entries []domain.RentalHistoryEntry
	for rows.Next() {
		var (
			entry        domain.RentalHistoryEntry
			snapJSON     []byte
			actionByJSON []byte
			actionDate   time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.RentalID, &entry.Status, &snapJSON, &actionByJSON, &actionDate); err != nil {
			return nil, err
		}
		var snapshot historySnapshot
		if err := jsonCodec.Unmarshal(snapJSON, &snapshot); err != nil {
			return nil, fmt.Errorf("decode history snapshot: %w", err)
		}
		if err := jsonCodec.Unmarshal(actionByJSON, &entry.ActionBy); err != nil {
			return nil, fmt.Errorf("decode history actor: %w", err)
		}
		entry.Outfit = snapshot.Outfit
		entry.Owner = snapshot.Owner
		entry.Renter = snapshot.Renter
		entry.Period = snapshot.Period
		entry.Payment = snapshot.Payment
		entry.Extension = snapshot.Extension
		entry.ActionDate = actionDate.UTC().Format(time.RFC3339)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
