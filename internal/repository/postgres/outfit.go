package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"

	"github.com/google/uuid"
)

type outfitRepository struct {
	db *sql.DB
}

func NewOutfitRepository(db *sql.DB) repository.OutfitRepository {
	return &outfitRepository{db: db}
}

const outfitColumns = `id, owner_id, title, description, image_urls, daily_price_cents, status, created_on, updated_on`

func (r *outfitRepository) Create(ctx context.Context, o *domain.Outfit) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	imagesJSON, err := jsonCodec.Marshal(o.ImageURLs)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	query := `INSERT INTO outfits (id, owner_id, title, description, image_urls, daily_price_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.db.ExecContext(ctx, query, o.ID, o.OwnerID, o.Title, o.Description,
		imagesJSON, o.DailyPriceCents, o.Status, now, now); err != nil {
		return err
	}
	o.CreatedOn = now.Format(time.RFC3339)
	o.UpdatedOn = o.CreatedOn
	return nil
}

func (r *outfitRepository) GetByID(ctx context.Context, id string) (*domain.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits WHERE id = $1`
	o, err := scanOutfit(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("outfit %s: %w", id, domain.ErrNotFound)
	}
	return o, err
}

func (r *outfitRepository) Update(ctx context.Context, o *domain.Outfit) error {
	imagesJSON, err := jsonCodec.Marshal(o.ImageURLs)
	if err != nil {
		return err
	}
	query := `UPDATE outfits SET title=$1, description=$2, image_urls=$3, daily_price_cents=$4, status=$5, updated_on=$6 WHERE id=$7`
	_, err = r.db.ExecContext(ctx, query, o.Title, o.Description, imagesJSON, o.DailyPriceCents, o.Status, time.Now().UTC(), o.ID)
	return err
}

func (r *outfitRepository) List(ctx context.Context) ([]domain.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits WHERE status = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, domain.OutfitStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOutfits(rows)
}

func (r *outfitRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOutfits(rows)
}

func scanOutfit(row rowScanner) (*domain.Outfit, error) {
	o := &domain.Outfit{}
	var imagesJSON []byte
	var createdOn, updatedOn time.Time
	err := row.Scan(&o.ID, &o.OwnerID, &o.Title, &o.Description, &imagesJSON,
		&o.DailyPriceCents, &o.Status, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if err := jsonCodec.Unmarshal(imagesJSON, &o.ImageURLs); err != nil {
		return nil, fmt.Errorf("decode image urls: %w", err)
	}
	o.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	o.UpdatedOn = updatedOn.UTC().Format(time.RFC3339)
	return o, nil
}

func collectOutfits(rows *sql.Rows) ([]domain.Outfit, error) {
	var outfits []domain.Outfit
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, err
		}
		outfits = append(outfits, *o)
	}
	return outfits, rows.Err()
}
