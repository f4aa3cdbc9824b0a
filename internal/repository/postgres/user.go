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

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	query := `INSERT INTO users (id, email, password_hash, name, avatar_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Name, u.AvatarURL, now, now)
	if err != nil {
		return err
	}
	u.CreatedOn = now.Format(time.RFC3339)
	u.UpdatedOn = u.CreatedOn
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, name, avatar_url, created_on, updated_on FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, name, avatar_url, created_on, updated_on FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), email)
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, name=$2, avatar_url=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.AvatarURL, time.Now().UTC(), u.ID)
	return err
}

func (r *userRepository) scanUser(row rowScanner, key string) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.AvatarURL, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.UTC().Format(time.RFC3339)
	u.UpdatedOn = updatedOn.UTC().Format(time.RFC3339)
	return u, nil
}
