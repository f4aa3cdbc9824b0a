package postgres

import (
	"database/sql"

	"closetshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OutfitRepository
	repository.RentalRepository
	repository.RentalHistoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		OutfitRepository:        NewOutfitRepository(db),
		RentalRepository:        NewRentalRepository(db),
		RentalHistoryRepository: NewRentalHistoryRepository(db),
	}
}
