package postgres

import (
	"database/sql"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ConnectionRequestRepository
	repository.GroupRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		UserRepository:              NewUserRepository(db),
		ConnectionRequestRepository: NewConnectionRequestRepository(db),
		GroupRepository:             NewGroupRepository(db),
	}
}
