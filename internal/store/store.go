package store

import (
	"context"
	"database/sql"

	"github.com/tupyy/record-manager/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db    *sql.DB
	slots *SlotStore
}

func NewStore(db *sql.DB) *Store {
	qi := NewQueryInterceptor(db)
	return &Store{
		db:    db,
		slots: NewSlotStore(qi),
	}
}

// Migrate creates the local tables.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Slots() *SlotStore {
	return s.slots
}

func (s *Store) Close() error {
	return s.db.Close()
}
