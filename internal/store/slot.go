package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

const slotsTable = "slots"

// SlotStore is a key-value byte store: each named slot holds one opaque payload.
type SlotStore struct {
	db QueryInterceptor
}

func NewSlotStore(db QueryInterceptor) *SlotStore {
	return &SlotStore{db: db}
}

// Get returns the payload of the slot or a ResourceNotFoundError if the slot is absent.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("data").
		From(slotsTable).
		Where(sq.Eq{"slot_key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSlotNotFoundError(key)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores data in the slot, replacing any previous payload.
func (s *SlotStore) Put(ctx context.Context, key string, data []byte) error {
	query, args, err := sq.Insert(slotsTable).
		Columns("slot_key", "data", "updated_at").
		Values(key, data, sq.Expr("now()")).
		Suffix("ON CONFLICT (slot_key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete(slotsTable).
		Where(sq.Eq{"slot_key": key}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}
