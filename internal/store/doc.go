// Package store implements the data access layer for the record manager.
//
// Persistence is a key-value byte store backed by DuckDB. Each named slot
// holds one opaque payload; the record service keeps its whole record set as
// JSON in a single slot (by default "users") and rewrites it after every
// mutation.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                           SlotStore                             │
//	│                               ▼                                 │
//	│                             slots                               │
//	├─────────────────────────────────────────────────────────────────┤
//	│             QueryInterceptor (debug logs sql + duration)        │
//	├─────────────────────────────────────────────────────────────────┤
//	│            *sql.DB (duckdb driver, one open connection)         │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
// Created by the embedded migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  schema_migrations │  Applied migration versions                 │
//	│  slots             │  slot_key → data (BLOB) with timestamps     │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # SlotStore
//
//	┌────────┬──────────────────────────────────────────────────────────┐
//	│ Method │ Behavior                                                 │
//	├────────┼──────────────────────────────────────────────────────────┤
//	│ Get    │ payload, or ResourceNotFoundError when the slot is absent│
//	│ Put    │ upsert (INSERT ... ON CONFLICT DO UPDATE)                │
//	│ Delete │ absent slot is not an error (used by the reset command)  │
//	└────────┴──────────────────────────────────────────────────────────┘
//
// Queries are built with squirrel.
//
// # Usage Example
//
//	db, err := store.NewDB(cfg.Storage.DatabasePath)
//	if err != nil {
//	    return err
//	}
//	st := store.NewStore(db)
//	defer st.Close()
//
//	if err := st.Migrate(ctx); err != nil {
//	    return err
//	}
//
//	data, err := st.Slots().Get(ctx, "users")
package store
