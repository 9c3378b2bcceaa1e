// Package config defines the configuration structure for the record manager.
//
// Configuration is organized into logical sections (Server, Storage, View) and
// uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Storage        - DuckDB file and record slot
//	├── View           - Table pagination menu
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Storage Configuration
//
//	┌────────────────┬──────────────────┬──────────────────────────────────────┐
//	│ Field          │ Default          │ Description                          │
//	├────────────────┼──────────────────┼──────────────────────────────────────┤
//	│ DatabasePath   │ "records.duckdb" │ DuckDB file (":memory:" for none)    │
//	│ SlotKey        │ "users"          │ Slot holding the record set          │
//	│ SeedDemo       │ true             │ Seed demo records on empty storage   │
//	│ PersistRetries │ 3                │ Write attempts before giving up      │
//	└────────────────┴──────────────────┴──────────────────────────────────────┘
//
// # View Configuration
//
//	┌────────────────┬───────────────┬─────────────────────────────────────┐
//	│ Field          │ Default       │ Description                         │
//	├────────────────┼───────────────┼─────────────────────────────────────┤
//	│ PerPageChoices │ [5,10,20,50]  │ Page sizes offered to the user      │
//	│ DefaultPerPage │ 10            │ Initial page size (must be a choice)│
//	└────────────────┴───────────────┴─────────────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Storage View
//
// Generated helpers include NewConfigurationWithOptionsAndDefaults, WithServer,
// WithStorage, WithView and DebugMap.
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithStorage(*config.NewStorageWithOptionsAndDefaults(
//	        config.WithDatabasePath(":memory:"),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Debug Logging
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
