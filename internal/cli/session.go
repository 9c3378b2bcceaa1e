package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/config"
	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/services"
	"github.com/tupyy/record-manager/internal/store"
)

// session is the wired application: store, record service and manager.
type session struct {
	store   *store.Store
	records *services.RecordService
	mgr     *services.Manager
}

// openStore opens and migrates the configured database.
func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := store.NewDB(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, err
	}

	st := store.NewStore(db)
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func openSession(ctx context.Context, cfg *config.Configuration) (*session, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	records := services.NewRecordService(st.Slots(), cfg.Storage.SlotKey,
		services.WithPersistRetries(cfg.Storage.PersistRetries),
	)
	if err := records.Init(ctx, cfg.Storage.SeedDemo); err != nil {
		// the seeded set is still usable in memory
		zap.S().Named("cli").Warnw("failed to persist demo records", "error", err)
	}

	mgr := services.NewManager(records, models.NewViewState(cfg.View.DefaultPerPage), cfg.View.PerPageChoices)

	return &session{store: st, records: records, mgr: mgr}, nil
}

func (s *session) Close() {
	s.mgr.Close()
	if err := s.store.Close(); err != nil {
		zap.S().Named("cli").Warnw("failed to close store", "error", err)
	}
}
