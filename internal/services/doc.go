// Package services implements the business logic layer of the record manager.
//
// The services sit between the view bridges (HTTP handlers, CLI) and the
// store. RecordService owns the durable record set; Manager owns one session
// (record set plus view state) and turns user commands into render models.
//
// # Service Dependency Graph
//
//	Handlers / CLI
//	    │
//	    ▼
//	Manager ──────────► Scheduler (1 worker), render.BuildModel
//	    │
//	    ▼
//	RecordService ────► SlotStore (store.SlotStore over DuckDB)
//
// # RecordService
//
// The record set lives in a single slot as a JSON array of
// {id, name, email, role, createdAt}. It is read once by Init and written back
// in full after every mutation. Demo records are seeded only when the slot is
// absent or unreadable, so a cleared store stays empty across restarts.
//
//	┌─────────────┬──────────────────────────────────────────────────────────┐
//	│ Operation   │ Behavior                                                 │
//	├─────────────┼──────────────────────────────────────────────────────────┤
//	│ LoadAll     │ absent or corrupt slot → empty set, logged, never fails  │
//	│ Persist     │ full rewrite, retried with backoff, StorageError on fail │
//	│ Create      │ validate, new uuid, CreatedAt = now, prepend, persist    │
//	│ Update      │ partial fields, id/CreatedAt untouched, NotFound if gone │
//	│ Remove      │ absent id is a no-op (no persist)                        │
//	│ RemoveMany  │ one persist for the whole batch                          │
//	│ Duplicate   │ copy name/email/role, new uuid, CreatedAt = now, prepend │
//	│ Clear       │ empty set, persist                                       │
//	└─────────────┴──────────────────────────────────────────────────────────┘
//
// New and duplicated records are inserted at the head of the set. Since the
// query engine sorts stably, the insertion point is only visible between
// records whose sort keys tie.
//
// Validation (ValidationError, nothing mutated, nothing persisted):
//   - name must not be blank
//   - email must match local@domain.tld
//   - role must be present
//
// Storage failures never roll back the in-memory set. The last failure is
// kept in LastError and shown by Manager as a model warning.
//
// # Manager
//
// Manager is the explicit application state passed to the view bridges.
// Commands (models.Command) are executed on a single-worker scheduler, so two
// commands never interleave even when they come from concurrent HTTP requests.
// Each command ends with a full recomputation of the render model.
//
//	┌──────────────┬──────────────────────────────────────────────────────────┐
//	│ Command      │ Effect                                                   │
//	├──────────────┼──────────────────────────────────────────────────────────┤
//	│ add          │ RecordService.Create                                     │
//	│ edit         │ RecordService.Update, stale id ignored                   │
//	│ delete       │ RecordService.Remove + prune selection                   │
//	│ copy         │ RecordService.Duplicate, stale id ignored                │
//	│ bulk-delete  │ needs Confirmed; removes selected ids, prunes selection  │
//	│ clear-all    │ needs Confirmed; empties set and selection               │
//	│ search       │ sets query, page 1                                       │
//	│ sort         │ sets sort keys (default createdAt:desc), page 1          │
//	│ per-page     │ must be a configured choice, page 1                      │
//	│ go-to-page   │ absolute page or first/prev/next/last, clamped on render │
//	│ toggle       │ select/unselect one live record                          │
//	│ toggle-all   │ select/unselect the visible page only                    │
//	└──────────────┴──────────────────────────────────────────────────────────┘
//
// Errors returned by Dispatch:
//   - ValidationError: bad input, state unchanged
//   - ConfirmationRequiredError: destructive command without confirmation
//
// A command whose ctx ends while it is still queued is dropped and Dispatch
// returns ctx.Err(). Once a command has started it always completes and
// Dispatch reports its outcome.
//
// ResourceNotFoundError and StorageError are absorbed: the first is a stale
// id (e.g. a double delete), the second becomes RenderModel.Warning.
//
// Usage:
//
//	records := services.NewRecordService(st.Slots(), cfg.Storage.SlotKey)
//	if err := records.Init(ctx, cfg.Storage.SeedDemo); err != nil {
//	    zap.S().Warnw("initial persist failed", "error", err)
//	}
//	mgr := services.NewManager(records, models.NewViewState(cfg.View.DefaultPerPage), cfg.View.PerPageChoices)
//	defer mgr.Close()
//
//	model, err := mgr.Dispatch(ctx, models.Command{Kind: models.CmdSearch, Query: "kar"})
package services
