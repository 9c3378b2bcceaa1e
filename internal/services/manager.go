package services

import (
	"context"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/query"
	"github.com/tupyy/record-manager/internal/render"
	"github.com/tupyy/record-manager/internal/selection"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
	"github.com/tupyy/record-manager/pkg/scheduler"
)

// Manager is the application state of one session: the record set and the
// view state. Every command goes through a single-worker scheduler, so
// commands run one at a time and to completion, and each one ends with a
// full render.
type Manager struct {
	records        *RecordService
	view           *models.ViewState
	perPageChoices []int
	sched          *scheduler.Scheduler
}

func NewManager(records *RecordService, view *models.ViewState, perPageChoices []int) *Manager {
	return &Manager{
		records:        records,
		view:           view,
		perPageChoices: slices.Clone(perPageChoices),
		sched:          scheduler.NewScheduler(1),
	}
}

// Close stops the command loop. Commands dispatched afterwards fail with
// context.Canceled.
func (m *Manager) Close() {
	m.sched.Close()
}

// PerPageChoices returns the page sizes the view may offer.
func (m *Manager) PerPageChoices() []int {
	return slices.Clone(m.perPageChoices)
}

// Dispatch applies cmd and returns the render model that follows it. The
// model is returned together with ValidationError and
// ConfirmationRequiredError so the caller can keep drawing the table.
//
// A command whose ctx ends while it waits for its turn is dropped and
// ctx.Err() is returned. A command that has started always completes and its
// outcome is returned, even if ctx ends meanwhile.
func (m *Manager) Dispatch(ctx context.Context, cmd models.Command) (models.RenderModel, error) {
	return scheduler.Do(ctx, m.sched, func(workCtx context.Context) (models.RenderModel, error) {
		if err := workCtx.Err(); err != nil {
			return models.RenderModel{}, err
		}
		err := m.apply(workCtx, cmd)
		model := m.render()
		if err != nil {
			zap.S().Named("manager").Debugw("command refused", "command", cmd.Kind.String(), "error", err)
		}
		return model, err
	})
}

// Model renders the current state without changing it.
func (m *Manager) Model(ctx context.Context) (models.RenderModel, error) {
	return m.Dispatch(ctx, models.Command{Kind: models.CmdRefresh})
}

// Export returns the records to export. With filtered set, only the records
// matching the current query are returned; both cases follow the current sort.
func (m *Manager) Export(ctx context.Context, filtered bool) ([]models.Record, error) {
	return scheduler.Do(ctx, m.sched, func(ctx context.Context) ([]models.Record, error) {
		q := ""
		if filtered {
			q = m.view.Query
		}
		return query.Apply(m.records.Records(), q, m.view.Sort), nil
	})
}

func (m *Manager) apply(ctx context.Context, cmd models.Command) error {
	switch cmd.Kind {
	case models.CmdRefresh:
		return nil
	case models.CmdAdd:
		_, err := m.records.Create(ctx, cmd.Name, cmd.Email, cmd.Role)
		return m.settle(err)
	case models.CmdEdit:
		_, err := m.records.Update(ctx, cmd.ID, cmd.Fields)
		return m.settle(err)
	case models.CmdDelete:
		_, err := m.records.Remove(ctx, cmd.ID)
		selection.PruneDeleted(m.view.Selected, cmd.ID)
		return m.settle(err)
	case models.CmdCopy:
		_, err := m.records.Duplicate(ctx, cmd.ID)
		return m.settle(err)
	case models.CmdBulkDelete:
		return m.bulkDelete(ctx, cmd.Confirmed)
	case models.CmdClearAll:
		if !cmd.Confirmed {
			return srvErrors.NewConfirmationRequiredError(cmd.Kind.String())
		}
		_, err := m.records.Clear(ctx)
		m.view.Selected.Clear()
		m.view.Page = 1
		return m.settle(err)
	case models.CmdSearch:
		m.view.Query = cmd.Query
		m.view.Page = 1
	case models.CmdSort:
		if len(cmd.Sort) == 0 {
			m.view.Sort = slices.Clone(models.DefaultSort)
		} else {
			m.view.Sort = slices.Clone(cmd.Sort)
		}
		m.view.Page = 1
	case models.CmdPerPage:
		if !slices.Contains(m.perPageChoices, cmd.PerPage) {
			return srvErrors.NewValidationError("perPage", "must be one of the offered page sizes")
		}
		m.view.PerPage = cmd.PerPage
		m.view.Page = 1
	case models.CmdGoToPage:
		m.goToPage(cmd)
	case models.CmdToggle:
		if _, err := m.records.Get(cmd.ID); err != nil {
			return nil
		}
		if cmd.Checked {
			m.view.Selected.Add(cmd.ID)
		} else {
			m.view.Selected.Remove(cmd.ID)
		}
	case models.CmdToggleAll:
		page := render.VisiblePage(m.records.Records(), *m.view)
		selection.ToggleSelectAll(page, m.view.Selected, cmd.Checked)
	default:
		return srvErrors.NewValidationError("command", "unknown command "+cmd.Kind.String())
	}
	return nil
}

func (m *Manager) bulkDelete(ctx context.Context, confirmed bool) error {
	ids := m.view.Selected.IDs()
	if len(ids) == 0 {
		return nil
	}
	if !confirmed {
		return srvErrors.NewConfirmationRequiredError(models.CmdBulkDelete.String())
	}

	_, err := m.records.RemoveMany(ctx, ids)
	// stale ids are dropped as well
	selection.PruneDeleted(m.view.Selected, ids...)
	return m.settle(err)
}

func (m *Manager) goToPage(cmd models.Command) {
	switch cmd.Move {
	case models.PageFirst:
		m.view.Page = 1
	case models.PagePrev:
		m.view.Page--
	case models.PageNext:
		m.view.Page++
	case models.PageLast:
		// clamped by the next render
		m.view.Page = math.MaxInt32
	default:
		m.view.Page = cmd.Page
	}
}

// settle turns errors the user should not see into no-ops. A missing record
// means a stale id; a storage error leaves the in-memory change in place and
// surfaces as a model warning.
func (m *Manager) settle(err error) error {
	switch {
	case err == nil:
		return nil
	case srvErrors.IsResourceNotFoundError(err):
		zap.S().Named("manager").Debugw("stale record id ignored", "error", err)
		return nil
	case srvErrors.IsStorageError(err):
		return nil
	default:
		return err
	}
}

func (m *Manager) render() models.RenderModel {
	model := render.BuildModel(m.records.Records(), m.view)
	if err := m.records.LastError(); err != nil {
		model.Warning = err.Error()
	}
	return model
}
