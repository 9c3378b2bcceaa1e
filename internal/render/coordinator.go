package render

import (
	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/query"
	"github.com/tupyy/record-manager/internal/selection"
)

// BuildModel recomputes the whole render model from the record set and the
// view state. The clamped page number is written back into view so that the
// following navigation starts from a valid cursor, and selected ids without a
// live record are dropped from view.
func BuildModel(records []models.Record, view *models.ViewState) models.RenderModel {
	if view.Selected == nil {
		view.Selected = selection.NewSet()
	}

	// ids of records that no longer exist never count as selected
	live := selection.NewSet()
	for _, r := range records {
		live.Add(r.ID)
	}
	selection.Retain(view.Selected, live)

	ordered := query.Apply(records, view.Query, view.Sort)
	page := query.Paginate(ordered, view.PerPage, view.Page)
	view.Page = page.Number

	rows := make([]models.RenderRow, 0, len(page.Items))
	for _, r := range page.Items {
		rows = append(rows, models.RenderRow{Record: r, Selected: view.Selected.Has(r.ID)})
	}

	return models.RenderModel{
		Rows:          rows,
		Page:          page.Number,
		PerPage:       max(view.PerPage, 1),
		PageCount:     page.PageCount,
		Total:         len(ordered),
		StoredTotal:   len(records),
		From:          page.From,
		To:            page.To,
		AllSelected:   selection.IsPageFullySelected(page.Items, view.Selected),
		SelectedCount: view.Selected.Len(),
		Query:         view.Query,
		Sort:          append(models.Sort(nil), view.Sort...),
		Empty:         len(rows) == 0,
	}
}

// VisiblePage returns the records of the current page without touching view.
func VisiblePage(records []models.Record, view models.ViewState) []models.Record {
	ordered := query.Apply(records, view.Query, view.Sort)
	return query.Paginate(ordered, view.PerPage, view.Page).Items
}
