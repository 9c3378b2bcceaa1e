package v1

import (
	"fmt"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/util"
)

// NewRecordFromModel converts a render row to an API record.
func NewRecordFromModel(row models.RenderRow) Record {
	return Record{
		Id:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role.String(),
		CreatedAt: row.CreatedAt,
		Selected:  row.Selected,
	}
}

// NewViewFromModel converts a render model to the API view.
func NewViewFromModel(m models.RenderModel, perPageChoices []int) View {
	records := make([]Record, 0, len(m.Rows))
	for _, row := range m.Rows {
		records = append(records, NewRecordFromModel(row))
	}

	sort := make([]SortKey, 0, len(m.Sort))
	for _, k := range m.Sort {
		sort = append(sort, SortKey{Field: string(k.Field), Direction: string(k.Direction)})
	}

	return View{
		Records:        records,
		Page:           m.Page,
		PerPage:        m.PerPage,
		PerPageChoices: perPageChoices,
		PageCount:      m.PageCount,
		Total:          m.Total,
		StoredTotal:    m.StoredTotal,
		From:           m.From,
		To:             m.To,
		HasPrev:        m.HasPrev(),
		HasNext:        m.HasNext(),
		AllSelected:    m.AllSelected,
		SelectedCount:  m.SelectedCount,
		Query:          m.Query,
		Sort:           sort,
		Empty:          m.Empty,
		Warning:        util.PtrIfNotZero(m.Warning),
	}
}

// ToFields converts a partial update to record fields.
func (r UpdateRecordRequest) ToFields() models.RecordFields {
	fields := models.RecordFields{
		Name:  r.Name,
		Email: r.Email,
	}
	if r.Role != nil {
		role := models.Role(*r.Role)
		fields.Role = &role
	}
	return fields
}

// ParsePageMove converts the API move param to a page move.
func ParsePageMove(move string) (models.PageMove, error) {
	switch m := models.PageMove(move); m {
	case models.PageFirst, models.PagePrev, models.PageNext, models.PageLast:
		return m, nil
	default:
		return "", fmt.Errorf("invalid page move %q", move)
	}
}
