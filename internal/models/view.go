package models

import (
	"github.com/tupyy/record-manager/internal/selection"
)

// ViewState holds the transient table parameters of a session.
type ViewState struct {
	Query    string
	Sort     Sort
	Page     int
	PerPage  int
	Selected selection.Set
}

func NewViewState(perPage int) *ViewState {
	if perPage < 1 {
		perPage = 1
	}
	return &ViewState{
		Sort:     append(Sort(nil), DefaultSort...),
		Page:     1,
		PerPage:  perPage,
		Selected: selection.NewSet(),
	}
}

// RenderRow is a record annotated with its selection flag.
type RenderRow struct {
	Record
	Selected bool `json:"selected"`
}

// RenderModel is everything the view layer needs to draw the table.
type RenderModel struct {
	Rows          []RenderRow `json:"rows"`
	Page          int         `json:"page"`
	PerPage       int         `json:"perPage"`
	PageCount     int         `json:"pageCount"`
	Total         int         `json:"total"`
	StoredTotal   int         `json:"storedTotal"`
	From          int         `json:"from"`
	To            int         `json:"to"`
	AllSelected   bool        `json:"allSelected"`
	SelectedCount int         `json:"selectedCount"`
	Query         string      `json:"query"`
	Sort          Sort        `json:"sort"`
	Empty         bool        `json:"empty"`
	Warning       string      `json:"warning,omitempty"`
}

// HasPrev reports whether a previous page exists.
func (m RenderModel) HasPrev() bool {
	return m.Page > 1
}

// HasNext reports whether a next page exists.
func (m RenderModel) HasNext() bool {
	return m.Page < m.PageCount
}
