package v1

import "time"

// Record is the API representation of a stored record.
type Record struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Selected  bool      `json:"selected"`
}

// SortKey is one ordering criterion, e.g. {"field": "name", "direction": "asc"}.
type SortKey struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// View is the table state returned after every request.
type View struct {
	Records        []Record  `json:"records"`
	Page           int       `json:"page"`
	PerPage        int       `json:"perPage"`
	PerPageChoices []int     `json:"perPageChoices"`
	PageCount      int       `json:"pageCount"`
	Total          int       `json:"total"`
	StoredTotal    int       `json:"storedTotal"`
	From           int       `json:"from"`
	To             int       `json:"to"`
	HasPrev        bool      `json:"hasPrev"`
	HasNext        bool      `json:"hasNext"`
	AllSelected    bool      `json:"allSelected"`
	SelectedCount  int       `json:"selectedCount"`
	Query          string    `json:"query"`
	Sort           []SortKey `json:"sort"`
	Empty          bool      `json:"empty"`
	Warning        *string   `json:"warning,omitempty"`
}

// ErrorResponse is returned with every non 2xx status. View is set when the
// table state is still meaningful, e.g. after a validation failure.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	View   *View             `json:"view,omitempty"`
}

// CreateRecordRequest is the body of POST /records.
type CreateRecordRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateRecordRequest is the body of PATCH /records/{id}. Absent fields are
// left unchanged.
type UpdateRecordRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// QueryRequest is the body of PUT /view/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// SortRequest is the body of PUT /view/sort. An empty list restores the
// default order.
type SortRequest struct {
	Sort []string `json:"sort"`
}

// PerPageRequest is the body of PUT /view/per-page.
type PerPageRequest struct {
	PerPage int `json:"perPage"`
}

// PageRequest is the body of PUT /view/page. Move, when set, takes precedence
// over Page and is one of first, prev, next, last.
type PageRequest struct {
	Page int     `json:"page"`
	Move *string `json:"move,omitempty"`
}

// SelectRequest is the body of PUT /selection and PUT /selection/{id}.
type SelectRequest struct {
	Checked bool `json:"checked"`
}
