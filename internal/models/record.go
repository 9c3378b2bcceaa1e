package models

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Roles lists the roles offered by the role menu.
var Roles = []Role{RoleAdmin, RoleUser, RoleGuest}

func (r Role) String() string {
	return string(r)
}

// Record is one managed user entry.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Record) GetID() string {
	return r.ID
}

// RecordFields holds a partial update. Nil fields are left untouched.
type RecordFields struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}

// Apply returns a copy of r with the non-nil fields replaced.
// ID and CreatedAt are never changed.
func (f RecordFields) Apply(r Record) Record {
	if f.Name != nil {
		r.Name = *f.Name
	}
	if f.Email != nil {
		r.Email = *f.Email
	}
	if f.Role != nil {
		r.Role = *f.Role
	}
	return r
}

func (f RecordFields) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.Role == nil
}
