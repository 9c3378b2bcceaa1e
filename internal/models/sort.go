package models

import (
	"fmt"
	"strings"
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByEmail     SortField = "email"
	SortByRole      SortField = "role"
	SortByCreatedAt SortField = "createdAt"
)

var sortFields = map[string]SortField{
	"name":      SortByName,
	"email":     SortByEmail,
	"role":      SortByRole,
	"createdAt": SortByCreatedAt,
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortKey is a single (field, direction) pair.
type SortKey struct {
	Field     SortField `json:"field"`
	Direction Direction `json:"direction"`
}

func (k SortKey) Desc() bool {
	return k.Direction == Desc
}

func (k SortKey) String() string {
	return fmt.Sprintf("%s:%s", k.Field, k.Direction)
}

// Sort is an ordered list of keys. The first key is the primary order,
// the following ones break ties.
type Sort []SortKey

// DefaultSort orders newest records first.
var DefaultSort = Sort{{Field: SortByCreatedAt, Direction: Desc}}

func (s Sort) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, ",")
}

// ParseSortKey parses "field:direction". The direction defaults to asc when omitted.
func ParseSortKey(s string) (SortKey, error) {
	field, dir, found := strings.Cut(strings.TrimSpace(s), ":")
	f, ok := sortFields[field]
	if !ok {
		return SortKey{}, fmt.Errorf("invalid sort field %q", field)
	}
	if !found || dir == "" {
		return SortKey{Field: f, Direction: Asc}, nil
	}
	switch Direction(strings.ToLower(dir)) {
	case Asc:
		return SortKey{Field: f, Direction: Asc}, nil
	case Desc:
		return SortKey{Field: f, Direction: Desc}, nil
	default:
		return SortKey{}, fmt.Errorf("invalid sort direction %q", dir)
	}
}

// ParseSort parses a list of "field:direction" params. Each param may itself
// hold a comma separated list.
func ParseSort(params []string) (Sort, error) {
	var sort Sort
	for _, p := range params {
		for _, part := range strings.Split(p, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			k, err := ParseSortKey(part)
			if err != nil {
				return nil, err
			}
			sort = append(sort, k)
		}
	}
	return sort, nil
}
