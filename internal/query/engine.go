package query

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tupyy/record-manager/internal/models"
)

// Apply filters records by query and orders the result by sort.
// The input slice is never modified.
func Apply(records []models.Record, query string, sort models.Sort) []models.Record {
	return Order(Filter(records, query), sort)
}

// Filter keeps the records whose name or email contains query, ignoring case.
// An empty query keeps everything. Whitespace in query is matched as is.
func Filter(records []models.Record, query string) []models.Record {
	if query == "" {
		return slices.Clone(records)
	}

	fold := cases.Fold()
	q := fold.String(query)

	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Name), q) || strings.Contains(fold.String(r.Email), q) {
			result = append(result, r)
		}
	}
	return result
}

// Order returns a stably sorted copy of records. Text fields are compared
// with a case-insensitive collator and createdAt chronologically. A descending
// key reverses the comparison; equal records keep their input order.
func Order(records []models.Record, sort models.Sort) []models.Record {
	result := slices.Clone(records)
	if len(sort) == 0 || len(result) < 2 {
		return result
	}

	c := newComparator()
	slices.SortStableFunc(result, func(a, b models.Record) int {
		for _, key := range sort {
			n := c.compare(key.Field, a, b)
			if n == 0 {
				continue
			}
			if key.Desc() {
				return -n
			}
			return n
		}
		return 0
	})
	return result
}

type comparator struct {
	collator *collate.Collator
}

func newComparator() *comparator {
	return &comparator{collator: collate.New(language.Und, collate.IgnoreCase)}
}

func (c *comparator) compare(field models.SortField, a, b models.Record) int {
	switch field {
	case models.SortByName:
		return c.collator.CompareString(a.Name, b.Name)
	case models.SortByEmail:
		return c.collator.CompareString(a.Email, b.Email)
	case models.SortByRole:
		return c.collator.CompareString(string(a.Role), string(b.Role))
	case models.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}
