package selection

import "sort"

// Item is anything carrying a record identifier.
type Item interface {
	GetID() string
}

// Set is an unordered set of record ids.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Add(id string) {
	s[id] = struct{}{}
}

func (s Set) Remove(id string) {
	delete(s, id)
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the members in lexical order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsPageFullySelected reports whether every item on a non-empty page is selected.
// An empty page is never fully selected.
func IsPageFullySelected[T Item](page []T, selected Set) bool {
	if len(page) == 0 {
		return false
	}
	for _, item := range page {
		if !selected.Has(item.GetID()) {
			return false
		}
	}
	return true
}

// ToggleSelectAll adds (checked) or removes (!checked) the ids of the given page.
// Selections outside the page are left untouched.
func ToggleSelectAll[T Item](page []T, selected Set, checked bool) {
	for _, item := range page {
		if checked {
			selected.Add(item.GetID())
		} else {
			selected.Remove(item.GetID())
		}
	}
}

// PruneDeleted drops deleted ids from the selection.
func PruneDeleted(selected Set, deleted ...string) {
	for _, id := range deleted {
		selected.Remove(id)
	}
}

// Retain drops every selected id that is not in live.
func Retain(selected Set, live Set) {
	for id := range selected {
		if !live.Has(id) {
			delete(selected, id)
		}
	}
}
