package query

// Page is one page of an ordered sequence.
type Page[T any] struct {
	// Number is the effective 1-based page, always within [1, PageCount].
	Number    int
	PageCount int
	Items     []T
	// From and To are the 1-based positions of the first and last item
	// of the page inside the whole sequence, 0 when the page is empty.
	From int
	To   int
}

// Paginate slices items into the requested page. Out of range requests are
// clamped to the nearest valid page; perPage below 1 counts as 1.
func Paginate[T any](items []T, perPage, requested int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	total := len(items)
	pageCount := (total + perPage - 1) / perPage
	if pageCount == 0 {
		pageCount = 1
	}

	page := requested
	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := min(start+perPage, total)

	p := Page[T]{
		Number:    page,
		PageCount: pageCount,
		Items:     []T{},
	}
	if start < end {
		p.Items = items[start:end:end]
		p.From = start + 1
		p.To = end
	}
	return p
}
