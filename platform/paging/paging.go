// Package paging holds the offset pagination arithmetic shared by list endpoints.
package paging

// MaxPage caps page numbers so the offset cannot overflow.
const MaxPage = 1_000_000

// Window is a clamped page number and size with its row offset.
type Window struct {
	Page   int
	Limit  int
	Offset int
}

// NewWindow clamps page to [1, MaxPage] and limit to [1, maxLimit]. A zero
// limit takes defaultLimit.
func NewWindow(page, limit, defaultLimit, maxLimit int) Window {
	if maxLimit < 1 {
		maxLimit = 1
	}
	if defaultLimit < 1 {
		defaultLimit = 1
	}
	page = min(max(page, 1), MaxPage)

	switch {
	case limit == 0:
		limit = defaultLimit
	case limit < 1:
		limit = 1
	}
	limit = min(limit, maxLimit)

	return Window{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// Meta is the page metadata returned alongside a window of items.
type Meta struct {
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewMeta computes total pages and neighbours for a page of size limit.
func NewMeta(total, page, limit int) Meta {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
