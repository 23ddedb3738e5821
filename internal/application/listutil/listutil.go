package listutil

import (
	"net/url"
	"strconv"
)

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page    int // 1-indexed page number
	PerPage int // rows per page, sent to the backend as "limit"
}

// FilterParams carries search and status-filter parameters.
type FilterParams struct {
	Search string // free-text search query, submit-triggered
	Status string // exact-match status filter ("" = all)
}

// ListParams combines all list view parameters.
type ListParams struct {
	PageParams
	FilterParams
}

// PageInfo carries pagination metadata for rendering. It mirrors the
// backend's pagination envelope (current_page, per_page, total_items,
// total_pages, has_next, has_prev).
type PageInfo struct {
	Page       int  `json:"current_page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 10

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 20, 50, 100}

// ParsePageParams extracts page and limit from URL query values.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("limit"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// ParseFilterParams extracts search and status from URL query values.
// PRE: allowedStatuses lists the valid filter values ("" always allowed)
// POST: returns FilterParams; Status is "" when not in allowedStatuses
func ParseFilterParams(q url.Values, allowedStatuses []string) FilterParams {
	fp := FilterParams{Search: q.Get("search")}
	status := q.Get("status")
	for _, s := range allowedStatuses {
		if status == s {
			fp.Status = status
			break
		}
	}
	return fp
}

// ParseListParams parses all list parameters from URL query values.
func ParseListParams(q url.Values, allowedStatuses []string) ListParams {
	return ListParams{
		PageParams:   ParsePageParams(q),
		FilterParams: ParseFilterParams(q, allowedStatuses),
	}
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0, perPage > 0, page >= 1
// POST: TotalPages == ceil(total/perPage), HasNext == page < TotalPages,
// HasPrev == page > 1; Page clamped into [1, TotalPages]
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Normalize re-derives HasNext/HasPrev and TotalPages from the counts.
// Backend responses already carry these flags, but we never trust them to
// agree with the counts they travel with.
// PRE: p carries backend-supplied values
// POST: the PageInfo invariants hold
func (p PageInfo) Normalize() PageInfo {
	return NewPageInfo(p.Page, p.PerPage, p.TotalItems)
}

// StartRow returns the 1-indexed first row number on the current page.
// PRE: PageInfo is valid
// POST: Returns 0 if TotalItems is 0, otherwise (Page-1)*PerPage + 1
func (p PageInfo) StartRow() int {
	if p.TotalItems == 0 {
		return 0
	}
	return (p.Page-1)*p.PerPage + 1
}

// EndRow returns the 1-indexed last row number on the current page.
// PRE: PageInfo is valid
// POST: Returns min(Page*PerPage, TotalItems)
func (p PageInfo) EndRow() int {
	end := p.Page * p.PerPage
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return end
}

// PageNumbers returns the page numbers to display in pagination controls.
// Shows at most 5 pages centered around the current page.
// PRE: PageInfo is valid
// POST: Returns slice of at most 5 page numbers centered on current page
func (p PageInfo) PageNumbers() []int {
	const maxButtons = 5
	start := p.Page - maxButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - maxButtons + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ShowPagination returns true if pagination controls should be displayed.
// PRE: PageInfo is valid
// POST: Returns true if TotalItems > PerPage
func (p PageInfo) ShowPagination() bool {
	return p.TotalItems > p.PerPage
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}
