package listutil_test

import (
	"net/url"
	"reflect"
	"testing"

	"scholardesk/internal/application/listutil"
)

// TestParsePageParams tests page/limit extraction with defaults.
func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  listutil.PageParams
	}{
		{name: "defaults", query: "", want: listutil.PageParams{Page: 1, PerPage: 10}},
		{name: "explicit values", query: "page=3&limit=20", want: listutil.PageParams{Page: 3, PerPage: 20}},
		{name: "page floor", query: "page=0", want: listutil.PageParams{Page: 1, PerPage: 10}},
		{name: "negative page", query: "page=-2", want: listutil.PageParams{Page: 1, PerPage: 10}},
		{name: "garbage page", query: "page=abc", want: listutil.PageParams{Page: 1, PerPage: 10}},
		{name: "limit not in options", query: "limit=37", want: listutil.PageParams{Page: 1, PerPage: 10}},
		{name: "largest option", query: "limit=100", want: listutil.PageParams{Page: 1, PerPage: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got := listutil.ParsePageParams(q)
			if got != tt.want {
				t.Errorf("ParsePageParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

// TestParseFilterParams tests that unknown statuses are discarded.
func TestParseFilterParams(t *testing.T) {
	allowed := []string{"active", "archive"}
	tests := []struct {
		name  string
		query string
		want  listutil.FilterParams
	}{
		{name: "empty", query: "", want: listutil.FilterParams{}},
		{name: "search only", query: "search=stem", want: listutil.FilterParams{Search: "stem"}},
		{name: "allowed status", query: "status=active", want: listutil.FilterParams{Status: "active"}},
		{name: "unknown status dropped", query: "status=bogus", want: listutil.FilterParams{}},
		{name: "both", query: "search=x&status=archive", want: listutil.FilterParams{Search: "x", Status: "archive"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got := listutil.ParseFilterParams(q, allowed)
			if got != tt.want {
				t.Errorf("ParseFilterParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

// TestNewPageInfo tests the pagination invariants.
func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		wantPage, wantTotal  int
		hasNext, hasPrev     bool
	}{
		{name: "empty list", page: 1, perPage: 10, total: 0, wantPage: 1, wantTotal: 0, hasNext: false, hasPrev: false},
		{name: "single page", page: 1, perPage: 10, total: 7, wantPage: 1, wantTotal: 1, hasNext: false, hasPrev: false},
		{name: "first of many", page: 1, perPage: 10, total: 35, wantPage: 1, wantTotal: 4, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, perPage: 10, total: 35, wantPage: 2, wantTotal: 4, hasNext: true, hasPrev: true},
		{name: "last page", page: 4, perPage: 10, total: 35, wantPage: 4, wantTotal: 4, hasNext: false, hasPrev: true},
		{name: "page past end clamps", page: 9, perPage: 10, total: 35, wantPage: 4, wantTotal: 4, hasNext: false, hasPrev: true},
		{name: "exact boundary", page: 2, perPage: 10, total: 20, wantPage: 2, wantTotal: 2, hasNext: false, hasPrev: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listutil.NewPageInfo(tt.page, tt.perPage, tt.total)
			if got.Page != tt.wantPage || got.TotalPages != tt.wantTotal ||
				got.HasNext != tt.hasNext || got.HasPrev != tt.hasPrev {
				t.Errorf("NewPageInfo(%d, %d, %d) = %+v", tt.page, tt.perPage, tt.total, got)
			}
			if got.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, tt.total)
			}
		})
	}
}

// TestPageInfo_Normalize tests that backend-supplied flags are re-derived
// from the counts rather than trusted.
func TestPageInfo_Normalize(t *testing.T) {
	lying := listutil.PageInfo{Page: 2, PerPage: 10, TotalItems: 15, TotalPages: 99, HasNext: true, HasPrev: false}
	got := lying.Normalize()
	if got.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", got.TotalPages)
	}
	if got.HasNext {
		t.Error("HasNext = true on the last page")
	}
	if !got.HasPrev {
		t.Error("HasPrev = false on page 2")
	}
}

// TestPageInfo_Rows tests the row-range display helpers.
func TestPageInfo_Rows(t *testing.T) {
	info := listutil.NewPageInfo(3, 10, 27)
	if got := info.StartRow(); got != 21 {
		t.Errorf("StartRow = %d, want 21", got)
	}
	if got := info.EndRow(); got != 27 {
		t.Errorf("EndRow = %d, want 27", got)
	}
	empty := listutil.NewPageInfo(1, 10, 0)
	if got := empty.StartRow(); got != 0 {
		t.Errorf("StartRow on empty = %d, want 0", got)
	}
}

// TestPageInfo_PageNumbers tests the 5-button window.
func TestPageInfo_PageNumbers(t *testing.T) {
	tests := []struct {
		name        string
		page, total int
		want        []int
	}{
		{name: "fewer pages than buttons", page: 1, total: 30, want: []int{1, 2, 3}},
		{name: "centered", page: 5, total: 100, want: []int{3, 4, 5, 6, 7}},
		{name: "left edge", page: 1, total: 100, want: []int{1, 2, 3, 4, 5}},
		{name: "right edge", page: 10, total: 100, want: []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := listutil.NewPageInfo(tt.page, 10, tt.total)
			if got := info.PageNumbers(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageNumbers() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPageInfo_ShowPagination tests the controls visibility rule.
func TestPageInfo_ShowPagination(t *testing.T) {
	if listutil.NewPageInfo(1, 10, 10).ShowPagination() {
		t.Error("controls shown when everything fits on one page")
	}
	if !listutil.NewPageInfo(1, 10, 11).ShowPagination() {
		t.Error("controls hidden with more rows than one page")
	}
}
