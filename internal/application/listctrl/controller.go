// Package listctrl implements the paginated-list-with-filter-and-mutation
// contract every management screen is built on. One Controller owns the
// page/search/filter state for one entity type and drives fetches through
// an injected Fetcher, so screens differ only in their row type and the
// backend calls they plug in.
package listctrl

import (
	"context"
	"sync"

	"scholardesk/internal/application/listutil"
)

// Query carries the list parameters sent to a Fetcher.
type Query struct {
	Page    int
	PerPage int
	Search  string
	Status  string // "" = no status filter
}

// Page is one fetched page of rows plus its pagination metadata.
type Page[T any] struct {
	Items    []T
	PageInfo listutil.PageInfo
}

// Fetcher retrieves one page of rows for a query.
type Fetcher[T any] func(ctx context.Context, q Query) (Page[T], error)

// Mutation performs one create/edit/delete call against the backend.
type Mutation func(ctx context.Context) error

// Empty-state kinds for rendering. "No data ever" is a distinct state from
// "no results for this search/filter".
const (
	EmptyNone      = ""           // list has rows
	EmptyNoData    = "no_data"    // no rows and no search/filter active
	EmptyNoResults = "no_results" // no rows for the active search/filter
)

// View is an immutable snapshot of controller state for rendering.
type View[T any] struct {
	Items    []T
	PageInfo listutil.PageInfo
	Search   string
	Status   string
	Loading  bool
	Err      error
	Empty    string // EmptyNone, EmptyNoData, EmptyNoResults
}

// Controller owns the filter/search/page state for one entity list.
// All methods are safe for concurrent use. A monotonically increasing
// request sequence guards against a superseded fetch overwriting the
// result of a newer one.
type Controller[T any] struct {
	mu    sync.Mutex
	fetch Fetcher[T]

	page    int
	perPage int
	search  string
	status  string

	items    []T
	pageInfo listutil.PageInfo
	err      error
	loaded   bool // at least one fetch has been applied (success or failure)
	hasData  bool // at least one successful fetch has been applied

	inflight int
	nextSeq  uint64
	applied  uint64
}

// New creates a Controller with the given fetcher and page size.
// PRE: fetch is non-nil, perPage > 0
// POST: Controller starts on page 1 with no search or filter
func New[T any](fetch Fetcher[T], perPage int) *Controller[T] {
	if perPage < 1 {
		perPage = listutil.DefaultPerPage
	}
	return &Controller[T]{fetch: fetch, page: 1, perPage: perPage}
}

// SetState hydrates page/search/filter state without fetching, used when
// the state arrives in the URL rather than from prior interactions.
// PRE: none
// POST: state replaced; page floored at 1, perPage left unchanged if < 1
func (c *Controller[T]) SetState(page int, search, status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.page = page
	c.search = search
	c.status = status
}

// SetPerPage overrides the page size.
func (c *Controller[T]) SetPerPage(perPage int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if perPage > 0 {
		c.perPage = perPage
	}
}

// Refresh fetches the current page under the current search/filter.
// On success items and pagination are replaced wholesale; on failure the
// error is recorded and prior items stay visible (stale-but-visible).
// PRE: none
// POST: latest-sequence response applied; stale responses discarded
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	q := Query{Page: c.page, PerPage: c.perPage, Search: c.search, Status: c.status}
	c.inflight++
	fetch := c.fetch
	c.mu.Unlock()

	result, err := fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq <= c.applied {
		// A newer request already resolved; drop this response.
		return err
	}
	c.applied = seq
	c.loaded = true
	if err != nil {
		c.err = err
		if !c.hasData {
			c.items = nil
			c.pageInfo = listutil.PageInfo{}
		}
		return err
	}
	c.err = nil
	c.hasData = true
	c.items = result.Items
	c.pageInfo = result.PageInfo.Normalize()
	// A delete can empty the page we were on; follow the clamped page the
	// metadata reports so the next navigation starts from a real page.
	c.page = c.pageInfo.Page
	return nil
}

// SubmitSearch applies a submitted search term: page resets to 1 and the
// list is refetched. Search is submit-triggered, never live per keystroke.
// PRE: none
// POST: search applied, page == 1, fetch attempted
func (c *Controller[T]) SubmitSearch(ctx context.Context, term string) error {
	c.mu.Lock()
	c.search = term
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ChangeFilter applies a status filter eagerly: page resets to 1 and the
// list is refetched immediately.
// PRE: none
// POST: filter applied, page == 1, fetch attempted
func (c *Controller[T]) ChangeFilter(ctx context.Context, status string) error {
	c.mu.Lock()
	c.status = status
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ChangePage moves delta pages. Out-of-range targets are a no-op: no state
// change, no fetch.
// PRE: a fetch has established TotalPages (otherwise only page 1 is valid)
// POST: page moved and refetched, or untouched when out of range
func (c *Controller[T]) ChangePage(ctx context.Context, delta int) error {
	c.mu.Lock()
	target := c.page + delta
	totalPages := c.pageInfo.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	if target < 1 || target > totalPages {
		c.mu.Unlock()
		return nil
	}
	c.page = target
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Mutate runs a create/edit/delete call. On success the current page is
// refetched under the current search/filter; on failure the error is
// returned and the visible items are left exactly as they were (no
// optimistic update was applied, so there is nothing to roll back).
// PRE: mutation is non-nil
// POST: backend state changed and list refetched, or error surfaced
func (c *Controller[T]) Mutate(ctx context.Context, mutation Mutation) error {
	if err := mutation(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Snapshot returns the current state for rendering.
func (c *Controller[T]) Snapshot() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View[T]{
		Items:    c.items,
		PageInfo: c.pageInfo,
		Search:   c.search,
		Status:   c.status,
		Loading:  c.inflight > 0,
		Err:      c.err,
	}
	if c.loaded && len(c.items) == 0 {
		if c.search != "" || c.status != "" {
			v.Empty = EmptyNoResults
		} else {
			v.Empty = EmptyNoData
		}
	}
	return v
}
