// Package history drives the transaction history screen: it owns the active
// filter set and the page cursor, and turns navigation requests into API
// queries. The engine never lets the cursor move past an edge the server has
// not confirmed, and a response that arrives after a newer query has started
// is discarded rather than applied.
package history

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Lister is the slice of the API client the engine needs.
type Lister interface {
	TransactionHistory(ctx context.Context, query url.Values) ([]models.Transaction, *models.PageInfo, error)
}

var (
	// ErrNoPage is returned when navigation is requested past an edge or
	// before any query ran. No request is issued in either case.
	ErrNoPage = errors.New("no such page")

	// ErrSuperseded is returned when a response arrived after a newer query
	// had started; its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer query")
)

// Filters is the current query criteria. Zero values mean "not filtered".
type Filters struct {
	Type      models.TransactionType
	AccountID int64
	DateRange string
	Limit     int
}

// Engine holds the filter state and page cursor for the history view.
type Engine struct {
	api Lister
	log logging.Logger

	mu      sync.Mutex
	filters Filters
	page    models.PageInfo
	items   []models.Transaction
	loaded  bool
	gen     uint64
}

func NewEngine(api Lister, log logging.Logger) *Engine {
	return &Engine{api: api, log: log}
}

// Query loads the first page of a new filter set. The filters are installed
// together with the result, so a failed query leaves the previous filters,
// cursor and items all intact.
func (e *Engine) Query(ctx context.Context, f Filters) ([]models.Transaction, models.PageInfo, error) {
	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	return e.fetch(ctx, gen, f, 1)
}

// GoToPage loads the given page of the current result set. Pages outside the
// confirmed range, or any page before the first Query, are rejected locally.
func (e *Engine) GoToPage(ctx context.Context, page int) ([]models.Transaction, models.PageInfo, error) {
	e.mu.Lock()
	if !e.loaded || page < 1 || page > e.page.TotalPages {
		e.mu.Unlock()
		return nil, models.PageInfo{}, ErrNoPage
	}
	e.gen++
	gen := e.gen
	f := e.filters
	e.mu.Unlock()

	return e.fetch(ctx, gen, f, page)
}

// NextPage advances the cursor. It refuses without a request when the server
// has not confirmed a next page.
func (e *Engine) NextPage(ctx context.Context) ([]models.Transaction, models.PageInfo, error) {
	e.mu.Lock()
	if !e.loaded || !e.page.HasNext {
		e.mu.Unlock()
		return nil, models.PageInfo{}, ErrNoPage
	}
	target := e.page.CurrentPage + 1
	e.gen++
	gen := e.gen
	f := e.filters
	e.mu.Unlock()

	return e.fetch(ctx, gen, f, target)
}

// PreviousPage moves the cursor back, refusing on the first page.
func (e *Engine) PreviousPage(ctx context.Context) ([]models.Transaction, models.PageInfo, error) {
	e.mu.Lock()
	if !e.loaded || !e.page.HasPrevious {
		e.mu.Unlock()
		return nil, models.PageInfo{}, ErrNoPage
	}
	target := e.page.CurrentPage - 1
	e.gen++
	gen := e.gen
	f := e.filters
	e.mu.Unlock()

	return e.fetch(ctx, gen, f, target)
}

// Reset drops the filters, the cursor, and the cached page, and invalidates
// any query still in flight.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.filters = Filters{}
	e.page = models.PageInfo{}
	e.items = nil
	e.loaded = false
}

// Filters returns the active criteria.
func (e *Engine) Filters() Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters
}

// Page returns the last confirmed cursor position.
func (e *Engine) Page() models.PageInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

// Items returns the last loaded page of transactions.
func (e *Engine) Items() []models.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items
}

// fetch performs the network call without holding the lock and applies the
// result, filters included, only if no newer query started meanwhile. A
// failed call leaves the previous filters, items and cursor exactly as they
// were.
func (e *Engine) fetch(ctx context.Context, gen uint64, f Filters, page int) ([]models.Transaction, models.PageInfo, error) {
	items, info, err := e.api.TransactionHistory(ctx, values(f, page))
	if err != nil {
		return nil, models.PageInfo{}, err
	}

	pi := models.PageInfo{CurrentPage: page}
	if info != nil {
		pi = *info
	}
	pi.Normalize()

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return nil, models.PageInfo{}, ErrSuperseded
	}
	e.filters = f
	e.items = items
	e.page = pi
	e.loaded = true
	e.log.Debug(ctx, "history page loaded",
		"page", pi.CurrentPage, "totalPages", pi.TotalPages, "items", len(items))
	return items, pi, nil
}

// values serializes the filters into query parameters, omitting every
// criterion that is not set.
func values(f Filters, page int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.AccountID > 0 {
		q.Set("accountId", strconv.FormatInt(f.AccountID, 10))
	}
	if f.DateRange != "" {
		q.Set("dateRange", f.DateRange)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}
