package collection

import "github.com/tsudoi-club/tsudoi/internal/model"

// Mode selects how a Controller sources its visible items.
type Mode int

const (
	// ModeServer keeps only the current page client-side; paging and
	// search are pushed to the list endpoint.
	ModeServer Mode = iota
	// ModeLocal keeps the whole collection client-side and pages and
	// filters it in memory.
	ModeLocal
)

// Request describes a fetch the caller must perform asynchronously and
// feed back through Apply. In ModeLocal, Page and PageSize are zero: the
// whole collection is requested.
type Request struct {
	Token    string
	Page     int
	PageSize int
	Term     string
}

// ViewState is the read-only surface a screen renders from.
type ViewState struct {
	Items       []model.Item
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Window      []Marker
	Term        string
	Loading     bool
	Err         error // last fetch error; nil once a fetch succeeds
}

// Controller drives one paginated, searchable collection view. It owns
// the page navigator and store, turns navigation and search intents into
// fetch Requests, and reconciles page state after mutations so the view
// never points at a page that no longer exists.
//
// The controller performs no I/O itself: callers execute each Request
// (typically as a bubbletea command) and hand the outcome to Apply.
type Controller struct {
	mode   Mode
	nav    Navigator
	store  *Store
	term   string
	radius int

	loading bool
	err     error
	live    bool // a live response has been applied at least once

	// deleteToken marks the refetch issued after a delete; an empty page
	// in its response triggers the page-decrement correction.
	deleteToken string
}

// New returns a Controller for the given mode and page size.
func New(mode Mode, pageSize int) *Controller {
	return &Controller{
		mode:   mode,
		nav:    NewNavigator(pageSize),
		store:  NewStore(),
		radius: DefaultRadius,
	}
}

// Refresh issues a fetch of the current page (or, in ModeLocal, the whole
// collection) without changing any navigation state.
func (c *Controller) Refresh() Request {
	c.deleteToken = ""
	return c.request()
}

// SetSearch changes the active search term and resets to page 1.
// It returns a Request when a server fetch is needed, nil when the change
// can be answered from memory or the term is unchanged.
func (c *Controller) SetSearch(term string) *Request {
	if term == c.term {
		return nil
	}
	c.term = term
	c.nav.GoTo(1, 1)
	if c.mode == ModeLocal {
		return nil
	}
	r := c.request()
	return &r
}

// GoTo navigates to the given page, clamped. Nil means the page did not
// change or no fetch is needed.
func (c *Controller) GoTo(page int) *Request {
	return c.navigate(func() bool { return c.nav.GoTo(page, c.totalPages()) })
}

// Next advances one page, clamped at the last page.
func (c *Controller) Next() *Request {
	return c.navigate(func() bool { return c.nav.Next(c.totalPages()) })
}

// Prev goes back one page, clamped at page 1.
func (c *Controller) Prev() *Request {
	return c.navigate(func() bool { return c.nav.Prev(c.totalPages()) })
}

// SetPageSize changes the page size, re-clamping the current page.
func (c *Controller) SetPageSize(size int) *Request {
	changed := c.nav.SetPageSize(size, c.total())
	if c.mode == ModeLocal || !changed {
		return nil
	}
	r := c.request()
	return &r
}

// AfterCreate must be called once a create has been confirmed by the
// server. The current page is refetched but never changed: the new item
// becomes visible when the user navigates to wherever the server ordered
// it.
func (c *Controller) AfterCreate() Request {
	c.deleteToken = ""
	return c.request()
}

// AfterUpdate refetches the current page after a confirmed edit.
func (c *Controller) AfterUpdate() Request {
	c.deleteToken = ""
	return c.request()
}

// AfterDelete refetches after a confirmed delete. If the refetched page
// comes back empty while pages remain before it, Apply decrements the
// page and returns a follow-up Request. The correction terminates: the
// page strictly decreases and is bounded below by 1.
func (c *Controller) AfterDelete() Request {
	r := c.request()
	c.deleteToken = r.Token
	return r
}

// Apply feeds a fetch outcome back into the controller. The first return
// is a follow-up Request the caller must also execute (page correction
// after a delete, or a re-clamp after the collection shrank); the second
// reports whether the response was applied at all. Stale responses, ones
// superseded by a newer request, are discarded and report false.
//
// On error the pre-fetch view is retained and the error surfaces in
// ViewState; no new page is guessed.
func (c *Controller) Apply(token string, res PageResult, err error) (*Request, bool) {
	if err != nil {
		if !c.store.Fail(token) {
			return nil, false
		}
		c.loading = false
		c.err = err
		c.live = true
		c.deleteToken = ""
		return nil, true
	}

	wasDelete := token == c.deleteToken
	if !c.store.Apply(token, res) {
		return nil, false
	}
	c.loading = false
	c.err = nil
	c.live = true
	c.deleteToken = ""

	if c.mode == ModeLocal {
		c.nav.GoTo(c.nav.Page(), c.totalPages())
		return nil, true
	}

	if wasDelete && len(res.Items) == 0 && c.nav.Page() > 1 {
		c.nav.GoTo(c.nav.Page()-1, c.nav.Page()-1)
		r := c.request()
		c.deleteToken = r.Token
		return &r, true
	}

	// The collection may have shrunk out from under the current page
	// (another client, or a search that matches fewer items).
	if tp := TotalPages(res.TotalItems, c.nav.PageSize()); tp > 0 && c.nav.Page() > tp {
		c.nav.GoTo(tp, tp)
		r := c.request()
		return &r, true
	}
	return nil, true
}

// Seed paints a cached page while the first live fetch is in flight.
// Once any live response has arrived the seed is ignored, so stale cache
// never overwrites fresh data. Reports whether the seed was applied.
func (c *Controller) Seed(res PageResult) bool {
	if c.live {
		return false
	}
	c.store.Seed(res)
	return true
}

// View derives the current render state. The returned slice is never
// longer than the page size and is empty only for a genuinely empty
// (or fully filtered-out) collection.
func (c *Controller) View() ViewState {
	var items []model.Item
	var total int
	if c.mode == ModeLocal {
		filtered := Filter(c.store.Items(), c.term)
		total = len(filtered)
		items = c.nav.Slice(filtered)
	} else {
		items = c.store.Items()
		total = c.store.Total()
	}

	tp := TotalPages(total, c.nav.PageSize())
	return ViewState{
		Items:       items,
		CurrentPage: c.nav.Page(),
		TotalPages:  tp,
		TotalItems:  total,
		Window:      Window(tp, c.nav.Page(), c.radius),
		Term:        c.term,
		Loading:     c.loading,
		Err:         c.err,
	}
}

// Matches returns every loaded item matching the active term: the whole
// filtered collection in ModeLocal, the current page in ModeServer.
func (c *Controller) Matches() []model.Item {
	if c.mode == ModeLocal {
		return Filter(c.store.Items(), c.term)
	}
	return c.store.Items()
}

// Mode returns the controller's sourcing mode.
func (c *Controller) Mode() Mode { return c.mode }

// Term returns the active search term.
func (c *Controller) Term() string { return c.term }

// Page returns the current page.
func (c *Controller) Page() int { return c.nav.Page() }

// PageSize returns the configured page size.
func (c *Controller) PageSize() int { return c.nav.PageSize() }

// navigate runs a navigation intent and issues a fetch when the page
// changed in server mode.
func (c *Controller) navigate(move func() bool) *Request {
	if !move() {
		return nil
	}
	if c.mode == ModeLocal {
		return nil
	}
	r := c.request()
	return &r
}

func (c *Controller) request() Request {
	token := c.store.Begin()
	c.loading = true
	if c.mode == ModeLocal {
		return Request{Token: token}
	}
	return Request{
		Token:    token,
		Page:     c.nav.Page(),
		PageSize: c.nav.PageSize(),
		Term:     c.term,
	}
}

func (c *Controller) total() int {
	if c.mode == ModeLocal {
		return len(Filter(c.store.Items(), c.term))
	}
	return c.store.Total()
}

func (c *Controller) totalPages() int {
	return TotalPages(c.total(), c.nav.PageSize())
}
