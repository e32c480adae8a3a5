package collection

import (
	"github.com/google/uuid"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

// PageResult is one fetched page of a collection together with the
// server-reported total, independent of how many items came back.
type PageResult struct {
	Items      []model.Item
	TotalItems int
}

// Store holds the authoritative client-side copy of a collection: the
// last-applied items and total. Responses are applied last-request-wins:
// Begin marks a new in-flight request, and Apply only accepts the token
// of the most recently issued one, so a stale response that arrives after
// a newer request was started is silently discarded.
type Store struct {
	items   []model.Item
	total   int
	pending string // token of the newest in-flight request; "" = none
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Begin registers a new in-flight request and returns its token.
// Any previously issued token becomes stale.
func (s *Store) Begin() string {
	s.pending = uuid.NewString()
	return s.pending
}

// Pending reports whether a request is outstanding.
func (s *Store) Pending() bool { return s.pending != "" }

// Current reports whether token belongs to the newest in-flight request.
func (s *Store) Current(token string) bool {
	return token != "" && token == s.pending
}

// Apply stores the result if token is still the newest request and
// reports whether it was applied.
func (s *Store) Apply(token string, res PageResult) bool {
	if !s.Current(token) {
		return false
	}
	s.items = res.Items
	s.total = res.TotalItems
	s.pending = ""
	return true
}

// Fail clears the in-flight marker for token without touching the stored
// items, so the pre-fetch view stays in place. It reports whether token
// was the newest request.
func (s *Store) Fail(token string) bool {
	if !s.Current(token) {
		return false
	}
	s.pending = ""
	return true
}

// Seed installs items without consuming the pending token, so a cached
// page can be painted while the first live fetch is still in flight.
func (s *Store) Seed(res PageResult) {
	s.items = res.Items
	s.total = res.TotalItems
}

// Items returns the last-applied items.
func (s *Store) Items() []model.Item { return s.items }

// Total returns the last-applied server total.
func (s *Store) Total() int { return s.total }
