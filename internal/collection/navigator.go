package collection

import "github.com/tsudoi-club/tsudoi/internal/model"

// Navigator holds the current page and page size and applies navigation
// intents, clamping to the valid range. Moves past a boundary are no-ops,
// not errors.
type Navigator struct {
	page     int
	pageSize int
}

// NewNavigator returns a Navigator on page 1.
func NewNavigator(pageSize int) Navigator {
	if pageSize < 1 {
		pageSize = 1
	}
	return Navigator{page: 1, pageSize: pageSize}
}

// Page returns the current page, always >= 1.
func (n Navigator) Page() int { return n.page }

// PageSize returns the configured page size.
func (n Navigator) PageSize() int { return n.pageSize }

// GoTo moves to the given page, clamped to [1, max(totalPages, 1)].
// It reports whether the current page actually changed.
func (n *Navigator) GoTo(page, totalPages int) bool {
	page = clampPage(page, totalPages)
	if page == n.page {
		return false
	}
	n.page = page
	return true
}

// Next advances one page, clamped.
func (n *Navigator) Next(totalPages int) bool {
	return n.GoTo(n.page+1, totalPages)
}

// Prev goes back one page, clamped.
func (n *Navigator) Prev(totalPages int) bool {
	return n.GoTo(n.page-1, totalPages)
}

// SetPageSize changes the page size and re-clamps the current page against
// the recomputed page count. It reports whether the visible page changed,
// which callers use to decide on a refetch.
func (n *Navigator) SetPageSize(size, totalCount int) bool {
	if size < 1 || size == n.pageSize {
		return false
	}
	n.pageSize = size
	n.page = clampPage(n.page, TotalPages(totalCount, size))
	return true
}

// Slice returns the items visible on the current page when the navigator
// drives a full in-memory list. The result is never longer than the page
// size and is empty only when items is empty.
func (n Navigator) Slice(items []model.Item) []model.Item {
	start := (n.page - 1) * n.pageSize
	if start >= len(items) {
		return nil
	}
	end := min(start+n.pageSize, len(items))
	return items[start:end]
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
