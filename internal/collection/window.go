package collection

// Marker is one entry in a pagination window: either a page number
// or an ellipsis standing in for a run of hidden pages.
type Marker struct {
	Page     int
	Ellipsis bool
}

// DefaultRadius is the number of neighboring pages shown on each side
// of the current page.
const DefaultRadius = 2

// Window returns the bounded sequence of page markers to render for a
// collection with totalPages pages: always page 1 and the last page,
// every page within radius of currentPage, and a single ellipsis for
// any gap wider than one page. The length of the result is bounded
// regardless of totalPages.
func Window(totalPages, currentPage, radius int) []Marker {
	if totalPages <= 0 {
		return nil
	}
	if totalPages == 1 {
		return []Marker{{Page: 1}}
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if radius < 0 {
		radius = 0
	}

	pages := []int{1}
	start := max(2, currentPage-radius)
	end := min(totalPages-1, currentPage+radius)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	pages = append(pages, totalPages)

	markers := make([]Marker, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			markers = append(markers, Marker{Ellipsis: true})
		}
		markers = append(markers, Marker{Page: p})
	}
	return markers
}

// TotalPages derives the page count for totalCount items at pageSize per
// page. Zero items means zero pages.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
