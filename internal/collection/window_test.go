package collection

import "testing"

func page(p int) Marker { return Marker{Page: p} }
func ellipsis() Marker  { return Marker{Ellipsis: true} }

func markersEqual(a, b []Marker) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		current    int
		radius     int
		want       []Marker
	}{
		{
			name:       "empty collection has no markers",
			totalPages: 0, current: 1, radius: 2,
			want: nil,
		},
		{
			name:       "single page",
			totalPages: 1, current: 1, radius: 2,
			want: []Marker{page(1)},
		},
		{
			name:       "middle of a long collection",
			totalPages: 10, current: 5, radius: 2,
			want: []Marker{page(1), ellipsis(), page(3), page(4), page(5), page(6), page(7), ellipsis(), page(10)},
		},
		{
			name:       "at the start the leading ellipsis disappears",
			totalPages: 10, current: 1, radius: 2,
			want: []Marker{page(1), page(2), page(3), ellipsis(), page(10)},
		},
		{
			name:       "at the end the trailing ellipsis disappears",
			totalPages: 10, current: 10, radius: 2,
			want: []Marker{page(1), ellipsis(), page(8), page(9), page(10)},
		},
		{
			name:       "short collection from page 1 still bridges the tail gap",
			totalPages: 5, current: 1, radius: 2,
			want: []Marker{page(1), page(2), page(3), ellipsis(), page(5)},
		},
		{
			name:       "gap of exactly one marker step needs no ellipsis",
			totalPages: 5, current: 2, radius: 2,
			want: []Marker{page(1), page(2), page(3), page(4), page(5)},
		},
		{
			name:       "two pages",
			totalPages: 2, current: 2, radius: 2,
			want: []Marker{page(1), page(2)},
		},
		{
			name:       "current page beyond the end is clamped",
			totalPages: 4, current: 9, radius: 1,
			want: []Marker{page(1), ellipsis(), page(3), page(4)},
		},
		{
			name:       "radius zero",
			totalPages: 9, current: 5, radius: 0,
			want: []Marker{page(1), ellipsis(), page(5), ellipsis(), page(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.totalPages, tt.current, tt.radius)
			if !markersEqual(got, tt.want) {
				t.Errorf("Window(%d, %d, %d) = %v, want %v",
					tt.totalPages, tt.current, tt.radius, got, tt.want)
			}
		})
	}
}

// The window must be strictly increasing, contain the first and last page,
// never place two ellipses next to each other, and stay bounded in length
// no matter how large the collection grows.
func TestWindow_Properties(t *testing.T) {
	const radius = 2
	maxLen := 2*radius + 5 // first, last, 2r+1 around current, two ellipses

	for totalPages := 0; totalPages <= 60; totalPages++ {
		for current := 1; current <= totalPages; current++ {
			markers := Window(totalPages, current, radius)

			if len(markers) > maxLen {
				t.Fatalf("Window(%d, %d): length %d exceeds bound %d",
					totalPages, current, len(markers), maxLen)
			}
			if totalPages >= 1 {
				if markers[0].Page != 1 {
					t.Fatalf("Window(%d, %d): first marker %v, want page 1", totalPages, current, markers[0])
				}
				if last := markers[len(markers)-1]; last.Page != totalPages {
					t.Fatalf("Window(%d, %d): last marker %v, want page %d", totalPages, current, last, totalPages)
				}
			}

			prevPage := 0
			for i, m := range markers {
				if m.Ellipsis {
					if i == 0 || markers[i-1].Ellipsis {
						t.Fatalf("Window(%d, %d): ellipsis misplaced at %d", totalPages, current, i)
					}
					continue
				}
				if m.Page <= prevPage {
					t.Fatalf("Window(%d, %d): pages not strictly increasing: %v", totalPages, current, markers)
				}
				prevPage = m.Page
			}

			// Every page within radius of current must be present.
			for p := current - radius; p <= current+radius; p++ {
				if p < 1 || p > totalPages {
					continue
				}
				found := false
				for _, m := range markers {
					if !m.Ellipsis && m.Page == p {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("Window(%d, %d): page %d within radius missing: %v", totalPages, current, p, markers)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{30, 3, 10},
		{31, 3, 11},
		{5, 1, 5},
		{7, 0, 0},
		{-3, 10, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}
