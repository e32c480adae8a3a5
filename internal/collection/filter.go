package collection

import (
	"strings"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

// Filter returns the items whose owner or title contains term,
// case-insensitively. An empty or whitespace-only term matches everything
// and returns the input slice unchanged. Order is preserved.
func Filter(items []model.Item, term string) []model.Item {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	var result []model.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Owner), needle) ||
			strings.Contains(strings.ToLower(item.Title), needle) {
			result = append(result, item)
		}
	}
	return result
}
