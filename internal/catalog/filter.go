package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps products whose name contains query (case-insensitive) and
// whose category matches, where CategoryAll or "" matches everything.
func Filter(products []Product, query, category string) []Product {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if category == "" {
		category = CategoryAll
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(fold.String(p.Name), q) {
			continue
		}
		if category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
