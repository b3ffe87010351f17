package catalog

import (
	"sort"
	"strings"

	"github.com/autoflowai/autoflow/pkg/models"
)

// Apply filters records by query and orders the result by mode. It is a pure
// function of its inputs: the input slice is never mutated, ties keep catalog
// order, and a query with no matches yields an empty (non-nil) slice.
//
// Filtering includes a record iff the trimmed query is a case-insensitive
// substring of its title, description, or category; the empty query includes
// everything.
//
// SortModePopular partitions popular records before the rest, each partition
// ordered by descending CreatedAt. SortModeRecent orders by descending
// CreatedAt only.
func Apply(records []*models.Template, query string, mode models.SortMode) []*models.Template {
	out := Filter(records, query)
	Sort(out, mode)

	return out
}

// Filter returns the records matching query, preserving input order.
func Filter(records []*models.Template, query string) []*models.Template {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.Template, 0, len(records))

	for _, t := range records {
		if q == "" || matches(t, q) {
			out = append(out, t)
		}
	}

	return out
}

func matches(t *models.Template, q string) bool {
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}

// Sort orders records in place according to mode. Unknown modes sort as
// SortModeRecent.
func Sort(records []*models.Template, mode models.SortMode) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if mode == models.SortModePopular && a.IsPopular != b.IsPopular {
			return a.IsPopular
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}
