package api

import "strings"

// narrow keeps the rows matching pred. List handlers chain narrow calls,
// one per active query filter, so the result is the conjunction of all of
// them and snapshot order is preserved throughout.
func narrow[T any](rows []T, pred func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
