package service

import (
	"strings"

	"legalresearch-backend/models"
)

// Select returns up to n items from collection.
//
// When match is non-nil and at least n items satisfy it, the first n matching
// items are returned in their original order. Otherwise the first n items of the
// unfiltered collection are returned: a filter that under-selects is advisory.
// A collection shorter than n is returned whole.
func Select[T any](collection []T, n int, match func(T) bool) []T {
	selected, _ := selectWithFallback(collection, n, match)
	return selected
}

// selectWithFallback is Select that also reports whether a predicate was ignored
// because it matched fewer items than could be returned.
func selectWithFallback[T any](collection []T, n int, match func(T) bool) ([]T, bool) {
	if n <= 0 {
		return []T{}, false
	}

	matched := 0
	if match != nil {
		filtered := make([]T, 0, min(n, len(collection)))
		for _, item := range collection {
			if match(item) {
				filtered = append(filtered, item)
				if len(filtered) == n {
					return filtered, false
				}
			}
		}
		matched = len(filtered)
	}

	limit := min(n, len(collection))
	out := make([]T, limit)
	copy(out, collection[:limit])
	return out, match != nil && matched < limit
}

// matchField reports whether a record field satisfies a query field.
// An absent query field matches everything; otherwise the comparison ignores case.
func matchField(want, have *string) bool {
	if want == nil || *want == "" {
		return true
	}
	if have == nil {
		return false
	}
	return strings.EqualFold(*want, *have)
}

// MatchStatute builds the statute predicate for a query
func MatchStatute(q models.ResearchQuery) func(models.StatuteRecord) bool {
	return func(s models.StatuteRecord) bool {
		return matchField(q.Jurisdiction, s.Jurisdiction) && matchField(q.CaseType, s.CaseType)
	}
}

// MatchCase builds the case predicate for a query
func MatchCase(q models.ResearchQuery) func(models.CaseRecord) bool {
	return func(c models.CaseRecord) bool {
		return matchField(q.Jurisdiction, c.Jurisdiction) && matchField(q.CaseType, c.CaseType)
	}
}
