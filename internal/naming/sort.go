package naming

import (
	"slices"

	"github.com/samber/lo"
)

// ParseAll parses raw in order and stops at the first failure, returning that
// *ParseError unchanged. Later entries are never parsed.
func ParseAll(raw []string) ([]Name, error) {
	names := make([]Name, 0, len(raw))
	for _, r := range raw {
		n, err := Parse(r)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}

// SortNames sorts names in place by [Compare]. Names whose keys tie keep
// their relative order.
func SortNames(names []Name) {
	slices.SortStableFunc(names, Compare)
}

// Sort parses every raw name, orders the records and returns their full
// names. A nil slice fails with ErrNilCollection; an empty slice yields an
// empty result. The first parse failure aborts the whole call and is
// returned as-is, with no partial result.
func Sort(rawNames []string) ([]string, error) {
	if rawNames == nil {
		return nil, ErrNilCollection
	}
	names, err := ParseAll(rawNames)
	if err != nil {
		return nil, err
	}
	SortNames(names)
	return lo.Map(names, func(n Name, _ int) string { return n.FullName() }), nil
}
