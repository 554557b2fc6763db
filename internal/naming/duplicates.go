package naming

import "github.com/samber/lo"

// Duplicate is a full name that occurs more than once in a sorted list.
type Duplicate struct {
	FullName string
	Count    int
}

// Duplicates reports every full name appearing more than once in names, in
// order of first appearance. Since sorted output places equal names next to
// each other, the result for Sort output is itself sorted.
func Duplicates(names []string) []Duplicate {
	counts := lo.CountValues(names)
	var dups []Duplicate
	for _, full := range lo.Uniq(names) {
		if c := counts[full]; c > 1 {
			dups = append(dups, Duplicate{FullName: full, Count: c})
		}
	}
	return dups
}
