package naming

import "strings"

// Compare orders two names by surname, then by each given name in position
// order. At the first position where only one name has a given name, the
// name without it sorts first. Strings are compared byte-wise.
//
// The result is negative when a sorts before b, positive when after, and
// zero when the full key ties.
func Compare(a, b Name) int {
	if c := strings.Compare(a.surname, b.surname); c != 0 {
		return c
	}
	for i := 0; i < MaxGivenNames; i++ {
		aok, bok := i < a.count, i < b.count
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if c := strings.Compare(a.given[i], b.given[i]); c != 0 {
			return c
		}
	}
	return 0
}
