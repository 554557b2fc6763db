package naming

import "strings"

// MaxGivenNames is the largest number of given names a Name can carry.
const MaxGivenNames = 3

// Name is the structured form of one raw name line. It is an immutable value:
// the zero value is not a valid name, and valid names only come from [Parse].
// Names are comparable with ==.
type Name struct {
	surname string
	given   [MaxGivenNames]string
	count   int // number of populated entries in given; 1..MaxGivenNames
}

// Surname returns the last token of the parsed input.
func (n Name) Surname() string { return n.surname }

// GivenNames returns a copy of the given names in input order.
func (n Name) GivenNames() []string {
	out := make([]string, n.count)
	copy(out, n.given[:n.count])
	return out
}

// GivenName returns the i-th given name and whether it is present.
func (n Name) GivenName(i int) (string, bool) {
	if i < 0 || i >= n.count {
		return "", false
	}
	return n.given[i], true
}

// FullName joins the given names and the surname with single spaces.
func (n Name) FullName() string {
	var b strings.Builder
	for i := 0; i < n.count; i++ {
		b.WriteString(n.given[i])
		b.WriteByte(' ')
	}
	b.WriteString(n.surname)
	return b.String()
}

// String implements fmt.Stringer.
func (n Name) String() string { return n.FullName() }
