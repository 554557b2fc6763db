package display

import (
	"fmt"
	"io"

	"github.com/backmassage/namesorter/internal/term"
)

const banner = ` _ __   __ _ _ __ ___   ___  ___  ___  _ __| |_ ___ _ __
| '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \/ __|/ _ \| '__| __/ _ \ '__|
| | | | (_| | | | | | |  __/\__ \ (_) | |  | ||  __/ |
|_| |_|\__,_|_| |_| |_|\___||___/\___/|_|   \__\___|_|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
	if term.Enabled() {
		fmt.Fprintln(w)
	}
}
