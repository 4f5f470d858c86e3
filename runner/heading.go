package runner

import (
	"strings"

	"golang.org/x/text/width"
)

// visibleWidth counts terminal columns rather than runes, so underlines
// stay aligned under East Asian wide characters.
func visibleWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// underlined renders a ReST heading: the text, an underline of c matching
// its visible width, and a trailing blank line.
func underlined(s string, c byte) string {
	return s + "\n" + strings.Repeat(string(c), visibleWidth(s)) + "\n\n"
}
