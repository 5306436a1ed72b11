// Package css implements typed CSS values that render themselves as
// canonical CSS text. Values are immutable: every constructor and method
// returns a new value, and String never mutates its receiver.
package css

import (
	"strconv"
	"strings"
)

// formatFloat renders a number the way CSS serializes it: integral values
// carry no decimal point and fractional values keep the shortest digit run
// that still round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeString escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func EscapeString(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Raw is a CSS value used verbatim, unescaped and unvalidated. It is the
// escape hatch for anything the typed values cannot express.
type Raw string

// String returns the value exactly as written.
func (r Raw) String() string { return string(r) }

func (Raw) isColor() {}
func (Raw) isImage() {}

// Global is one of the CSS-wide keywords accepted by every property.
type Global string

const (
	Inherit     Global = "inherit"
	Initial     Global = "initial"
	Unset       Global = "unset"
	Revert      Global = "revert"
	RevertLayer Global = "revert-layer"
)

// String returns the bare keyword.
func (g Global) String() string { return string(g) }

// Calc wraps an expression body in calc(). The body is not validated.
func Calc(expr string) Raw {
	return Raw("calc(" + expr + ")")
}
