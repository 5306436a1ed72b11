package css

import (
	"errors"
	"fmt"
)

// ErrInvalidValue reports a value outside the grammar of the type being
// constructed. It is the only validation error in the package: everything
// except Ratio passes values through verbatim.
var ErrInvalidValue = errors.New("invalid value")

// Ratio is a CSS <ratio> as used by aspect-ratio and media queries.
type Ratio struct {
	width  float64
	height float64
}

// NewRatio builds a width/height ratio. The CSS grammar admits no negative
// component, so either side below zero is rejected with ErrInvalidValue.
func NewRatio(width, height float64) (Ratio, error) {
	if width < 0 {
		return Ratio{}, fmt.Errorf("ratio width %s: %w", formatFloat(width), ErrInvalidValue)
	}
	if height < 0 {
		return Ratio{}, fmt.Errorf("ratio height %s: %w", formatFloat(height), ErrInvalidValue)
	}
	return Ratio{width: width, height: height}, nil
}

// String returns "W / H", or just "W" when the height is exactly 1 (the
// two forms are equivalent in CSS).
func (r Ratio) String() string {
	if r.height == 1 {
		return formatFloat(r.width)
	}
	return formatFloat(r.width) + " / " + formatFloat(r.height)
}
