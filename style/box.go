package style

import (
	"strings"

	"csskit/css"
)

// Box holds per-side values of a box shorthand such as margin or padding.
type Box struct {
	Top, Right, Bottom, Left css.LengthPercentage
}

// BoxOf expands 1 to 4 shorthand values into per-side values following the
// CSS box model rules: one value sets all sides, two set vertical then
// horizontal, three set top, horizontal, bottom, four set top, right,
// bottom, left in clockwise order. Any other count is a programmer error
// and panics.
func BoxOf(values ...css.LengthPercentage) Box {
	switch len(values) {
	case 1:
		return Box{Top: values[0], Right: values[0], Bottom: values[0], Left: values[0]}
	case 2:
		return Box{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}
	case 3:
		return Box{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}
	case 4:
		return Box{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}
	default:
		panic("style: box shorthand takes 1 to 4 values")
	}
}

// Values returns the shortest value list that renders this box.
func (b Box) Values() []css.LengthPercentage {
	top, right, bottom, left := b.Top.String(), b.Right.String(), b.Bottom.String(), b.Left.String()
	switch {
	case top == right && right == bottom && bottom == left:
		return []css.LengthPercentage{b.Top}
	case top == bottom && right == left:
		return []css.LengthPercentage{b.Top, b.Right}
	case right == left:
		return []css.LengthPercentage{b.Top, b.Right, b.Bottom}
	default:
		return []css.LengthPercentage{b.Top, b.Right, b.Bottom, b.Left}
	}
}

// String renders the box in its shortest shorthand form.
func (b Box) String() string {
	vals := b.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
