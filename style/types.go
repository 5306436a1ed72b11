package style

import "csskit/css"

// Indent is a text-indent value. It satisfies the length-percentage
// convertible contract, so the generic unit factories build it directly:
// unit.Em[style.Indent](1.5).
type Indent css.LengthPercentage

// FromLength wraps a length as an indent.
func (Indent) FromLength(v css.Length) Indent {
	return Indent(css.LengthPercentage{}.FromLength(v))
}

// FromPercentage wraps a percentage as an indent.
func (Indent) FromPercentage(v css.Percentage) Indent {
	return Indent(css.LengthPercentage{}.FromPercentage(v))
}

// String returns the canonical CSS serialization of the indent.
func (i Indent) String() string { return css.LengthPercentage(i).String() }

// Spacing is a letter-spacing or word-spacing value. It satisfies the
// length convertible contract: unit.Px[style.Spacing](0.5).
type Spacing css.Length

// FromLength wraps a length as a spacing.
func (Spacing) FromLength(v css.Length) Spacing { return Spacing(v) }

// String returns the canonical CSS serialization of the spacing.
func (s Spacing) String() string { return css.Length(s).String() }
