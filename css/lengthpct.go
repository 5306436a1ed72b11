package css

type lpKind uint8

const (
	lpLength lpKind = iota
	lpPercentage
	lpCalc
)

// LengthPercentage is a CSS <length-percentage>: a Length, a Percentage or
// a raw calc() expression. The zero value is the zero pixel length. Lengths
// and percentages are never converted into one another; the variant chosen
// at construction is the variant rendered.
//
// Build values through the widening methods (css.Px(10).LengthPercentage(),
// css.Percentage(50).LengthPercentage()) or the generic factories in the
// unit package (unit.Px[css.LengthPercentage](10)).
type LengthPercentage struct {
	kind       lpKind
	length     Length
	percentage Percentage
	expr       string
}

// CalcLengthPercentage returns a <length-percentage> holding a raw calc()
// expression body. The body is not validated.
func CalcLengthPercentage(expr string) LengthPercentage {
	return LengthPercentage{kind: lpCalc, expr: "calc(" + expr + ")"}
}

// String returns the canonical CSS serialization of the value.
func (p LengthPercentage) String() string {
	switch p.kind {
	case lpPercentage:
		return p.percentage.String()
	case lpCalc:
		return p.expr
	default:
		return p.length.String()
	}
}

// FromLength wraps a length, satisfying the length convertible contract.
func (LengthPercentage) FromLength(v Length) LengthPercentage {
	return LengthPercentage{kind: lpLength, length: v}
}

// FromPercentage wraps a percentage, satisfying the percentage convertible
// contract.
func (LengthPercentage) FromPercentage(v Percentage) LengthPercentage {
	return LengthPercentage{kind: lpPercentage, percentage: v}
}
