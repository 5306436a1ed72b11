package css

import "fmt"

// LengthUnit identifies the unit of a Length dimension.
type LengthUnit uint8

const (
	UnitPx LengthUnit = iota
	UnitEm
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
	UnitEx
	UnitCh
	UnitLh
	UnitFr
	UnitQ
	UnitCap
	UnitIc
	UnitRlh
)

var lengthUnitNames = [...]string{
	UnitPx:   "px",
	UnitEm:   "em",
	UnitRem:  "rem",
	UnitVw:   "vw",
	UnitVh:   "vh",
	UnitVmin: "vmin",
	UnitVmax: "vmax",
	UnitCm:   "cm",
	UnitMm:   "mm",
	UnitIn:   "in",
	UnitPt:   "pt",
	UnitPc:   "pc",
	UnitEx:   "ex",
	UnitCh:   "ch",
	UnitLh:   "lh",
	UnitFr:   "fr",
	UnitQ:    "Q",
	UnitCap:  "cap",
	UnitIc:   "ic",
	UnitRlh:  "rlh",
}

// String returns the CSS suffix of the unit.
func (u LengthUnit) String() string {
	if int(u) < len(lengthUnitNames) {
		return lengthUnitNames[u]
	}
	return ""
}

type lengthKind uint8

const (
	lengthDimension lengthKind = iota
	lengthKeyword
	lengthCalc
	lengthGlobal
)

// Length is a CSS <length>: a number with a unit, a sizing keyword such as
// auto, a raw calc() expression, or a CSS-wide keyword. Go has no implicit
// numeric conversion, so lengths are always constructed through the unit
// factories: css.Px(10), css.Em(1.2) and so on.
//
// Values are not validated or range-checked; whatever is constructed is
// rendered verbatim.
type Length struct {
	kind    lengthKind
	value   float64
	unit    LengthUnit
	keyword string
}

// Dimension builds a length from an explicit value and unit.
func Dimension(value float64, unit LengthUnit) Length {
	return Length{kind: lengthDimension, value: value, unit: unit}
}

// Px returns a length in CSS pixels.
func Px(v float64) Length { return Dimension(v, UnitPx) }

// Em returns a length relative to the element font size.
func Em(v float64) Length { return Dimension(v, UnitEm) }

// Rem returns a length relative to the root font size.
func Rem(v float64) Length { return Dimension(v, UnitRem) }

// Vw returns a length in viewport-width percent units.
func Vw(v float64) Length { return Dimension(v, UnitVw) }

// Vh returns a length in viewport-height percent units.
func Vh(v float64) Length { return Dimension(v, UnitVh) }

// Vmin returns a length in the smaller viewport dimension.
func Vmin(v float64) Length { return Dimension(v, UnitVmin) }

// Vmax returns a length in the larger viewport dimension.
func Vmax(v float64) Length { return Dimension(v, UnitVmax) }

// Cm returns a length in centimeters.
func Cm(v float64) Length { return Dimension(v, UnitCm) }

// Mm returns a length in millimeters.
func Mm(v float64) Length { return Dimension(v, UnitMm) }

// In returns a length in inches.
func In(v float64) Length { return Dimension(v, UnitIn) }

// Pt returns a length in points (1/72 inch).
func Pt(v float64) Length { return Dimension(v, UnitPt) }

// Pc returns a length in picas (12 points).
func Pc(v float64) Length { return Dimension(v, UnitPc) }

// Ex returns a length relative to the x-height of the font.
func Ex(v float64) Length { return Dimension(v, UnitEx) }

// Ch returns a length relative to the advance of "0" in the font.
func Ch(v float64) Length { return Dimension(v, UnitCh) }

// Lh returns a length relative to the element line height.
func Lh(v float64) Length { return Dimension(v, UnitLh) }

// Fr returns a grid fraction length.
func Fr(v float64) Length { return Dimension(v, UnitFr) }

// Q returns a length in quarter-millimeters.
func Q(v float64) Length { return Dimension(v, UnitQ) }

// Cap returns a length relative to the cap height of the font.
func Cap(v float64) Length { return Dimension(v, UnitCap) }

// Ic returns a length relative to the advance of CJK water in the font.
func Ic(v float64) Length { return Dimension(v, UnitIc) }

// Rlh returns a length relative to the root line height.
func Rlh(v float64) Length { return Dimension(v, UnitRlh) }

// Zero returns the zero pixel length.
func Zero() Length { return Px(0) }

// Auto returns the auto sizing keyword.
func Auto() Length { return Length{kind: lengthKeyword, keyword: "auto"} }

// MinContent returns the min-content sizing keyword.
func MinContent() Length { return Length{kind: lengthKeyword, keyword: "min-content"} }

// MaxContent returns the max-content sizing keyword.
func MaxContent() Length { return Length{kind: lengthKeyword, keyword: "max-content"} }

// FitContent returns the fit-content sizing keyword.
func FitContent() Length { return Length{kind: lengthKeyword, keyword: "fit-content"} }

// CalcLength returns a length holding a raw calc() expression body,
// e.g. CalcLength("100% - 2rem") renders as "calc(100% - 2rem)".
// The body is not validated.
func CalcLength(expr string) Length {
	return Length{kind: lengthCalc, keyword: "calc(" + expr + ")"}
}

// GlobalLength returns a length holding a CSS-wide keyword.
func GlobalLength(g Global) Length {
	return Length{kind: lengthGlobal, keyword: string(g)}
}

// String returns the canonical CSS serialization of the length.
func (l Length) String() string {
	switch l.kind {
	case lengthDimension:
		return formatFloat(l.value) + l.unit.String()
	default:
		return l.keyword
	}
}

// FromLength returns v, satisfying the length convertible contract.
func (Length) FromLength(v Length) Length { return v }

// LengthPercentage widens the length to a <length-percentage>.
func (l Length) LengthPercentage() LengthPercentage {
	return LengthPercentage{kind: lpLength, length: l}
}

// Add returns the sum of two lengths. Dimensions with the same unit combine
// numerically and keep the unit; any other combination degrades to a calc()
// expression over both rendered operands. Nothing is simplified or checked,
// so adding a keyword length produces calc() text that CSS may reject.
func (l Length) Add(other Length) Length {
	if l.kind == lengthDimension && other.kind == lengthDimension && l.unit == other.unit {
		return Dimension(l.value+other.value, l.unit)
	}
	return calcCombine(l, "+", other)
}

// Sub returns the difference of two lengths, with the same unit and calc()
// rules as Add.
func (l Length) Sub(other Length) Length {
	if l.kind == lengthDimension && other.kind == lengthDimension && l.unit == other.unit {
		return Dimension(l.value-other.value, l.unit)
	}
	return calcCombine(l, "-", other)
}

// Mul scales the length by a unitless factor. Dimensions scale numerically
// and keep their unit; other lengths degrade to calc().
func (l Length) Mul(factor float64) Length {
	if l.kind == lengthDimension {
		return Dimension(l.value*factor, l.unit)
	}
	return Length{kind: lengthCalc, keyword: fmt.Sprintf("calc(%s * %s)", l, formatFloat(factor))}
}

// Div divides the length by a unitless divisor. Dimensions divide
// numerically and keep their unit; other lengths degrade to calc().
// A zero divisor is a programmer error and panics.
func (l Length) Div(divisor float64) Length {
	if divisor == 0 {
		panic("css: Length division by zero")
	}
	if l.kind == lengthDimension {
		return Dimension(l.value/divisor, l.unit)
	}
	return Length{kind: lengthCalc, keyword: fmt.Sprintf("calc(%s / %s)", l, formatFloat(divisor))}
}

func calcCombine(a Length, op string, b Length) Length {
	return Length{kind: lengthCalc, keyword: fmt.Sprintf("calc(%s %s %s)", a, op, b)}
}
