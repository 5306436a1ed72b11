package css

// Number is a plain CSS <number>. Construct it by conversion:
// css.Number(1.5) renders as "1.5", css.Number(42) as "42".
type Number float64

// String returns the canonical CSS serialization of the number.
func (n Number) String() string { return formatFloat(float64(n)) }

// FromNumber returns v, satisfying the number convertible contract.
func (Number) FromNumber(v Number) Number { return v }

// Percentage is a CSS <percentage>. Construct it by conversion:
// css.Percentage(50) renders as "50%".
type Percentage float64

// String returns the value with a percent sign.
func (p Percentage) String() string { return formatFloat(float64(p)) + "%" }

// FromPercentage returns v, satisfying the percentage convertible contract.
func (Percentage) FromPercentage(v Percentage) Percentage { return v }

// LengthPercentage widens the percentage to a <length-percentage>.
func (p Percentage) LengthPercentage() LengthPercentage {
	return LengthPercentage{kind: lpPercentage, percentage: p}
}
