package css

import "math"

// AngleUnit identifies the unit of an Angle.
type AngleUnit uint8

const (
	UnitDeg AngleUnit = iota
	UnitGrad
	UnitRad
	UnitTurn
)

var angleUnitNames = [...]string{
	UnitDeg:  "deg",
	UnitGrad: "grad",
	UnitRad:  "rad",
	UnitTurn: "turn",
}

// String returns the CSS suffix of the unit.
func (u AngleUnit) String() string {
	if int(u) < len(angleUnitNames) {
		return angleUnitNames[u]
	}
	return ""
}

// Angle is a CSS <angle>. The value is rendered with its unit suffix and is
// never range-normalized: css.Deg(480) renders as "480deg".
type Angle struct {
	value float64
	unit  AngleUnit
}

// Deg returns an angle in degrees.
func Deg(v float64) Angle { return Angle{value: v, unit: UnitDeg} }

// Grad returns an angle in gradians (400 per full turn).
func Grad(v float64) Angle { return Angle{value: v, unit: UnitGrad} }

// Rad returns an angle in radians.
func Rad(v float64) Angle { return Angle{value: v, unit: UnitRad} }

// Turn returns an angle in full turns.
func Turn(v float64) Angle { return Angle{value: v, unit: UnitTurn} }

// String returns the canonical CSS serialization of the angle.
func (a Angle) String() string {
	return formatFloat(a.value) + a.unit.String()
}

// Degrees converts the angle to degrees: gradians scale by 0.9, radians by
// 180/pi and turns by 360.
func (a Angle) Degrees() float64 {
	switch a.unit {
	case UnitGrad:
		return a.value * 0.9
	case UnitRad:
		return a.value * 180 / math.Pi
	case UnitTurn:
		return a.value * 360
	default:
		return a.value
	}
}

// FromAngle returns v, satisfying the angle convertible contract.
func (Angle) FromAngle(v Angle) Angle { return v }

// Hue is a CSS <hue>: an Angle or a unitless number of degrees, as used by
// hsl(), hwb(), lch() and the other polar color functions. The distinction
// is preserved when rendering: HueAngle(Deg(0)) renders "0deg" while
// HueNumber(0) renders "0".
type Hue struct {
	angle    Angle
	number   float64
	isNumber bool
}

// HueAngle returns a hue carrying an explicit angle unit.
func HueAngle(a Angle) Hue { return Hue{angle: a} }

// HueNumber returns a unitless hue interpreted as degrees.
func HueNumber(v float64) Hue { return Hue{number: v, isNumber: true} }

// String returns the canonical CSS serialization of the hue.
func (h Hue) String() string {
	if h.isNumber {
		return formatFloat(h.number)
	}
	return h.angle.String()
}

// NormalizedDegrees reduces the hue into [0, 360) degrees. Angle units are
// converted first, then the value is wrapped with a double modulo so that
// negative inputs land in range: -90deg normalizes to 270.
func (h Hue) NormalizedDegrees() float64 {
	d := h.number
	if !h.isNumber {
		d = h.angle.Degrees()
	}
	return math.Mod(math.Mod(d, 360)+360, 360)
}

// FromAngle wraps an angle, satisfying the angle convertible contract.
func (Hue) FromAngle(v Angle) Hue { return HueAngle(v) }

// FromNumber wraps a unitless value, satisfying the number convertible
// contract.
func (Hue) FromNumber(v Number) Hue { return HueNumber(float64(v)) }
