package css

// ResolutionUnit identifies the unit of a Resolution.
type ResolutionUnit uint8

const (
	UnitDpi ResolutionUnit = iota
	UnitDpcm
	UnitDppx
	UnitX
)

var resolutionUnitNames = [...]string{
	UnitDpi:  "dpi",
	UnitDpcm: "dpcm",
	UnitDppx: "dppx",
	UnitX:    "x",
}

// String returns the CSS suffix of the unit.
func (u ResolutionUnit) String() string {
	if int(u) < len(resolutionUnitNames) {
		return resolutionUnitNames[u]
	}
	return ""
}

// Resolution is a CSS <resolution>, used by media queries and image-set().
type Resolution struct {
	value float64
	unit  ResolutionUnit
}

// Dpi returns a resolution in dots per inch.
func Dpi(v float64) Resolution { return Resolution{value: v, unit: UnitDpi} }

// Dpcm returns a resolution in dots per centimeter.
func Dpcm(v float64) Resolution { return Resolution{value: v, unit: UnitDpcm} }

// Dppx returns a resolution in dots per px unit.
func Dppx(v float64) Resolution { return Resolution{value: v, unit: UnitDppx} }

// X returns a resolution in the x shorthand unit (an alias of dppx).
func X(v float64) Resolution { return Resolution{value: v, unit: UnitX} }

// String returns the canonical CSS serialization of the resolution.
func (r Resolution) String() string {
	return formatFloat(r.value) + r.unit.String()
}

// Frequency is a CSS <frequency>. The canonical suffixes keep their spec
// capitalization: "Hz" and "kHz".
type Frequency struct {
	value float64
	kilo  bool
}

// Hz returns a frequency in hertz.
func Hz(v float64) Frequency { return Frequency{value: v} }

// KHz returns a frequency in kilohertz.
func KHz(v float64) Frequency { return Frequency{value: v, kilo: true} }

// String returns the canonical CSS serialization of the frequency.
func (f Frequency) String() string {
	if f.kilo {
		return formatFloat(f.value) + "kHz"
	}
	return formatFloat(f.value) + "Hz"
}

// Time is a CSS <time>, used by transitions and animations.
type Time struct {
	value float64
	milli bool
}

// Seconds returns a time in seconds.
func Seconds(v float64) Time { return Time{value: v} }

// Milliseconds returns a time in milliseconds.
func Milliseconds(v float64) Time { return Time{value: v, milli: true} }

// String returns the canonical CSS serialization of the time.
func (t Time) String() string {
	if t.milli {
		return formatFloat(t.value) + "ms"
	}
	return formatFloat(t.value) + "s"
}

// Flex is a CSS <flex> grid track fraction. Construct it by conversion:
// css.Flex(1) renders as "1fr".
type Flex float64

// String returns the value with the fr suffix.
func (f Flex) String() string { return formatFloat(float64(f)) + "fr" }
