package css

// ColorSpace is an interpolation color space accepted by color-mix() and
// the gradient interpolation syntax.
type ColorSpace string

const (
	SpaceSRGB        ColorSpace = "srgb"
	SpaceSRGBLinear  ColorSpace = "srgb-linear"
	SpaceDisplayP3   ColorSpace = "display-p3"
	SpaceA98RGB      ColorSpace = "a98-rgb"
	SpaceProPhotoRGB ColorSpace = "prophoto-rgb"
	SpaceRec2020     ColorSpace = "rec2020"
	SpaceLab         ColorSpace = "lab"
	SpaceOKLab       ColorSpace = "oklab"
	SpaceXYZ         ColorSpace = "xyz"
	SpaceXYZD50      ColorSpace = "xyz-d50"
	SpaceXYZD65      ColorSpace = "xyz-d65"
	SpaceHSL         ColorSpace = "hsl"
	SpaceHWB         ColorSpace = "hwb"
	SpaceLCH         ColorSpace = "lch"
	SpaceOKLCH       ColorSpace = "oklch"
)

// HueInterpolation selects how hue arcs are traversed in polar spaces.
type HueInterpolation string

const (
	HueShorter    HueInterpolation = "shorter"
	HueLonger     HueInterpolation = "longer"
	HueIncreasing HueInterpolation = "increasing"
	HueDecreasing HueInterpolation = "decreasing"
)

// ColorInterpolationMethod is the "in <space> [<hue> hue]" clause shared by
// color-mix() and gradients.
type ColorInterpolationMethod struct {
	space ColorSpace
	hue   HueInterpolation
}

// Interpolation builds an interpolation method. The optional hue method
// only makes sense for polar spaces (hsl, hwb, lch, oklch) but is not
// validated.
func Interpolation(space ColorSpace, hue ...HueInterpolation) ColorInterpolationMethod {
	m := ColorInterpolationMethod{space: space}
	if len(hue) > 0 {
		m.hue = hue[0]
	}
	return m
}

// String renders "in <space>" or "in <space> <method> hue".
func (m ColorInterpolationMethod) String() string {
	if m.hue == "" {
		return "in " + string(m.space)
	}
	return "in " + string(m.space) + " " + string(m.hue) + " hue"
}
