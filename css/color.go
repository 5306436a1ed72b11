package css

import (
	"fmt"
	"strings"
)

// Color is a CSS <color> in any of its syntaxes. Channel values are never
// validated or clamped at construction: out-of-range channels render
// verbatim, matching how CSS itself defers clamping to the consumer. The
// only exceptions are documented on HexRGB and HexRGBA, whose byte encoding
// forces a range.
type Color interface {
	fmt.Stringer
	isColor()
}

// KeywordColor is a standalone color keyword.
type KeywordColor string

const (
	CurrentColor KeywordColor = "currentColor"
	Transparent  KeywordColor = "transparent"
)

// String returns the bare keyword.
func (k KeywordColor) String() string { return string(k) }

func (KeywordColor) isColor() {}

// RGBColor is a legacy comma form rgb() color.
type RGBColor struct {
	r, g, b float64
}

// RGB returns an rgb() color. Channels are conventionally 0-255 but are
// rendered as given.
func RGB(r, g, b float64) RGBColor {
	return RGBColor{r: r, g: g, b: b}
}

// String renders "rgb(R, G, B)".
func (c RGBColor) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", formatFloat(c.r), formatFloat(c.g), formatFloat(c.b))
}

func (RGBColor) isColor() {}

// RGBAColor is a legacy comma form rgba() color.
type RGBAColor struct {
	r, g, b, a float64
}

// RGBA returns an rgba() color with alpha conventionally in 0-1.
func RGBA(r, g, b, a float64) RGBAColor {
	return RGBAColor{r: r, g: g, b: b, a: a}
}

// String renders "rgba(R, G, B, A)".
func (c RGBAColor) String() string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		formatFloat(c.r), formatFloat(c.g), formatFloat(c.b), formatFloat(c.a))
}

func (RGBAColor) isColor() {}

// HSLColor is a legacy comma form hsl() color.
type HSLColor struct {
	h    Hue
	s, l float64
}

// HSL returns an hsl() color; saturation and lightness are percentages.
func HSL(h Hue, saturation, lightness float64) HSLColor {
	return HSLColor{h: h, s: saturation, l: lightness}
}

// String renders "hsl(H, S%, L%)".
func (c HSLColor) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", c.h, formatFloat(c.s), formatFloat(c.l))
}

func (HSLColor) isColor() {}

// HSLAColor is a legacy comma form hsla() color.
type HSLAColor struct {
	h       Hue
	s, l, a float64
}

// HSLA returns an hsla() color with alpha conventionally in 0-1.
func HSLA(h Hue, saturation, lightness, alpha float64) HSLAColor {
	return HSLAColor{h: h, s: saturation, l: lightness, a: alpha}
}

// String renders "hsla(H, S%, L%, A)".
func (c HSLAColor) String() string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		c.h, formatFloat(c.s), formatFloat(c.l), formatFloat(c.a))
}

func (HSLAColor) isColor() {}

// HWBColor is a modern space form hwb() color.
type HWBColor struct {
	h        Hue
	w, b     float64
	alpha    float64
	hasAlpha bool
}

// HWB returns an hwb() color; whiteness and blackness are percentages. An
// optional trailing alpha (0-1) renders after a slash.
func HWB(h Hue, whiteness, blackness float64, alpha ...float64) HWBColor {
	c := HWBColor{h: h, w: whiteness, b: blackness}
	if len(alpha) > 0 {
		c.alpha, c.hasAlpha = alpha[0], true
	}
	return c
}

// String renders "hwb(H W% B%)" with an optional " / A" suffix.
func (c HWBColor) String() string {
	s := fmt.Sprintf("hwb(%s %s%% %s%%", c.h, formatFloat(c.w), formatFloat(c.b))
	return s + alphaSuffix(c.alpha, c.hasAlpha)
}

func (HWBColor) isColor() {}

// LabColor is a CIE lab() color.
type LabColor struct {
	l, a, b  float64
	alpha    float64
	hasAlpha bool
}

// Lab returns a lab() color. Lightness is a percentage (0-100); a and b are
// unbounded axis values.
func Lab(lightness, a, b float64, alpha ...float64) LabColor {
	c := LabColor{l: lightness, a: a, b: b}
	if len(alpha) > 0 {
		c.alpha, c.hasAlpha = alpha[0], true
	}
	return c
}

// String renders "lab(L% a b)" with an optional " / A" suffix.
func (c LabColor) String() string {
	s := fmt.Sprintf("lab(%s%% %s %s", formatFloat(c.l), formatFloat(c.a), formatFloat(c.b))
	return s + alphaSuffix(c.alpha, c.hasAlpha)
}

func (LabColor) isColor() {}

// LCHColor is a CIE lch() color.
type LCHColor struct {
	l, c     float64
	h        Hue
	alpha    float64
	hasAlpha bool
}

// LCH returns an lch() color. Lightness is a percentage (0-100), chroma is
// unbounded and the hue follows <hue> rules.
func LCH(lightness, chroma float64, h Hue, alpha ...float64) LCHColor {
	c := LCHColor{l: lightness, c: chroma, h: h}
	if len(alpha) > 0 {
		c.alpha, c.hasAlpha = alpha[0], true
	}
	return c
}

// String renders "lch(L% C H)" with an optional " / A" suffix.
func (c LCHColor) String() string {
	s := fmt.Sprintf("lch(%s%% %s %s", formatFloat(c.l), formatFloat(c.c), c.h)
	return s + alphaSuffix(c.alpha, c.hasAlpha)
}

func (LCHColor) isColor() {}

// OKLabColor is an oklab() color.
type OKLabColor struct {
	l, a, b  float64
	alpha    float64
	hasAlpha bool
}

// OKLab returns an oklab() color. Lightness is a number (0-1); a and b are
// axis values.
func OKLab(lightness, a, b float64, alpha ...float64) OKLabColor {
	c := OKLabColor{l: lightness, a: a, b: b}
	if len(alpha) > 0 {
		c.alpha, c.hasAlpha = alpha[0], true
	}
	return c
}

// String renders "oklab(L a b)" with an optional " / A" suffix.
func (c OKLabColor) String() string {
	s := fmt.Sprintf("oklab(%s %s %s", formatFloat(c.l), formatFloat(c.a), formatFloat(c.b))
	return s + alphaSuffix(c.alpha, c.hasAlpha)
}

func (OKLabColor) isColor() {}

// OKLCHColor is an oklch() color.
type OKLCHColor struct {
	l, c     float64
	h        Hue
	alpha    float64
	hasAlpha bool
}

// OKLCH returns an oklch() color. Lightness is a number (0-1), chroma is
// unbounded and the hue follows <hue> rules.
func OKLCH(lightness, chroma float64, h Hue, alpha ...float64) OKLCHColor {
	c := OKLCHColor{l: lightness, c: chroma, h: h}
	if len(alpha) > 0 {
		c.alpha, c.hasAlpha = alpha[0], true
	}
	return c
}

// String renders "oklch(L C H)" with an optional " / A" suffix.
func (c OKLCHColor) String() string {
	s := fmt.Sprintf("oklch(%s %s %s", formatFloat(c.l), formatFloat(c.c), c.h)
	return s + alphaSuffix(c.alpha, c.hasAlpha)
}

func (OKLCHColor) isColor() {}

func alphaSuffix(alpha float64, has bool) string {
	if !has {
		return ")"
	}
	return " / " + formatFloat(alpha) + ")"
}

// MixComponent pairs a color with an optional percentage weight for
// color-mix().
type MixComponent struct {
	color    Color
	percent  float64
	weighted bool
}

// Mix builds a color-mix() component. At most one percentage is used; when
// given it renders after the color.
func Mix(c Color, percent ...float64) MixComponent {
	mc := MixComponent{color: c}
	if len(percent) > 0 {
		mc.percent, mc.weighted = percent[0], true
	}
	return mc
}

// String renders "color" or "color P%".
func (m MixComponent) String() string {
	if m.weighted {
		return fmt.Sprintf("%s %s%%", m.color, formatFloat(m.percent))
	}
	return m.color.String()
}

// MixColor is a color-mix() color.
type MixColor struct {
	method ColorInterpolationMethod
	first  MixComponent
	second MixComponent
}

// ColorMix mixes two colors in the given interpolation space:
// ColorMix(Interpolation(SpaceOKLab), Mix(Red), Mix(Blue, 30)) renders as
// "color-mix(in oklab, red, blue 30%)".
func ColorMix(method ColorInterpolationMethod, first, second MixComponent) MixColor {
	return MixColor{method: method, first: first, second: second}
}

// String renders the full color-mix() expression.
func (c MixColor) String() string {
	var b strings.Builder
	b.WriteString("color-mix(")
	b.WriteString(c.method.String())
	b.WriteString(", ")
	b.WriteString(c.first.String())
	b.WriteString(", ")
	b.WriteString(c.second.String())
	b.WriteString(")")
	return b.String()
}

func (MixColor) isColor() {}
