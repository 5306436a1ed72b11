package css_test

import (
	"testing"

	"csskit/css"
)

func TestLegacyColorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Color
		expected string
	}{
		{"rgb", css.RGB(255, 0, 0), "rgb(255, 0, 0)"},
		{"rgb_fractional", css.RGB(127.5, 0, 0), "rgb(127.5, 0, 0)"},
		{"rgb_out_of_range_passthrough", css.RGB(300, -20, 0), "rgb(300, -20, 0)"},
		{"rgba", css.RGBA(255, 0, 0, 0.5), "rgba(255, 0, 0, 0.5)"},
		{"rgba_opaque", css.RGBA(0, 128, 255, 1), "rgba(0, 128, 255, 1)"},
		{"hsl_angle", css.HSL(css.HueAngle(css.Deg(0)), 100, 50), "hsl(0deg, 100%, 50%)"},
		{"hsl_number", css.HSL(css.HueNumber(120), 50, 25), "hsl(120, 50%, 25%)"},
		{"hsl_turn", css.HSL(css.HueAngle(css.Turn(0.5)), 100, 50), "hsl(0.5turn, 100%, 50%)"},
		{"hsla", css.HSLA(css.HueAngle(css.Deg(240)), 100, 50, 0.25), "hsla(240deg, 100%, 50%, 0.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModernColorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Color
		expected string
	}{
		{"hwb", css.HWB(css.HueNumber(194), 0, 0), "hwb(194 0% 0%)"},
		{"hwb_alpha", css.HWB(css.HueNumber(194), 0, 0, 0.5), "hwb(194 0% 0% / 0.5)"},
		{"hwb_angle", css.HWB(css.HueAngle(css.Grad(120)), 30, 10), "hwb(120grad 30% 10%)"},
		{"lab", css.Lab(50, 40, 59.5), "lab(50% 40 59.5)"},
		{"lab_alpha", css.Lab(50, 40, 59.5, 0.5), "lab(50% 40 59.5 / 0.5)"},
		{"lab_negative_axis", css.Lab(29.2345, -39.3825, 20.0664), "lab(29.2345% -39.3825 20.0664)"},
		{"lch", css.LCH(52.2, 72.2, css.HueNumber(50)), "lch(52.2% 72.2 50)"},
		{"lch_angle", css.LCH(52.2, 72.2, css.HueAngle(css.Deg(50)), 0.5), "lch(52.2% 72.2 50deg / 0.5)"},
		{"oklab", css.OKLab(0.59, 0.1, 0.12), "oklab(0.59 0.1 0.12)"},
		{"oklab_alpha", css.OKLab(0.59, 0.1, 0.12, 0.9), "oklab(0.59 0.1 0.12 / 0.9)"},
		{"oklch", css.OKLCH(0.7, 0.15, css.HueNumber(200)), "oklch(0.7 0.15 200)"},
		{"oklch_angle_alpha", css.OKLCH(0.7, 0.15, css.HueAngle(css.Deg(200)), 0.8), "oklch(0.7 0.15 200deg / 0.8)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeywordColors(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Color
		expected string
	}{
		{"current_color", css.CurrentColor, "currentColor"},
		{"transparent", css.Transparent, "transparent"},
		{"system_canvas", css.SystemCanvas, "Canvas"},
		{"system_accent", css.SystemAccentColor, "AccentColor"},
		{"system_highlight_text", css.SystemHighlightText, "HighlightText"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInterpolationFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.ColorInterpolationMethod
		expected string
	}{
		{"rectangular", css.Interpolation(css.SpaceOKLab), "in oklab"},
		{"srgb", css.Interpolation(css.SpaceSRGB), "in srgb"},
		{"polar_with_hue", css.Interpolation(css.SpaceHSL, css.HueShorter), "in hsl shorter hue"},
		{"longer_hue", css.Interpolation(css.SpaceOKLCH, css.HueLonger), "in oklch longer hue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestColorMixFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Color
		expected string
	}{
		{
			"weighted_second",
			css.ColorMix(css.Interpolation(css.SpaceOKLab), css.Mix(css.Red), css.Mix(css.Blue, 30)),
			"color-mix(in oklab, red, blue 30%)",
		},
		{
			"unweighted",
			css.ColorMix(css.Interpolation(css.SpaceSRGB), css.Mix(css.White), css.Mix(css.Black)),
			"color-mix(in srgb, white, black)",
		},
		{
			"both_weighted",
			css.ColorMix(css.Interpolation(css.SpaceLab), css.Mix(css.Hex("#ff0000"), 25), css.Mix(css.Hex("#0000ff"), 75)),
			"color-mix(in lab, #ff0000 25%, #0000ff 75%)",
		},
		{
			"polar_hue",
			css.ColorMix(css.Interpolation(css.SpaceHSL, css.HueLonger), css.Mix(css.HSL(css.HueNumber(120), 10, 20)), css.Mix(css.White)),
			"color-mix(in hsl longer hue, hsl(120, 10%, 20%), white)",
		},
		{
			"nested_mix",
			css.ColorMix(css.Interpolation(css.SpaceOKLCH),
				css.Mix(css.ColorMix(css.Interpolation(css.SpaceOKLab), css.Mix(css.Red), css.Mix(css.Blue))),
				css.Mix(css.Transparent, 10)),
			"color-mix(in oklch, color-mix(in oklab, red, blue), transparent 10%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
