package css

import (
	"fmt"
	"math"
)

// HexColor is a hexadecimal color. The stored text is normalized to carry
// a leading "#" but is otherwise kept as constructed: digits keep their
// case and the length is not forced to a legal form. Use IsValid to check
// whether the value is well-formed CSS.
type HexColor struct {
	value string
}

// Hex wraps a hex color string, adding the leading "#" when missing:
// Hex("fff") and Hex("#fff") are the same value.
func Hex(value string) HexColor {
	if len(value) > 0 && value[0] != '#' {
		value = "#" + value
	}
	return HexColor{value: value}
}

// HexRGB encodes three 0-255 channels as "#RRGGBB" with uppercase digits.
// Out-of-range channels are clamped: the byte encoding admits nothing else.
func HexRGB(r, g, b int) HexColor {
	return HexColor{value: fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))}
}

// HexRGBA encodes three 0-255 channels and a 0-1 alpha as "#RRGGBBAA".
// The alpha byte is alpha*255 rounded half away from zero, so 0.5 encodes
// as 80. Channels and the alpha byte are clamped into range.
func HexRGBA(r, g, b int, alpha float64) HexColor {
	a := clampByte(int(math.Round(alpha * 255)))
	return HexColor{value: fmt.Sprintf("#%02X%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b), a)}
}

// IsValid reports whether the value is "#" followed by 3, 4, 6 or 8 hex
// digits. It is advisory: invalid values still render as stored.
func (h HexColor) IsValid() bool {
	if len(h.value) == 0 || h.value[0] != '#' {
		return false
	}
	digits := h.value[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// String returns the stored hex text including the leading "#".
func (h HexColor) String() string { return h.value }

func (HexColor) isColor() {}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
