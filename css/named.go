package css

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// NamedColor is a CSS named color keyword. The full CSS Color 4 set is
// predeclared below; arbitrary strings are rendered as-is, so misspelled
// names fail only in the consumer.
type NamedColor string

// String returns the bare keyword.
func (n NamedColor) String() string { return string(n) }

func (NamedColor) isColor() {}

// colornames covers the SVG 1.1 set; CSS Color 4 additions live here.
var extraNamedColors = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// RGBA resolves the keyword to its sRGB value. The second result is false
// for names that are not CSS named colors.
func (n NamedColor) RGBA() (color.RGBA, bool) {
	if c, ok := colornames.Map[string(n)]; ok {
		return c, true
	}
	c, ok := extraNamedColors[string(n)]
	return c, ok
}

// Hex returns the color as "#RRGGBB". The second result is false for names
// that are not CSS named colors.
func (n NamedColor) Hex() (HexColor, bool) {
	c, ok := n.RGBA()
	if !ok {
		return HexColor{}, false
	}
	return HexRGB(int(c.R), int(c.G), int(c.B)), true
}

// Names returns every recognized named color keyword, unordered.
func Names() []string {
	names := make([]string, 0, len(colornames.Names)+len(extraNamedColors))
	names = append(names, colornames.Names...)
	for name := range extraNamedColors {
		names = append(names, name)
	}
	return names
}

// The complete CSS named color set.
const (
	AliceBlue            NamedColor = "aliceblue"
	AntiqueWhite         NamedColor = "antiquewhite"
	Aqua                 NamedColor = "aqua"
	Aquamarine           NamedColor = "aquamarine"
	Azure                NamedColor = "azure"
	Beige                NamedColor = "beige"
	Bisque               NamedColor = "bisque"
	Black                NamedColor = "black"
	BlanchedAlmond       NamedColor = "blanchedalmond"
	Blue                 NamedColor = "blue"
	BlueViolet           NamedColor = "blueviolet"
	Brown                NamedColor = "brown"
	BurlyWood            NamedColor = "burlywood"
	CadetBlue            NamedColor = "cadetblue"
	Chartreuse           NamedColor = "chartreuse"
	Chocolate            NamedColor = "chocolate"
	Coral                NamedColor = "coral"
	CornflowerBlue       NamedColor = "cornflowerblue"
	Cornsilk             NamedColor = "cornsilk"
	Crimson              NamedColor = "crimson"
	Cyan                 NamedColor = "cyan"
	DarkBlue             NamedColor = "darkblue"
	DarkCyan             NamedColor = "darkcyan"
	DarkGoldenrod        NamedColor = "darkgoldenrod"
	DarkGray             NamedColor = "darkgray"
	DarkGreen            NamedColor = "darkgreen"
	DarkGrey             NamedColor = "darkgrey"
	DarkKhaki            NamedColor = "darkkhaki"
	DarkMagenta          NamedColor = "darkmagenta"
	DarkOliveGreen       NamedColor = "darkolivegreen"
	DarkOrange           NamedColor = "darkorange"
	DarkOrchid           NamedColor = "darkorchid"
	DarkRed              NamedColor = "darkred"
	DarkSalmon           NamedColor = "darksalmon"
	DarkSeaGreen         NamedColor = "darkseagreen"
	DarkSlateBlue        NamedColor = "darkslateblue"
	DarkSlateGray        NamedColor = "darkslategray"
	DarkSlateGrey        NamedColor = "darkslategrey"
	DarkTurquoise        NamedColor = "darkturquoise"
	DarkViolet           NamedColor = "darkviolet"
	DeepPink             NamedColor = "deeppink"
	DeepSkyBlue          NamedColor = "deepskyblue"
	DimGray              NamedColor = "dimgray"
	DimGrey              NamedColor = "dimgrey"
	DodgerBlue           NamedColor = "dodgerblue"
	FireBrick            NamedColor = "firebrick"
	FloralWhite          NamedColor = "floralwhite"
	ForestGreen          NamedColor = "forestgreen"
	Fuchsia              NamedColor = "fuchsia"
	Gainsboro            NamedColor = "gainsboro"
	GhostWhite           NamedColor = "ghostwhite"
	Gold                 NamedColor = "gold"
	Goldenrod            NamedColor = "goldenrod"
	Gray                 NamedColor = "gray"
	Green                NamedColor = "green"
	GreenYellow          NamedColor = "greenyellow"
	Grey                 NamedColor = "grey"
	Honeydew             NamedColor = "honeydew"
	HotPink              NamedColor = "hotpink"
	IndianRed            NamedColor = "indianred"
	Indigo               NamedColor = "indigo"
	Ivory                NamedColor = "ivory"
	Khaki                NamedColor = "khaki"
	Lavender             NamedColor = "lavender"
	LavenderBlush        NamedColor = "lavenderblush"
	LawnGreen            NamedColor = "lawngreen"
	LemonChiffon         NamedColor = "lemonchiffon"
	LightBlue            NamedColor = "lightblue"
	LightCoral           NamedColor = "lightcoral"
	LightCyan            NamedColor = "lightcyan"
	LightGoldenrodYellow NamedColor = "lightgoldenrodyellow"
	LightGray            NamedColor = "lightgray"
	LightGreen           NamedColor = "lightgreen"
	LightGrey            NamedColor = "lightgrey"
	LightPink            NamedColor = "lightpink"
	LightSalmon          NamedColor = "lightsalmon"
	LightSeaGreen        NamedColor = "lightseagreen"
	LightSkyBlue         NamedColor = "lightskyblue"
	LightSlateGray       NamedColor = "lightslategray"
	LightSlateGrey       NamedColor = "lightslategrey"
	LightSteelBlue       NamedColor = "lightsteelblue"
	LightYellow          NamedColor = "lightyellow"
	Lime                 NamedColor = "lime"
	LimeGreen            NamedColor = "limegreen"
	Linen                NamedColor = "linen"
	Magenta              NamedColor = "magenta"
	Maroon               NamedColor = "maroon"
	MediumAquamarine     NamedColor = "mediumaquamarine"
	MediumBlue           NamedColor = "mediumblue"
	MediumOrchid         NamedColor = "mediumorchid"
	MediumPurple         NamedColor = "mediumpurple"
	MediumSeaGreen       NamedColor = "mediumseagreen"
	MediumSlateBlue      NamedColor = "mediumslateblue"
	MediumSpringGreen    NamedColor = "mediumspringgreen"
	MediumTurquoise      NamedColor = "mediumturquoise"
	MediumVioletRed      NamedColor = "mediumvioletred"
	MidnightBlue         NamedColor = "midnightblue"
	MintCream            NamedColor = "mintcream"
	MistyRose            NamedColor = "mistyrose"
	Moccasin             NamedColor = "moccasin"
	NavajoWhite          NamedColor = "navajowhite"
	Navy                 NamedColor = "navy"
	OldLace              NamedColor = "oldlace"
	Olive                NamedColor = "olive"
	OliveDrab            NamedColor = "olivedrab"
	Orange               NamedColor = "orange"
	OrangeRed            NamedColor = "orangered"
	Orchid               NamedColor = "orchid"
	PaleGoldenrod        NamedColor = "palegoldenrod"
	PaleGreen            NamedColor = "palegreen"
	PaleTurquoise        NamedColor = "paleturquoise"
	PaleVioletRed        NamedColor = "palevioletred"
	PapayaWhip           NamedColor = "papayawhip"
	PeachPuff            NamedColor = "peachpuff"
	Peru                 NamedColor = "peru"
	Pink                 NamedColor = "pink"
	Plum                 NamedColor = "plum"
	PowderBlue           NamedColor = "powderblue"
	Purple               NamedColor = "purple"
	RebeccaPurple        NamedColor = "rebeccapurple"
	Red                  NamedColor = "red"
	RosyBrown            NamedColor = "rosybrown"
	RoyalBlue            NamedColor = "royalblue"
	SaddleBrown          NamedColor = "saddlebrown"
	Salmon               NamedColor = "salmon"
	SandyBrown           NamedColor = "sandybrown"
	SeaGreen             NamedColor = "seagreen"
	Seashell             NamedColor = "seashell"
	Sienna               NamedColor = "sienna"
	Silver               NamedColor = "silver"
	SkyBlue              NamedColor = "skyblue"
	SlateBlue            NamedColor = "slateblue"
	SlateGray            NamedColor = "slategray"
	SlateGrey            NamedColor = "slategrey"
	Snow                 NamedColor = "snow"
	SpringGreen          NamedColor = "springgreen"
	SteelBlue            NamedColor = "steelblue"
	Tan                  NamedColor = "tan"
	Teal                 NamedColor = "teal"
	Thistle              NamedColor = "thistle"
	Tomato               NamedColor = "tomato"
	Turquoise            NamedColor = "turquoise"
	Violet               NamedColor = "violet"
	Wheat                NamedColor = "wheat"
	White                NamedColor = "white"
	WhiteSmoke           NamedColor = "whitesmoke"
	Yellow               NamedColor = "yellow"
	YellowGreen          NamedColor = "yellowgreen"
)
