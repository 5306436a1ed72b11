// Package style builds typed CSS declarations for common properties.
// Keyword properties get their own string types so a declaration cannot be
// built from a keyword belonging to another property, and shorthand helpers
// expand and collapse multi-value forms the way CSS defines them.
package style

import (
	"strings"

	"csskit/css"
)

// Display is the display property keyword.
type Display string

const (
	DisplayNone        Display = "none"
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayFlex        Display = "flex"
	DisplayInlineFlex  Display = "inline-flex"
	DisplayGrid        Display = "grid"
	DisplayInlineGrid  Display = "inline-grid"
	DisplayFlowRoot    Display = "flow-root"
	DisplayContents    Display = "contents"
	DisplayTable       Display = "table"
	DisplayListItem    Display = "list-item"
)

func (d Display) String() string { return string(d) }

// Position is the position property keyword.
type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
	PositionSticky   Position = "sticky"
)

func (p Position) String() string { return string(p) }

// FontStyle is the font-style property keyword.
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

func (s FontStyle) String() string { return string(s) }

// FontWeight is a font-weight value: a keyword or a number.
type FontWeight string

const (
	FontWeightNormal  FontWeight = "normal"
	FontWeightBold    FontWeight = "bold"
	FontWeightBolder  FontWeight = "bolder"
	FontWeightLighter FontWeight = "lighter"
)

// Weight returns a numeric font-weight, e.g. Weight(550).
func Weight(v float64) FontWeight {
	return FontWeight(css.Number(v).String())
}

func (w FontWeight) String() string { return string(w) }

// TextAlign is the text-align property keyword.
type TextAlign string

const (
	TextAlignLeft    TextAlign = "left"
	TextAlignRight   TextAlign = "right"
	TextAlignCenter  TextAlign = "center"
	TextAlignJustify TextAlign = "justify"
	TextAlignStart   TextAlign = "start"
	TextAlignEnd     TextAlign = "end"
)

func (a TextAlign) String() string { return string(a) }

// TextTransform is the text-transform property keyword.
type TextTransform string

const (
	TextTransformNone       TextTransform = "none"
	TextTransformCapitalize TextTransform = "capitalize"
	TextTransformUppercase  TextTransform = "uppercase"
	TextTransformLowercase  TextTransform = "lowercase"
)

func (t TextTransform) String() string { return string(t) }

// BorderStyle is the border-style property keyword.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderHidden BorderStyle = "hidden"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
	BorderSolid  BorderStyle = "solid"
	BorderDouble BorderStyle = "double"
	BorderGroove BorderStyle = "groove"
	BorderRidge  BorderStyle = "ridge"
	BorderInset  BorderStyle = "inset"
	BorderOutset BorderStyle = "outset"
)

func (s BorderStyle) String() string { return string(s) }

// Overflow is the overflow property keyword.
type Overflow string

const (
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowClip    Overflow = "clip"
	OverflowScroll  Overflow = "scroll"
	OverflowAuto    Overflow = "auto"
)

func (o Overflow) String() string { return string(o) }

// WhiteSpace is the white-space property keyword.
type WhiteSpace string

const (
	WhiteSpaceNormal      WhiteSpace = "normal"
	WhiteSpaceNowrap      WhiteSpace = "nowrap"
	WhiteSpacePre         WhiteSpace = "pre"
	WhiteSpacePreWrap     WhiteSpace = "pre-wrap"
	WhiteSpacePreLine     WhiteSpace = "pre-line"
	WhiteSpaceBreakSpaces WhiteSpace = "break-spaces"
)

func (w WhiteSpace) String() string { return string(w) }

// Visibility is the visibility property keyword.
type Visibility string

const (
	VisibilityVisible  Visibility = "visible"
	VisibilityHidden   Visibility = "hidden"
	VisibilityCollapse Visibility = "collapse"
)

func (v Visibility) String() string { return string(v) }

// genericFamilies are font-family keywords that must stay unquoted.
var genericFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-serif":      true,
	"ui-sans-serif": true,
	"ui-monospace":  true,
	"ui-rounded":    true,
	"math":          true,
	"emoji":         true,
	"fangsong":      true,
}

// FamilyList is an ordered font-family stack. Generic family keywords render
// bare, every other name renders double-quoted.
type FamilyList []string

// Families builds a font-family stack.
func Families(names ...string) FamilyList {
	return FamilyList(names)
}

// String renders the stack as a comma-separated font-family value.
func (f FamilyList) String() string {
	parts := make([]string, 0, len(f))
	for _, name := range f {
		if genericFamilies[name] {
			parts = append(parts, name)
		} else {
			parts = append(parts, "\""+css.EscapeString(name)+"\"")
		}
	}
	return strings.Join(parts, ", ")
}
