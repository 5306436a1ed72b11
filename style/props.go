package style

import (
	"fmt"
	"strings"

	"csskit/css"
	"csskit/sheet"
)

// Color sets the foreground color.
func Color(c css.Color) sheet.Declaration { return sheet.Decl("color", c) }

// BackgroundColor sets the background color.
func BackgroundColor(c css.Color) sheet.Declaration { return sheet.Decl("background-color", c) }

// FontSize sets the font size.
func FontSize(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("font-size", v) }

// LineHeight sets the line height from a number, length or percentage.
func LineHeight(v fmt.Stringer) sheet.Declaration { return sheet.Decl("line-height", v) }

// FontFamily sets the font stack.
func FontFamily(names ...string) sheet.Declaration {
	return sheet.Decl("font-family", Families(names...))
}

// LetterSpacing sets the spacing between characters.
func LetterSpacing(v Spacing) sheet.Declaration { return sheet.Decl("letter-spacing", v) }

// WordSpacing sets the spacing between words.
func WordSpacing(v Spacing) sheet.Declaration { return sheet.Decl("word-spacing", v) }

// TextIndent sets the first-line indent.
func TextIndent(v Indent) sheet.Declaration { return sheet.Decl("text-indent", v) }

// Width sets the preferred width.
func Width(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("width", v) }

// Height sets the preferred height.
func Height(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("height", v) }

// MinWidth sets the minimum width.
func MinWidth(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("min-width", v) }

// MinHeight sets the minimum height.
func MinHeight(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("min-height", v) }

// MaxWidth sets the maximum width.
func MaxWidth(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("max-width", v) }

// MaxHeight sets the maximum height.
func MaxHeight(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("max-height", v) }

// Margin sets the margin shorthand from 1 to 4 values. The rendered value
// is collapsed to its shortest equivalent form.
func Margin(values ...css.LengthPercentage) sheet.Declaration {
	return sheet.Decl("margin", BoxOf(values...))
}

// MarginTop sets the top margin.
func MarginTop(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("margin-top", v) }

// MarginRight sets the right margin.
func MarginRight(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("margin-right", v) }

// MarginBottom sets the bottom margin.
func MarginBottom(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("margin-bottom", v) }

// MarginLeft sets the left margin.
func MarginLeft(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("margin-left", v) }

// Padding sets the padding shorthand from 1 to 4 values. The rendered value
// is collapsed to its shortest equivalent form.
func Padding(values ...css.LengthPercentage) sheet.Declaration {
	return sheet.Decl("padding", BoxOf(values...))
}

// PaddingTop sets the top padding.
func PaddingTop(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("padding-top", v) }

// PaddingRight sets the right padding.
func PaddingRight(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("padding-right", v) }

// PaddingBottom sets the bottom padding.
func PaddingBottom(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("padding-bottom", v) }

// PaddingLeft sets the left padding.
func PaddingLeft(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("padding-left", v) }

// Border sets the border shorthand: width, style, color.
func Border(width css.Length, bs BorderStyle, c css.Color) sheet.Declaration {
	return sheet.Decl("border", css.Raw(width.String()+" "+bs.String()+" "+c.String()))
}

// BorderRadius sets the corner radius shorthand from 1 to 4 values, in
// top-left, top-right, bottom-right, bottom-left order.
func BorderRadius(values ...css.LengthPercentage) sheet.Declaration {
	if len(values) == 0 || len(values) > 4 {
		panic("style: border-radius takes 1 to 4 values")
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return sheet.Decl("border-radius", css.Raw(strings.Join(parts, " ")))
}

// BackgroundLayer is one layer of a background shorthand. Size renders only
// together with Position, joined by a slash, because the CSS grammar allows
// a size only after a position.
type BackgroundLayer struct {
	Image      css.Image
	Position   css.Position
	Size       fmt.Stringer
	Repeat     string
	Attachment string
	Color      css.Color
}

// String renders the layer with its parts in the conventional order.
func (l BackgroundLayer) String() string {
	var parts []string
	if l.Image != nil {
		parts = append(parts, l.Image.String())
	}
	if pos := l.Position.String(); pos != "" {
		if l.Size != nil {
			pos += " / " + l.Size.String()
		}
		parts = append(parts, pos)
	}
	if l.Repeat != "" {
		parts = append(parts, l.Repeat)
	}
	if l.Attachment != "" {
		parts = append(parts, l.Attachment)
	}
	if l.Color != nil {
		parts = append(parts, l.Color.String())
	}
	return strings.Join(parts, " ")
}

// Background sets the background shorthand from one or more layers.
func Background(layers ...BackgroundLayer) sheet.Declaration {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.String()
	}
	return sheet.Decl("background", css.Raw(strings.Join(parts, ", ")))
}

// BackgroundImage sets one or more background images.
func BackgroundImage(images ...css.Image) sheet.Declaration {
	parts := make([]string, len(images))
	for i, img := range images {
		parts[i] = img.String()
	}
	return sheet.Decl("background-image", css.Raw(strings.Join(parts, ", ")))
}

// Opacity sets the element opacity.
func Opacity(v css.Number) sheet.Declaration { return sheet.Decl("opacity", v) }

// ZIndex sets the stacking order.
func ZIndex(n int) sheet.Declaration { return sheet.Decl("z-index", css.Number(float64(n))) }

// Gap sets the gap between flex or grid tracks.
func Gap(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("gap", v) }

// RowGap sets the gap between rows.
func RowGap(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("row-gap", v) }

// ColumnGap sets the gap between columns.
func ColumnGap(v css.LengthPercentage) sheet.Declaration { return sheet.Decl("column-gap", v) }

// AspectRatio sets the preferred aspect ratio.
func AspectRatio(r css.Ratio) sheet.Declaration { return sheet.Decl("aspect-ratio", r) }

// Custom sets a custom property. The name gains a "--" prefix when missing.
func Custom(name string, value fmt.Stringer) sheet.Declaration {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return sheet.Decl(name, value)
}
