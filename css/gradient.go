package css

import (
	"fmt"
	"strings"
)

// Image is a CSS <image> value: a url() reference or a gradient.
type Image interface {
	fmt.Stringer
	isImage()
}

// Side is a box side or center keyword used in gradient directions and
// positions.
type Side string

const (
	Top    Side = "top"
	Bottom Side = "bottom"
	Left   Side = "left"
	Right  Side = "right"
	Center Side = "center"
)

// String returns the bare keyword.
func (s Side) String() string { return string(s) }

// GradientDirection is the leading direction clause of a linear gradient:
// a "to <side>" keyword form or an angle. The zero value means no explicit
// direction, which CSS defaults to "to bottom".
type GradientDirection struct {
	sides    []Side
	angle    Angle
	hasAngle bool
}

// To builds a side or corner direction: To(Bottom) renders "to bottom",
// To(Top, Right) renders "to top right".
func To(sides ...Side) GradientDirection {
	return GradientDirection{sides: sides}
}

// Angled builds an angle direction: Angled(Deg(45)) renders "45deg".
func Angled(a Angle) GradientDirection {
	return GradientDirection{angle: a, hasAngle: true}
}

// String renders the direction clause, or "" for the zero value.
func (d GradientDirection) String() string {
	if d.hasAngle {
		return d.angle.String()
	}
	if len(d.sides) == 0 {
		return ""
	}
	parts := make([]string, 0, len(d.sides)+1)
	parts = append(parts, "to")
	for _, s := range d.sides {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, " ")
}

// GradientStop is a color stop with up to two position values.
type GradientStop struct {
	color     Color
	positions []LengthPercentage
}

// Stop builds a color stop. Zero positions render the bare color, one
// position renders "color P" and two render the double-position form.
func Stop(c Color, positions ...LengthPercentage) GradientStop {
	return GradientStop{color: c, positions: positions}
}

// String renders the stop.
func (s GradientStop) String() string {
	if len(s.positions) == 0 {
		return s.color.String()
	}
	parts := make([]string, 0, len(s.positions)+1)
	parts = append(parts, s.color.String())
	for _, p := range s.positions {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}

func joinStops(stops []GradientStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// LinearGradient is a CSS linear-gradient() image.
type LinearGradient struct {
	direction GradientDirection
	stops     []GradientStop
	repeating bool
}

// Linear builds a linear gradient. A zero direction is omitted from the
// output: Linear(To(Bottom), Stop(Red), Stop(Blue)) renders
// "linear-gradient(to bottom, red, blue)".
func Linear(direction GradientDirection, stops ...GradientStop) LinearGradient {
	return LinearGradient{direction: direction, stops: stops}
}

// Repeating returns the repeating-linear-gradient() form of the gradient.
func (g LinearGradient) Repeating() LinearGradient {
	g.repeating = true
	return g
}

// String renders the gradient expression.
func (g LinearGradient) String() string {
	name := "linear-gradient"
	if g.repeating {
		name = "repeating-linear-gradient"
	}
	var args []string
	if d := g.direction.String(); d != "" {
		args = append(args, d)
	}
	if len(g.stops) > 0 {
		args = append(args, joinStops(g.stops))
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (LinearGradient) isImage() {}

// RadialShape is the ending shape of a radial gradient.
type RadialShape string

const (
	Circle  RadialShape = "circle"
	Ellipse RadialShape = "ellipse"
)

// RadialExtent is the size keyword of a radial gradient.
type RadialExtent string

const (
	ClosestSide    RadialExtent = "closest-side"
	FarthestSide   RadialExtent = "farthest-side"
	ClosestCorner  RadialExtent = "closest-corner"
	FarthestCorner RadialExtent = "farthest-corner"
)

// Position is a CSS <position>: keywords and length-percentages combined
// left to right. The zero value means no explicit position.
type Position struct {
	parts []string
}

// At builds a position from keyword and length-percentage parts:
// At(Center) renders "center", At(Left, css.Percentage(25).LengthPercentage())
// renders "left 25%".
func At(parts ...fmt.Stringer) Position {
	p := Position{parts: make([]string, len(parts))}
	for i, part := range parts {
		p.parts[i] = part.String()
	}
	return p
}

// String renders the position parts joined with spaces, or "" for the zero
// value.
func (p Position) String() string {
	return strings.Join(p.parts, " ")
}

// RadialGradient is a CSS radial-gradient() image.
type RadialGradient struct {
	shape     RadialShape
	extent    RadialExtent
	position  Position
	stops     []GradientStop
	repeating bool
}

// Radial builds a radial gradient. Empty shape, extent and position are
// omitted, so Radial("", "", Position{}, Stop(Red), Stop(Blue)) renders
// "radial-gradient(red, blue)".
func Radial(shape RadialShape, extent RadialExtent, at Position, stops ...GradientStop) RadialGradient {
	return RadialGradient{shape: shape, extent: extent, position: at, stops: stops}
}

// Repeating returns the repeating-radial-gradient() form of the gradient.
func (g RadialGradient) Repeating() RadialGradient {
	g.repeating = true
	return g
}

// String renders the gradient expression.
func (g RadialGradient) String() string {
	name := "radial-gradient"
	if g.repeating {
		name = "repeating-radial-gradient"
	}
	var lead []string
	if g.shape != "" {
		lead = append(lead, string(g.shape))
	}
	if g.extent != "" {
		lead = append(lead, string(g.extent))
	}
	if pos := g.position.String(); pos != "" {
		lead = append(lead, "at "+pos)
	}
	var args []string
	if len(lead) > 0 {
		args = append(args, strings.Join(lead, " "))
	}
	if len(g.stops) > 0 {
		args = append(args, joinStops(g.stops))
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (RadialGradient) isImage() {}

// ConicGradient is a CSS conic-gradient() image.
type ConicGradient struct {
	from      Angle
	hasFrom   bool
	position  Position
	stops     []GradientStop
	repeating bool
}

// Conic builds a conic gradient from its color stops; use From and AtPosition
// to add the optional clauses.
func Conic(stops ...GradientStop) ConicGradient {
	return ConicGradient{stops: stops}
}

// From sets the starting angle: "from 45deg".
func (g ConicGradient) From(a Angle) ConicGradient {
	g.from, g.hasFrom = a, true
	return g
}

// AtPosition sets the gradient center.
func (g ConicGradient) AtPosition(p Position) ConicGradient {
	g.position = p
	return g
}

// Repeating returns the repeating-conic-gradient() form of the gradient.
func (g ConicGradient) Repeating() ConicGradient {
	g.repeating = true
	return g
}

// String renders the gradient expression.
func (g ConicGradient) String() string {
	name := "conic-gradient"
	if g.repeating {
		name = "repeating-conic-gradient"
	}
	var lead []string
	if g.hasFrom {
		lead = append(lead, "from "+g.from.String())
	}
	if pos := g.position.String(); pos != "" {
		lead = append(lead, "at "+pos)
	}
	var args []string
	if len(lead) > 0 {
		args = append(args, strings.Join(lead, " "))
	}
	if len(g.stops) > 0 {
		args = append(args, joinStops(g.stops))
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (ConicGradient) isImage() {}
