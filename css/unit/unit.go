// Package unit provides generic unit factories for any type that can be
// built from a core css value. A type opts in by implementing the matching
// From method (for example FromLength) and gains every factory below:
// unit.Px[css.LengthPercentage](10), unit.Deg[css.Hue](90) and so on.
package unit

import "csskit/css"

// LengthConvertible is satisfied by types constructible from a Length.
type LengthConvertible[T any] interface {
	FromLength(css.Length) T
}

// PercentageConvertible is satisfied by types constructible from a
// Percentage.
type PercentageConvertible[T any] interface {
	FromPercentage(css.Percentage) T
}

// LengthPercentageConvertible is satisfied by types constructible from
// either a Length or a Percentage.
type LengthPercentageConvertible[T any] interface {
	LengthConvertible[T]
	PercentageConvertible[T]
}

// AngleConvertible is satisfied by types constructible from an Angle.
type AngleConvertible[T any] interface {
	FromAngle(css.Angle) T
}

// NumberConvertible is satisfied by types constructible from a Number.
type NumberConvertible[T any] interface {
	FromNumber(css.Number) T
}

func fromLength[T LengthConvertible[T]](l css.Length) T {
	var zero T
	return zero.FromLength(l)
}

// Px builds T from a pixel length.
func Px[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Px(v)) }

// Em builds T from an em length.
func Em[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Em(v)) }

// Rem builds T from a rem length.
func Rem[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Rem(v)) }

// Vw builds T from a viewport-width length.
func Vw[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Vw(v)) }

// Vh builds T from a viewport-height length.
func Vh[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Vh(v)) }

// Vmin builds T from a vmin length.
func Vmin[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Vmin(v)) }

// Vmax builds T from a vmax length.
func Vmax[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Vmax(v)) }

// Cm builds T from a centimeter length.
func Cm[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Cm(v)) }

// Mm builds T from a millimeter length.
func Mm[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Mm(v)) }

// In builds T from an inch length.
func In[T LengthConvertible[T]](v float64) T { return fromLength[T](css.In(v)) }

// Pt builds T from a point length.
func Pt[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Pt(v)) }

// Pc builds T from a pica length.
func Pc[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Pc(v)) }

// Ex builds T from an ex length.
func Ex[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Ex(v)) }

// Ch builds T from a ch length.
func Ch[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Ch(v)) }

// Lh builds T from a line-height length.
func Lh[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Lh(v)) }

// Fr builds T from a grid fraction length.
func Fr[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Fr(v)) }

// Q builds T from a quarter-millimeter length.
func Q[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Q(v)) }

// Cap builds T from a cap-height length.
func Cap[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Cap(v)) }

// Ic builds T from an ic length.
func Ic[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Ic(v)) }

// Rlh builds T from a root line-height length.
func Rlh[T LengthConvertible[T]](v float64) T { return fromLength[T](css.Rlh(v)) }

// Zero builds T from the zero pixel length.
func Zero[T LengthConvertible[T]]() T { return fromLength[T](css.Zero()) }

// Percent builds T from a percentage.
func Percent[T PercentageConvertible[T]](v float64) T {
	var zero T
	return zero.FromPercentage(css.Percentage(v))
}

func fromAngle[T AngleConvertible[T]](a css.Angle) T {
	var zero T
	return zero.FromAngle(a)
}

// Deg builds T from an angle in degrees.
func Deg[T AngleConvertible[T]](v float64) T { return fromAngle[T](css.Deg(v)) }

// Grad builds T from an angle in gradians.
func Grad[T AngleConvertible[T]](v float64) T { return fromAngle[T](css.Grad(v)) }

// Rad builds T from an angle in radians.
func Rad[T AngleConvertible[T]](v float64) T { return fromAngle[T](css.Rad(v)) }

// Turn builds T from an angle in turns.
func Turn[T AngleConvertible[T]](v float64) T { return fromAngle[T](css.Turn(v)) }

// Num builds T from a unitless number.
func Num[T NumberConvertible[T]](v float64) T {
	var zero T
	return zero.FromNumber(css.Number(v))
}
