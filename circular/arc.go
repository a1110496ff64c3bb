package circular

import (
	"fmt"
	"math"
)

// twoPi is the full arc of the radian circle.
const twoPi = 2 * math.Pi

// arcKind tags the unit convention an Arc carries.
type arcKind int

const (
	arcRadians arcKind = iota
	arcDegrees
	arcCustom
)

// Arc is the unit convention of a circular quantity: the length that
// represents one complete turn. It is a small tagged value resolved once
// per call into two pure conversions (toRad / fromRad), so no unit
// branching happens inside element loops.
//
// The zero value is the radian circle (span 2π).
type Arc struct {
	kind arcKind
	span float64
}

// Radians returns the radian circle (span 2π). This is the default
// convention of every function in the package.
func Radians() Arc { return Arc{kind: arcRadians} }

// Degrees returns the degree circle (span 360).
func Degrees() Arc { return Arc{kind: arcDegrees, span: 360} }

// ArcOf returns a circle with a custom full-arc length, e.g. 24 for hours
// of day, 365.2422 for days of year, or 1 for normalized frequency.
// ArcOf panics if span is not a positive finite number (programmer error).
func ArcOf(span float64) Arc {
	if !(span > 0) || math.IsInf(span, 1) {
		panic(fmt.Sprintf("circular: ArcOf(%v): span must be a positive finite number", span))
	}

	return Arc{kind: arcCustom, span: span}
}

// Span returns the full-arc length of one complete turn.
func (a Arc) Span() float64 {
	if a.kind == arcRadians {
		return twoPi
	}

	return a.span
}

// Half returns half the full arc, the location of the branch cut.
func (a Arc) Half() float64 { return a.Span() / 2 }

// toRad converts x from this arc's unit into radians.
func (a Arc) toRad(x float64) float64 {
	if a.kind == arcRadians {
		return x
	}

	return x * twoPi / a.span
}

// fromRad converts x from radians back into this arc's unit.
func (a Arc) fromRad(x float64) float64 {
	if a.kind == arcRadians {
		return x
	}

	return a.span * x / twoPi
}

// String implements fmt.Stringer.
func (a Arc) String() string {
	switch a.kind {
	case arcDegrees:
		return "Arc(degrees)"
	case arcCustom:
		return fmt.Sprintf("Arc(span=%g)", a.span)
	default:
		return "Arc(radians)"
	}
}
