package circular

import "fmt"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultSkipNaN: reductions propagate NaN unless SkipNaN() is given.
	DefaultSkipNaN = false
	// DefaultOpenBounds: the sieve includes its boundaries unless OpenBounds() is given.
	DefaultOpenBounds = false
	// DefaultReflex: Sub returns the closer distance unless Reflex() is given.
	DefaultReflex = false
)

// options is the gathered per-call configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	degrees bool    // treat angles as degrees instead of radians
	custom  bool    // a custom full arc overrides both unit choices
	span    float64 // full-arc length when custom
	skipNaN bool    // nan-skipping reduction (Mean/Var/Std)
	hasAxis bool    // axis present: reduce along one axis instead of all
	axis    int     // reduction axis when hasAxis
	open    bool    // exclusive sector boundaries (Sieve)
	reflex  bool    // return the longer-way-around distance (Sub)
}

// Option mutates the per-call configuration.
// Constructors panic on nonsensical values (programmer error); all
// data-dependent conditions surface as returned errors instead.
type Option func(*options)

// InDegrees treats angles in units of degrees rather than radians.
func InDegrees() Option {
	return func(o *options) { o.degrees = true }
}

// WithArc overrides the full-arc length of the circle, redefining what one
// complete turn means. Examples: 1 for normalized digital frequency
// (0.5 is Nyquist), 24 for time of day, 365.2422 for time of year.
// Panics if span is not a positive finite number.
func WithArc(span float64) Option {
	a := ArcOf(span) // validates eagerly, at option construction

	return func(o *options) {
		o.custom = true
		o.span = a.span
	}
}

// SkipNaN makes reductions skip NaN elements instead of propagating them.
// A lane whose elements are all NaN still reduces to NaN.
func SkipNaN() Option {
	return func(o *options) { o.skipNaN = true }
}

// Along reduces along a single axis instead of over all elements, keeping
// one result per retained axis position. Panics if axis is negative;
// an axis beyond the operand's rank surfaces as tensor.ErrAxisOutOfRange
// at call time.
func Along(axis int) Option {
	if axis < 0 {
		panic(fmt.Sprintf("circular: Along(%d): axis must be non-negative", axis))
	}

	return func(o *options) {
		o.hasAxis = true
		o.axis = axis
	}
}

// OpenBounds makes the sieve exclusive: angles exactly equal to a sector
// boundary are not members.
func OpenBounds() Option {
	return func(o *options) { o.open = true }
}

// Reflex makes Sub return the longer-way-around distance
// (span − closer) instead of the closer one.
func Reflex() Option {
	return func(o *options) { o.reflex = true }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// arc resolves the gathered unit flags into a concrete Arc:
// a custom full arc wins over the degree flag, which wins over radians.
func (o options) arc() Arc {
	switch {
	case o.custom:
		return Arc{kind: arcCustom, span: o.span}
	case o.degrees:
		return Degrees()
	default:
		return Radians()
	}
}
