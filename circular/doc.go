// Package circular computes statistics and predicates on circular
// (modular) quantities: angles, compass headings, phases, times of day,
// days of year — anything that wraps around instead of extending forever.
//
// 🚀 What is circular?
//
//	The statistics core of github.com/nathanielatom/clockwork:
//	  • PrincipalAngle — wrap any angle into the half-open [-half, half)
//	  • Mean / Var / Std — resultant-vector statistics of angle collections
//	  • Sieve — membership in a circular sector, branch cut included
//	  • Sub — the closer (or reflex) circular distance between two angles
//
// ✨ Key features:
//   - Radians by default, degrees via InDegrees(), or any custom full arc
//     via WithArc (24 for hours, 365.2422 for days of year, 1 for
//     normalized digital frequency)
//   - Scalar fast paths plus tensor variants with broadcasting and
//     axis-wise reduction (Along)
//   - NaN-skipping reductions via SkipNaN, mirroring nan-aware means
//   - No surprise errors: antipodal cancellation, zero resultant vectors
//     and boundary-exact angles all complete with documented values
//
// ⚙️ Usage:
//
//	import "github.com/nathanielatom/clockwork/circular"
//
//	m := circular.Mean([]float64{350, 355, 0, 5}, circular.InDegrees())  // ≈ -2.5
//	v := circular.Var([]float64{350, 355, 0, 5}, circular.InDegrees())   // ≈ 0.00475
//	in := circular.Sieve(70.234, 25, 92, circular.InDegrees())           // true
//	d := circular.Sub(10, 350, circular.InDegrees())                     // 20
//
// Conventions (exact, load-bearing):
//
//   - The principal branch is half-open: exactly +half maps to -half,
//     so PrincipalAngle(180, InDegrees()) == -180.
//   - Mean outputs are circular quantities in [-half, half); Var lies in
//     [0, 1] and Std in [0, +Inf) — neither is unit-converted.
//   - A zero resultant vector has argument 0 (the atan2(0, 0) convention),
//     so the mean of antipodal pairs is 0, never NaN.
//   - Non-principal inputs landing exactly on a sector boundary may flip
//     inclusion by one ULP of reduction error; this is documented behavior.
//
// Every function is pure and stateless; concurrent calls need no locking.
//
// See package anglecalc for the degrees-only two-method wrapper, and
// package tensor for the container types.
package circular
