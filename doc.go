// Package clockwork is your toolbox for circular (modular) quantities —
// angles, headings, times of day, days of year — and the statistics that
// live on a circle rather than a line.
//
// 🚀 What is clockwork?
//
//	A small, stateless, pure-Go library that brings together:
//		• Principal-angle reduction: wrap any angle into [-half, half)
//		• Circular mean / variance / standard deviation via the resultant vector
//		• Sector sieve: "is this angle inside that arc?", branch cut included
//		• Circular subtraction: the closer or the reflex distance between angles
//		• AngleCalc: a two-method, degrees-only convenience layer
//
// ✨ Why choose clockwork?
//
//   - Unit-flexible – radians, degrees, or any custom full arc (24 h, 365.2422 d)
//   - Rank-flexible – scalars, slices, or n-dimensional tensors with broadcasting
//   - Honest edge cases – branch cuts, antipodal cancellation and NaN handling
//     behave exactly as documented, never as surprise panics
//   - Pure Go – deterministic, side-effect-free, safe to call from any goroutine
//
// Under the hood, everything is organized under three subpackages:
//
//	circular/  — the statistics core: PrincipalAngle, Mean, Var, Std, Sieve, Sub
//	tensor/    — dense rank-n containers with broadcasting and axis reduction
//	anglecalc/ — BoundTo180 and IsAngleBetween, fixed to degrees
//
// Quick ASCII example:
//
//	        0°
//	        │    ↗ 45°
//	 -90°───┼─── 90°
//	        │
//	      ±180°      ← the branch cut, where wraparound happens
//
//	circular.Mean([]float64{350, 355, 0, 5}, circular.InDegrees()) // ≈ -2.5
//
// Dive into the per-package docs for full examples and the exact boundary
// conventions, and into examples/ for runnable scenarios.
//
//	go get github.com/nathanielatom/clockwork/circular
package clockwork
