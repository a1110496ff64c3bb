// Package tensor provides dense rank-n numeric containers for
// github.com/nathanielatom/clockwork, with standard broadcasting rules and
// axis-wise reduction support.
//
// 🚀 What is tensor?
//
//	A minimal, row-major, flat-buffer container family:
//	  • Dense — float64 elements, rank ≥ 0 (rank 0 is a scalar)
//	  • Mask  — bool elements, produced by predicate operations
//
// ✨ Key features:
//   - one flat []float64 backing slice, cache-friendly and allocation-exact
//   - rank 0 scalars, so a single code path covers scalar and array calls
//   - BroadcastShapes / BroadcastTo with standard trailing-dimension rules
//   - AxisSpans decomposition (outer × size × inner) for axis reductions
//   - Item() unwrap: a 1-element tensor of any rank collapses to its value
//
// ⚙️ Usage:
//
//	t, err := tensor.FromRows([][]float64{{350, 355}, {0, 5}})
//	v, err := t.At(1, 0)            // 0.0
//	flat := t.Raw()                 // live backing slice, row-major
//	out, size, in, err := t.AxisSpans(1)
//
// Determinism:
//
//	Element order in every result follows row-major input order; no
//	operation mutates its receiver unless documented (Set, Fill).
//
// See the circular package for the statistics built on top.
package tensor
