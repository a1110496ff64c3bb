// Package anglecalc is a minimal, degrees-only convenience layer over
// github.com/nathanielatom/clockwork/circular for navigation-style code
// that works with headings in [-180, 180).
//
// Two operations:
//
//	calc := anglecalc.AngleCalc{}
//	calc.BoundTo180(270)               // -90: principal branch in degrees
//	calc.IsAngleBetween(-90, -180, 110) // true: -180 lies in the smaller
//	                                    // sector bounded by -90 and 110
//
// IsAngleBetween always tests the smaller (non-reflex) of the two sectors
// bounded by its outer arguments, with exclusive boundaries: an angle
// exactly equal to either bound is not between. Sectors straddling the
// ±180 branch cut are handled correctly.
package anglecalc
