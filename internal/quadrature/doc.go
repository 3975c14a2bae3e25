// Package quadrature approximates definite integrals with composite rules.
//
//   - [Rectangles]: left or right rectangle rule, O(h)
//   - [Trapezoid]: trapezoid rule, O(h²)
//   - [Simpson]: Simpson's rule, O(h⁴); odd segment counts are rounded up
//
// Every rule returns the estimate together with one [numeric.Segment] per
// drawn piece of the partition.
//
// # Domain errors
//
// A sample where the integrand is undefined never aborts a run. The
// [Policy] chosen with [WithPolicy] decides what happens instead:
// [PolicySkip] (the default) drops that sample's contribution, [PolicyNaN]
// poisons the whole estimate. Either way the abscissa is listed in
// QuadResult.Failures and the affected segment is marked Failed.
package quadrature
