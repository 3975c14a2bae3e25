// Package analysis studies the numerical methods themselves rather than a
// single run.
//
//   - [Sweep]: one quadrature rule over several segment counts, concurrently
//   - [Order]: empirical order of accuracy fitted to a sweep
//   - [Reference]: a high-resolution Simpson value to measure errors against
//   - [StartScan]: a root finder over a grid of starting points
//
// # Convergence study
//
//	exact, _ := analysis.Reference(f, 0, 1)
//	pts, _ := analysis.Sweep(ctx, quadrature.Trapezoid, f, 0, 1, []int{8, 16, 32}, exact)
//	p := analysis.Order(pts) // close to 2 for the trapezoid rule
package analysis
