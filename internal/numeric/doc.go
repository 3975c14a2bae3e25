// Package numeric provides the shared primitives for the root-finding and
// quadrature packages.
//
// The package defines:
//
//   - [Func]: a real function of one variable whose evaluation may fail
//   - [Function]: a named adapter pairing a function with its derivative
//   - [IterationRecord]: one step of a root-finding run
//   - [Segment]: one piece of a quadrature partition, with its geometry
//   - [RootResult] and [QuadResult]: the value of a run plus its trace
//
// # Example
//
//	f := numeric.NewFunction("x^2-2", func(x float64) float64 { return x*x - 2 }).
//		WithDerivative(func(x float64) float64 { return 2 * x })
//	res, err := rootfind.Newton(f, 1.5, 1e-4, 10)
//
// # Thread Safety
//
// Every value here is immutable once built. Results are owned by the caller
// and nothing is shared between runs, so runs may execute concurrently.
package numeric
