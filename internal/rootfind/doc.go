// Package rootfind solves f(x) = 0 for scalar functions.
//
// Each method returns a [numeric.RootResult] holding the final estimate and
// the ordered trace of steps that produced it:
//
//   - [FixedPoint]: repeated substitution x = g(x)
//   - [Newton]: tangent-line iteration using f'
//   - [Secant]: Newton with a finite-difference slope
//   - [Bisection]: interval halving on a sign change
//
// Running out of iterations is not an error. The result's Converged flag
// and Status say whether the tolerance was met. When a method fails part way
// (a domain error, or a zero derivative in Newton's method) the partial
// result is returned alongside the error.
package rootfind
