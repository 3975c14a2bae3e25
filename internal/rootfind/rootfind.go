package rootfind

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// SecantFloor is the smallest |f(x1)-f(x0)| the secant method divides by.
const SecantFloor = 1e-12

func validate(tol float64, maxIter int) error {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return numeric.Invalid("tolerance", tol, "must be a positive finite number")
	}
	if maxIter < 1 {
		return numeric.Invalid("max_iter", maxIter, "must be at least 1")
	}
	return nil
}

func validStart(name string, x float64) error {
	if !numeric.IsFinite(x) {
		return numeric.Invalid(name, x, "must be finite")
	}
	return nil
}

// residual returns |f(x)|, or NaN when f is undefined at x.
func residual(f numeric.Func, x float64) float64 {
	y, err := f.Eval(x)
	if err != nil {
		return math.NaN()
	}
	return math.Abs(y)
}

func newResult(method string, maxIter int) *numeric.RootResult {
	return &numeric.RootResult{
		Method:  method,
		Status:  numeric.StatusMaxIterations,
		Records: make([]numeric.IterationRecord, 0, maxIter),
	}
}

// record appends rec with its step index set.
func record(res *numeric.RootResult, rec numeric.IterationRecord) {
	rec.Step = len(res.Records)
	res.Records = append(res.Records, rec)
	res.Iterations = len(res.Records)
}

func finish(res *numeric.RootResult, root, residual float64, status numeric.Status) *numeric.RootResult {
	res.Root = root
	res.Residual = residual
	res.Status = status
	res.Converged = status == numeric.StatusConverged
	return res
}
