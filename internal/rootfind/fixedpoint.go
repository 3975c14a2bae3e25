package rootfind

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// FixedPoint iterates x = g(x) from x0 until two successive estimates differ
// by less than tol. There is no divergence guard: when |g'| >= 1 near the
// fixed point the run simply exhausts maxIter.
func FixedPoint(g numeric.Func, x0, tol float64, maxIter int) (*numeric.RootResult, error) {
	if err := validate(tol, maxIter); err != nil {
		return nil, err
	}
	if err := validStart("x0", x0); err != nil {
		return nil, err
	}

	res := newResult("fixed_point", maxIter)
	for i := 0; i < maxIter; i++ {
		x1, err := g.Eval(x0)
		if err != nil {
			return res, err
		}
		record(res, numeric.IterationRecord{Prev: x0, Next: x1, FPrev: x1})

		step := math.Abs(x1 - x0)
		if step < tol {
			return finish(res, x1, step, numeric.StatusConverged), nil
		}
		x0 = x1
	}
	last := res.Records[len(res.Records)-1]
	return finish(res, x0, math.Abs(last.Delta()), numeric.StatusMaxIterations), nil
}
