package rootfind

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Newton runs Newton's method from x0. The run converges once |f(x)| < tol.
// A zero derivative ends the run with a *numeric.DivisionError.
//
// When maxIter steps have been taken the residual at the final estimate is
// checked once more so that a last step landing on the root still counts.
func Newton(f numeric.Differentiable, x0, tol float64, maxIter int) (*numeric.RootResult, error) {
	if err := validate(tol, maxIter); err != nil {
		return nil, err
	}
	if err := validStart("x0", x0); err != nil {
		return nil, err
	}

	res := newResult("newton", maxIter)
	x := x0
	for i := 0; i < maxIter; i++ {
		y, err := f.Eval(x)
		if err != nil {
			return res, err
		}
		if math.Abs(y) < tol {
			return finish(res, x, math.Abs(y), numeric.StatusConverged), nil
		}

		dy, err := f.Deriv(x)
		if err != nil {
			return res, err
		}
		if dy == 0 {
			return res, &numeric.DivisionError{
				Method: "newton",
				Step:   i,
				X:      x,
				Reason: "derivative is zero (stationary point)",
			}
		}

		tangent := &numeric.Line{Kind: numeric.LineTangent, Anchor: numeric.Point{X: x, Y: y}, Slope: dy}
		next := x - y/dy
		record(res, numeric.IterationRecord{Prev: x, Next: next, FPrev: y, Line: tangent})
		x = next
	}

	y, err := f.Eval(x)
	if err != nil {
		return res, err
	}
	if math.Abs(y) < tol {
		return finish(res, x, math.Abs(y), numeric.StatusConverged), nil
	}
	return finish(res, x, math.Abs(y), numeric.StatusMaxIterations), nil
}
