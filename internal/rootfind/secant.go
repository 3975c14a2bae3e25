package rootfind

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Secant runs the secant method from the two starting points x0 and x1.
//
// When |f(x1)-f(x0)| drops below SecantFloor the run stops early with x1 as
// the best estimate and StatusStalled; this is not reported as an error.
func Secant(f numeric.Func, x0, x1, tol float64, maxIter int) (*numeric.RootResult, error) {
	if err := validate(tol, maxIter); err != nil {
		return nil, err
	}
	if err := validStart("x0", x0); err != nil {
		return nil, err
	}
	if err := validStart("x1", x1); err != nil {
		return nil, err
	}

	res := newResult("secant", maxIter)
	for i := 0; i < maxIter; i++ {
		y0, err := f.Eval(x0)
		if err != nil {
			return res, err
		}
		y1, err := f.Eval(x1)
		if err != nil {
			return res, err
		}

		if math.Abs(y1-y0) < SecantFloor {
			return finish(res, x1, math.Abs(y1), numeric.StatusStalled), nil
		}

		secant := &numeric.Line{
			Kind:   numeric.LineSecant,
			Anchor: numeric.Point{X: x1, Y: y1},
			Slope:  (y1 - y0) / (x1 - x0),
		}
		x2 := x1 - y1*(x1-x0)/(y1-y0)
		record(res, numeric.IterationRecord{Prev: x1, Next: x2, FPrev: y1, Line: secant})

		if math.Abs(x2-x1) < tol {
			return finish(res, x2, residual(f, x2), numeric.StatusConverged), nil
		}
		x0, x1 = x1, x2
	}
	return finish(res, x1, residual(f, x1), numeric.StatusMaxIterations), nil
}
