package rootfind

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Bisection halves [a, b] until its width is at most tol. f(a) and f(b)
// must not share a sign. The midpoint of the final bracket is the root.
func Bisection(f numeric.Func, a, b, tol float64, maxIter int) (*numeric.RootResult, error) {
	if err := validate(tol, maxIter); err != nil {
		return nil, err
	}
	if err := validStart("a", a); err != nil {
		return nil, err
	}
	if err := validStart("b", b); err != nil {
		return nil, err
	}
	if a == b {
		return nil, numeric.Invalid("interval", [2]float64{a, b}, "has zero length")
	}
	if a > b {
		a, b = b, a
	}

	fa, err := f.Eval(a)
	if err != nil {
		return nil, err
	}
	fb, err := f.Eval(b)
	if err != nil {
		return nil, err
	}

	res := newResult("bisection", maxIter)
	switch {
	case fa == 0:
		return finish(res, a, 0, numeric.StatusConverged), nil
	case fb == 0:
		return finish(res, b, 0, numeric.StatusConverged), nil
	case math.Signbit(fa) == math.Signbit(fb):
		return nil, numeric.Invalid("interval", [2]float64{a, b}, "f does not change sign")
	}

	for i := 0; i < maxIter && math.Abs(b-a) > tol; i++ {
		mid := a + (b-a)/2
		fm, err := f.Eval(mid)
		if err != nil {
			return res, err
		}

		if fm == 0 {
			record(res, numeric.IterationRecord{Prev: mid, Next: mid, FPrev: fm, Bracket: &numeric.Bracket{Lo: mid, Hi: mid}})
			return finish(res, mid, 0, numeric.StatusConverged), nil
		}
		if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = mid, fm
		} else {
			b = mid
		}
		record(res, numeric.IterationRecord{Prev: mid, Next: a + (b-a)/2, FPrev: fm, Bracket: &numeric.Bracket{Lo: a, Hi: b}})
	}

	root := a + (b-a)/2
	if math.Abs(b-a) <= tol {
		return finish(res, root, residual(f, root), numeric.StatusConverged), nil
	}
	return finish(res, root, residual(f, root), numeric.StatusMaxIterations), nil
}
