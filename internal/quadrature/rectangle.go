package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Rectangles integrates f over [a, b] with n rectangles sampled at the left
// or right end of each sub-interval. It is exact for constant integrands.
func Rectangles(f numeric.Func, a, b float64, n int, variant Variant, opts ...Option) (*numeric.QuadResult, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	s := &sampler{f: f, policy: o.policy}

	h := (b - a) / float64(n)
	segs := make([]numeric.Segment, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		x0 := a + float64(i)*h
		x1 := a + float64(i+1)*h
		xs := x0
		if variant == Right {
			xs = x1
		}
		y, ok := s.at(xs)
		if ok {
			sum += y
		}
		segs[i] = numeric.Segment{
			Shape:   numeric.ShapeRectangle,
			X0:      x0,
			X1:      x1,
			Samples: []numeric.Point{{X: xs, Y: y}},
			Failed:  !ok,
		}
	}

	return s.result("rect_"+variant.String(), h*sum, n, h, segs), nil
}
