package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Simpson integrates f over [a, b] with Simpson's rule on n sub-intervals.
// An odd n is rounded up to the next even number and the result reports
// the count actually used. Each pair of sub-intervals yields one parabolic
// segment.
func Simpson(f numeric.Func, a, b float64, n int, opts ...Option) (*numeric.QuadResult, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		n++
	}
	o := buildOptions(opts)
	s := &sampler{f: f, policy: o.policy}

	h := (b - a) / float64(n)
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	oks := make([]bool, n+1)
	for i := 0; i <= n; i++ {
		xs[i] = a + float64(i)*h
		ys[i], oks[i] = s.at(xs[i])
	}

	sum := 0.0
	for i := 0; i <= n; i++ {
		if !oks[i] {
			continue
		}
		switch {
		case i == 0 || i == n:
			sum += ys[i]
		case i%2 == 1:
			sum += 4 * ys[i]
		default:
			sum += 2 * ys[i]
		}
	}

	segs := make([]numeric.Segment, 0, n/2)
	for i := 0; i < n; i += 2 {
		segs = append(segs, numeric.Segment{
			Shape: numeric.ShapeParabola,
			X0:    xs[i],
			X1:    xs[i+2],
			Samples: []numeric.Point{
				{X: xs[i], Y: ys[i]},
				{X: xs[i+1], Y: ys[i+1]},
				{X: xs[i+2], Y: ys[i+2]},
			},
			Failed: !oks[i] || !oks[i+1] || !oks[i+2],
		})
	}

	return s.result("simpson", h/3*sum, n, h, segs), nil
}
