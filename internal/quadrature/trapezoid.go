package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Trapezoid integrates f over [a, b] with n trapezoids.
func Trapezoid(f numeric.Func, a, b float64, n int, opts ...Option) (*numeric.QuadResult, error) {
	if err := validate(a, b, n); err != nil {
		return nil, err
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
		if i == 0 || i == n {
			sum += ys[i] / 2
		} else {
			sum += ys[i]
		}
	}

	segs := make([]numeric.Segment, n)
	for i := 0; i < n; i++ {
		segs[i] = numeric.Segment{
			Shape:   numeric.ShapeTrapezoid,
			X0:      xs[i],
			X1:      xs[i+1],
			Samples: []numeric.Point{{X: xs[i], Y: ys[i]}, {X: xs[i+1], Y: ys[i+1]}},
			Failed:  !oks[i] || !oks[i+1],
		}
	}

	return s.result("trapezoid", h*sum, n, h, segs), nil
}
