package analysis

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

// ReferenceSegments is the Simpson resolution used by Reference.
const ReferenceSegments = 4096

// SweepPoint is one rule evaluation inside a sweep.
type SweepPoint struct {
	N     int
	H     float64
	Value float64
	// Error is |Value - exact|.
	Error   float64
	Skipped int
}

// Sweep evaluates rule at every segment count in ns. The evaluations are
// independent and run concurrently; the result keeps the order of ns.
func Sweep(
	ctx context.Context,
	rule quadrature.Rule,
	f numeric.Func,
	a, b float64,
	ns []int,
	exact float64,
	opts ...quadrature.Option,
) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(ns))

	g, ctx := errgroup.WithContext(ctx)
	for i, n := range ns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := rule(f, a, b, n, opts...)
			if err != nil {
				return err
			}
			points[i] = SweepPoint{
				N:       res.N,
				H:       res.H,
				Value:   res.Value,
				Error:   math.Abs(res.Value - exact),
				Skipped: res.Skipped(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Reference integrates f with Simpson's rule at ReferenceSegments.
func Reference(f numeric.Func, a, b float64) (float64, error) {
	res, err := quadrature.Simpson(f, a, b, ReferenceSegments)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Order fits log(error) = p·log(h) + c by least squares and returns p.
// Points with a zero or non-finite error are ignored; NaN is returned when
// fewer than two remain.
func Order(points []SweepPoint) float64 {
	var xs, ys []float64
	for _, p := range points {
		if p.Error <= 0 || !numeric.IsFinite(p.Error) || p.H == 0 {
			continue
		}
		xs = append(xs, math.Log(math.Abs(p.H)))
		ys = append(ys, math.Log(p.Error))
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	var num, den float64
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// Doubling returns k segment counts starting at n0, each twice the last.
func Doubling(n0, k int) []int {
	ns := make([]int, k)
	for i := range ns {
		ns[i] = n0 << i
	}
	return ns
}
