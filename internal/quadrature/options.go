package quadrature

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Policy selects how a sample that fails to evaluate is treated.
type Policy int

const (
	PolicySkip Policy = iota
	PolicyNaN
)

func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyNaN:
		return "nan"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy accepts "skip" or "nan".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "skip":
		return PolicySkip, nil
	case "nan":
		return PolicyNaN, nil
	}
	return 0, numeric.Invalid("domain_policy", s, "must be skip or nan")
}

// Variant selects the sample point of the rectangle rule.
type Variant int

const (
	Left Variant = iota
	Right
)

func (v Variant) String() string {
	if v == Right {
		return "right"
	}
	return "left"
}

func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, numeric.Invalid("variant", s, "must be left or right")
}

type options struct {
	policy Policy
}

type Option func(*options)

func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

func buildOptions(opts []Option) options {
	o := options{policy: PolicySkip}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate(a, b float64, n int) error {
	if !numeric.IsFinite(a) {
		return numeric.Invalid("a", a, "must be finite")
	}
	if !numeric.IsFinite(b) {
		return numeric.Invalid("b", b, "must be finite")
	}
	if a == b {
		return numeric.Invalid("interval", [2]float64{a, b}, "has zero length")
	}
	if n < 1 {
		return numeric.Invalid("segments", n, "must be at least 1")
	}
	return nil
}

// sampler evaluates the integrand and applies the domain policy.
type sampler struct {
	f        numeric.Func
	policy   Policy
	failures []float64
}

// at returns f(x) and whether it is usable. A failed sample yields NaN.
func (s *sampler) at(x float64) (float64, bool) {
	y, err := s.f.Eval(x)
	if err != nil {
		s.failures = append(s.failures, x)
		return math.NaN(), false
	}
	return y, true
}

func (s *sampler) result(method string, sum float64, n int, h float64, segs []numeric.Segment) *numeric.QuadResult {
	if s.policy == PolicyNaN && len(s.failures) > 0 {
		sum = math.NaN()
	}
	return &numeric.QuadResult{
		Method:   method,
		Value:    sum,
		N:        n,
		H:        h,
		Segments: segs,
		Failures: s.failures,
	}
}
