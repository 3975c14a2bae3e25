package numeric

import "math"

// DiffStep is the relative step used for central-difference derivatives.
const DiffStep = 1e-6

// Func is a real function of one variable. Eval fails with a *DomainError
// when the function has no finite value at x.
type Func interface {
	Eval(x float64) (float64, error)
}

// Differentiable is a Func that can also evaluate its first derivative.
type Differentiable interface {
	Func
	Deriv(x float64) (float64, error)
}

// Plain adapts an ordinary float64 function. NaN and ±Inf results are
// reported as domain errors.
type Plain func(x float64) float64

func (p Plain) Eval(x float64) (float64, error) {
	y := p(x)
	if !IsFinite(y) {
		return y, &DomainError{X: x, Value: y}
	}
	return y, nil
}

// Function is a named scalar function with an optional analytic derivative.
type Function struct {
	Name string
	f    Func
	df   Func
}

func NewFunction(name string, f func(float64) float64) *Function {
	return &Function{Name: name, f: Plain(f)}
}

// FromFunc wraps an existing Func.
func FromFunc(name string, f Func) *Function {
	return &Function{Name: name, f: f}
}

// WithDerivative returns a copy of fn carrying df as its derivative.
func (fn *Function) WithDerivative(df func(float64) float64) *Function {
	return fn.WithDerivativeFunc(Plain(df))
}

func (fn *Function) WithDerivativeFunc(df Func) *Function {
	c := *fn
	c.df = df
	return &c
}

// HasDerivative reports whether an analytic derivative is attached.
func (fn *Function) HasDerivative() bool { return fn.df != nil }

func (fn *Function) Eval(x float64) (float64, error) {
	return fn.f.Eval(x)
}

// Deriv evaluates the derivative at x. Without an analytic derivative it
// falls back to a central difference.
func (fn *Function) Deriv(x float64) (float64, error) {
	if fn.df != nil {
		return fn.df.Eval(x)
	}
	return CentralDiff(fn.f, x)
}

func (fn *Function) String() string { return fn.Name }

// CentralDiff approximates f'(x) with a symmetric difference quotient.
func CentralDiff(f Func, x float64) (float64, error) {
	h := DiffStep * math.Max(1, math.Abs(x))
	hi, err := f.Eval(x + h)
	if err != nil {
		return 0, err
	}
	lo, err := f.Eval(x - h)
	if err != nil {
		return 0, err
	}
	d := (hi - lo) / (2 * h)
	if !IsFinite(d) {
		return d, &DomainError{X: x, Value: d}
	}
	return d, nil
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
