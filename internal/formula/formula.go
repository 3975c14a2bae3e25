// Package formula turns user input into numeric functions, either by name
// from a fixed catalogue or by compiling an expression in x.
package formula

import (
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/san-kum/numlab/internal/numeric"
)

// Variable is the name expressions use for the free variable.
const Variable = "x"

var builtins = map[string]any{
	"pi":    math.Pi,
	"e":     math.E,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"pow":   math.Pow,
}

// Expr is a compiled expression in x. It is safe for concurrent use.
type Expr struct {
	src     string
	program *vm.Program
}

// Compile parses src as an expression in x, e.g. "x^2 - 2" or "sin(x)/x".
func Compile(src string) (*Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, numeric.Invalid("function", src, "expression is empty")
	}
	program, err := expr.Compile(src, expr.Env(env(0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("formula: compile %q: %w", src, err)
	}
	return &Expr{src: src, program: program}, nil
}

func env(x float64) map[string]any {
	m := make(map[string]any, len(builtins)+1)
	maps.Copy(m, builtins)
	m[Variable] = x
	return m
}

// Eval evaluates the expression at x. Runtime failures and non-finite
// values are reported as *numeric.DomainError.
func (e *Expr) Eval(x float64) (float64, error) {
	out, err := expr.Run(e.program, env(x))
	if err != nil {
		return math.NaN(), &numeric.DomainError{X: x, Value: math.NaN()}
	}
	y, ok := out.(float64)
	if !ok || !numeric.IsFinite(y) {
		return y, &numeric.DomainError{X: x, Value: y}
	}
	return y, nil
}

func (e *Expr) String() string { return e.src }

// PoleEps is how close cos(x) may get to zero before Tan reports a pole.
const PoleEps = 1e-9

// Tan is math.Tan with poles reported as NaN.
func Tan(x float64) float64 {
	if math.Abs(math.Cos(x)) < PoleEps {
		return math.NaN()
	}
	return math.Tan(x)
}

// Parse resolves fn as a catalogue name or an expression. A non-empty
// deriv is compiled as the analytic derivative and overrides any the
// catalogue entry carries.
func Parse(fn, deriv string) (*numeric.Function, error) {
	f, ok := Lookup(fn)
	if !ok {
		e, err := Compile(fn)
		if err != nil {
			return nil, err
		}
		f = numeric.FromFunc(e.String(), e)
	}
	if strings.TrimSpace(deriv) != "" {
		d, err := Compile(deriv)
		if err != nil {
			return nil, fmt.Errorf("derivative: %w", err)
		}
		f = f.WithDerivativeFunc(d)
	}
	return f, nil
}
