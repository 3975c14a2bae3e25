package formula

import (
	"math"
	"sort"

	"github.com/san-kum/numlab/internal/numeric"
)

type entry struct {
	f, df func(float64) float64
	note  string
}

var catalogue = map[string]entry{
	"x^2-2": {
		f:    func(x float64) float64 { return x*x - 2 },
		df:   func(x float64) float64 { return 2 * x },
		note: "roots at ±sqrt(2)",
	},
	"-x^2+2": {
		f:    func(x float64) float64 { return -x*x + 2 },
		df:   func(x float64) float64 { return -2 * x },
		note: "inverted parabola, bisection demo",
	},
	"babylonian": {
		f:    func(x float64) float64 { return 0.5 * (x + 2/x) },
		df:   func(x float64) float64 { return 0.5 * (1 - 2/(x*x)) },
		note: "g(x) for x^2=2 as a fixed point",
	},
	"x^2": {
		f:  func(x float64) float64 { return x * x },
		df: func(x float64) float64 { return 2 * x },
	},
	"x^3": {
		f:  func(x float64) float64 { return x * x * x },
		df: func(x float64) float64 { return 3 * x * x },
	},
	"cubic": {
		f:    func(x float64) float64 { return x*x*x - 2*x*x + x + 1 },
		df:   func(x float64) float64 { return 3*x*x - 4*x + 1 },
		note: "x^3-2x^2+x+1",
	},
	"sin": {f: math.Sin, df: math.Cos},
	"cos": {
		f:  math.Cos,
		df: func(x float64) float64 { return -math.Sin(x) },
	},
	"tan": {
		f: Tan,
		df: func(x float64) float64 {
			c := math.Cos(x)
			if math.Abs(c) < PoleEps {
				return math.NaN()
			}
			return 1 / (c * c)
		},
		note: "poles at pi/2 + k*pi",
	},
	"exp": {f: math.Exp, df: math.Exp},
	"log": {
		f:  math.Log,
		df: func(x float64) float64 { return 1 / x },
	},
	"sqrt": {
		f:  math.Sqrt,
		df: func(x float64) float64 { return 0.5 / math.Sqrt(x) },
	},
	"1/x": {
		f:  func(x float64) float64 { return 1 / x },
		df: func(x float64) float64 { return -1 / (x * x) },
	},
	"gauss": {
		f:    func(x float64) float64 { return math.Exp(-x * x) },
		df:   func(x float64) float64 { return -2 * x * math.Exp(-x*x) },
		note: "exp(-x^2)",
	},
	"runge": {
		f:    func(x float64) float64 { return 1 / (1 + x*x) },
		df:   func(x float64) float64 { return -2 * x / ((1 + x*x) * (1 + x*x)) },
		note: "1/(1+x^2)",
	},
}

// Lookup returns the catalogue function with the given name.
func Lookup(name string) (*numeric.Function, bool) {
	e, ok := catalogue[name]
	if !ok {
		return nil, false
	}
	return numeric.NewFunction(name, e.f).WithDerivative(e.df), true
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the note attached to a catalogue entry.
func Describe(name string) string {
	return catalogue[name].note
}
