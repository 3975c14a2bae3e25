package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Rule is the common shape of the composite rules.
type Rule func(f numeric.Func, a, b float64, n int, opts ...Option) (*numeric.QuadResult, error)

func leftRule(f numeric.Func, a, b float64, n int, opts ...Option) (*numeric.QuadResult, error) {
	return Rectangles(f, a, b, n, Left, opts...)
}

func rightRule(f numeric.Func, a, b float64, n int, opts ...Option) (*numeric.QuadResult, error) {
	return Rectangles(f, a, b, n, Right, opts...)
}

var rules = map[string]Rule{
	"rect_left":  leftRule,
	"rect_right": rightRule,
	"trapezoid":  Trapezoid,
	"simpson":    Simpson,
}

// RuleNames lists the rules ByName accepts, least accurate first.
var RuleNames = []string{"rect_left", "rect_right", "trapezoid", "simpson"}

// ByName returns the rule registered under name.
func ByName(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}
