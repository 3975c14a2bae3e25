package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/metrics"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/rootfind"
)

// RootMethod runs a root finder with the parameters it needs from cfg.
type RootMethod func(f *numeric.Function, cfg *config.Config) (*numeric.RootResult, error)

type Registry struct {
	roots map[string]RootMethod
	quads map[string]quadrature.Rule
}

func NewRegistry() *Registry {
	r := &Registry{
		roots: make(map[string]RootMethod),
		quads: make(map[string]quadrature.Rule),
	}

	r.roots["fixed_point"] = func(f *numeric.Function, cfg *config.Config) (*numeric.RootResult, error) {
		return rootfind.FixedPoint(f, cfg.X0, cfg.Tolerance, cfg.MaxIter)
	}
	r.roots["newton"] = func(f *numeric.Function, cfg *config.Config) (*numeric.RootResult, error) {
		return rootfind.Newton(f, cfg.X0, cfg.Tolerance, cfg.MaxIter)
	}
	r.roots["secant"] = func(f *numeric.Function, cfg *config.Config) (*numeric.RootResult, error) {
		return rootfind.Secant(f, cfg.X0, cfg.X1, cfg.Tolerance, cfg.MaxIter)
	}
	r.roots["bisection"] = func(f *numeric.Function, cfg *config.Config) (*numeric.RootResult, error) {
		return rootfind.Bisection(f, cfg.A, cfg.B, cfg.Tolerance, cfg.MaxIter)
	}

	for _, name := range quadrature.RuleNames {
		rule, _ := quadrature.ByName(name)
		r.quads[name] = rule
	}

	return r
}

func (r *Registry) GetRootMethod(name string) (RootMethod, error) {
	fn, ok := r.roots[name]
	if !ok {
		return nil, fmt.Errorf("unknown root method: %s", name)
	}
	return fn, nil
}

func (r *Registry) GetRule(name string) (quadrature.Rule, error) {
	rule, ok := r.quads[name]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature rule: %s", name)
	}
	return rule, nil
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.roots)+len(r.quads))
	for name := range r.roots {
		names = append(names, name)
	}
	for name := range r.quads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(method string) []metrics.Metric {
	if _, ok := r.roots[method]; !ok {
		return nil
	}
	return metrics.Defaults()
}
