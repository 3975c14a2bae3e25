// Package experiment turns a run configuration into a finished run.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/formula"
	"github.com/san-kum/numlab/internal/metrics"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

// Report is everything one run produced. Exactly one of Root and Quad is
// set.
type Report struct {
	Config   config.Config
	Function *numeric.Function
	Root     *numeric.RootResult
	Quad     *numeric.QuadResult
	Metrics  map[string]float64
	Elapsed  time.Duration
}

// Value is the root or the integral estimate.
func (r *Report) Value() float64 {
	if r.Root != nil {
		return r.Root.Root
	}
	return r.Quad.Value
}

// Status summarizes the outcome for display.
func (r *Report) Status() string {
	if r.Root != nil {
		return r.Root.Status.String()
	}
	if r.Quad.Skipped() > 0 {
		return fmt.Sprintf("%d sample(s) undefined", r.Quad.Skipped())
	}
	return "ok"
}

type Experiment struct {
	cfg      config.Config
	logger   *slog.Logger
	function *numeric.Function
	root     RootMethod
	rule     quadrature.Rule
	metrics  []metrics.Metric
}

// New copies cfg; later changes to the caller's value do not affect the run.
func New(cfg *config.Config, logger *slog.Logger) *Experiment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Experiment{cfg: *cfg, logger: logger}
}

// Setup validates the configuration and resolves the function and method.
func (e *Experiment) Setup(reg *Registry) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	f, err := formula.Parse(e.cfg.Function, e.cfg.Derivative)
	if err != nil {
		return err
	}
	e.function = f

	if e.cfg.IsRootMethod() {
		e.root, err = reg.GetRootMethod(e.cfg.Method)
		if err != nil {
			return err
		}
		e.metrics = reg.DefaultMetrics(e.cfg.Method)
		return nil
	}

	e.rule, err = reg.GetRule(e.cfg.Method)
	return err
}

// Run executes the configured method. When a root finder fails part way the
// report is returned together with the error and holds the partial trace.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	if e.function == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := e.logger.With("method", e.cfg.Method, "function", e.function.Name)
	log.Debug("run started")

	report := &Report{Config: e.cfg, Function: e.function}
	start := time.Now()

	if e.root != nil {
		res, err := e.root(e.function, &e.cfg)
		report.Elapsed = time.Since(start)
		if err != nil {
			log.Warn("run failed", "error", err)
			if res == nil {
				return nil, err
			}
			// the trace up to the failure is still worth drawing
			report.Root = res
			report.Metrics = metrics.Collect(res, e.metrics)
			return report, err
		}
		report.Root = res
		report.Metrics = metrics.Collect(res, e.metrics)
		log.Info("run finished",
			"root", res.Root,
			"iterations", res.Iterations,
			"status", res.Status,
			"elapsed", report.Elapsed,
		)
		return report, nil
	}

	policy, err := quadrature.ParsePolicy(e.cfg.DomainPolicy)
	if err != nil {
		return nil, err
	}
	res, err := e.rule(e.function, e.cfg.A, e.cfg.B, e.cfg.Segments, quadrature.WithPolicy(policy))
	report.Elapsed = time.Since(start)
	if err != nil {
		log.Warn("run failed", "error", err)
		return nil, err
	}
	report.Quad = res
	report.Metrics = map[string]float64{
		"segments": float64(res.N),
		"h":        res.H,
		"failures": float64(res.Skipped()),
	}
	if res.Skipped() > 0 {
		log.Warn("undefined samples", "count", res.Skipped(), "policy", policy)
	}
	log.Info("run finished", "value", res.Value, "segments", res.N, "elapsed", report.Elapsed)
	return report, nil
}

// Function returns the resolved function, or nil before Setup.
func (e *Experiment) Function() *numeric.Function {
	return e.function
}
