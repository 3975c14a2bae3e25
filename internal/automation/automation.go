// Package automation runs scripted batches of numerical experiments.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
)

// Scenario is a named list of runs loaded from YAML:
//
//	name: sqrt2 shoot-out
//	steps:
//	  - method: newton
//	    preset: sqrt2
//	  - method: secant
//	    with: {x0: 0, x1: 3, tolerance: 1e-10}
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and applies the
// fields given under "with". Fields not listed keep their base value.
type ScenarioStep struct {
	Label  string    `yaml:"label"`
	Method string    `yaml:"method"`
	Preset string    `yaml:"preset"`
	With   yaml.Node `yaml:"with"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Config resolves the step's run configuration.
func (s *ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Method, s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %s for %s", s.Preset, s.Method)
		}
	}
	if !s.With.IsZero() {
		if err := s.With.Decode(cfg); err != nil {
			return nil, fmt.Errorf("overrides: %w", err)
		}
	}
	cfg.Method = s.Method
	return cfg, nil
}

func (s *ScenarioStep) Name() string {
	switch {
	case s.Label != "":
		return s.Label
	case s.Preset != "":
		return s.Method + "/" + s.Preset
	}
	return s.Method
}

// StepResult pairs a step with its report and the error that stopped it,
// if any. A root finder that fails part way leaves both set.
type StepResult struct {
	Step   string
	Report *experiment.Report
	Err    error
}

// RunScenario executes the steps in order. A failing step is recorded and
// the scenario continues; only cancellation ends it early.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, logger *slog.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		step := &scenario.Steps[i]
		logger.Info("scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "name", step.Name())

		res := StepResult{Step: step.Name()}
		res.Report, res.Err = runStep(ctx, step, registry, logger)
		if res.Err != nil {
			res.Err = fmt.Errorf("step %d: %w", i+1, res.Err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, step *ScenarioStep, registry *experiment.Registry, logger *slog.Logger) (*experiment.Report, error) {
	cfg, err := step.Config()
	if err != nil {
		return nil, err
	}
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(registry); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	return exp.Run(ctx)
}
