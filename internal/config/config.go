package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/numlab/internal/numeric"
)

const (
	DefaultFunction  = "x^2-2"
	DefaultTolerance = 1e-4
	DefaultMaxIter   = 20
	DefaultX0        = 1.0
	DefaultX1        = 2.0
	DefaultA         = 0.0
	DefaultB         = 1.0
	DefaultSegments  = 10
	DefaultScale     = 100.0
)

// Methods lists every method name a Config may select.
var Methods = []string{
	"fixed_point", "newton", "secant", "bisection",
	"rect_left", "rect_right", "trapezoid", "simpson",
}

// Config is the complete parameter set of one run. A run never reads
// anything outside its Config.
type Config struct {
	Method       string  `yaml:"method" json:"method" validate:"required,oneof=fixed_point newton secant bisection rect_left rect_right trapezoid simpson"`
	Function     string  `yaml:"function" json:"function" validate:"required"`
	Derivative   string  `yaml:"derivative,omitempty" json:"derivative,omitempty"`
	X0           float64 `yaml:"x0" json:"x0"`
	X1           float64 `yaml:"x1" json:"x1"`
	A            float64 `yaml:"a" json:"a"`
	B            float64 `yaml:"b" json:"b"`
	Tolerance    float64 `yaml:"tolerance" json:"tolerance" validate:"gt=0"`
	MaxIter      int     `yaml:"max_iter" json:"max_iter" validate:"gte=1,lte=100000"`
	Segments     int     `yaml:"segments" json:"segments" validate:"gte=1,lte=10000000"`
	DomainPolicy string  `yaml:"domain_policy" json:"domain_policy" validate:"omitempty,oneof=skip nan"`
	Scale        float64 `yaml:"scale" json:"scale" validate:"gt=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:       "newton",
		Function:     DefaultFunction,
		X0:           DefaultX0,
		X1:           DefaultX1,
		A:            DefaultA,
		B:            DefaultB,
		Tolerance:    DefaultTolerance,
		MaxIter:      DefaultMaxIter,
		Segments:     DefaultSegments,
		DomainPolicy: "skip",
		Scale:        DefaultScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IsRootMethod reports whether the method finds roots rather than integrals.
func (c *Config) IsRootMethod() bool {
	switch c.Method {
	case "fixed_point", "newton", "secant", "bisection":
		return true
	}
	return false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the cross-field rules a method
// needs. Failures are returned as *numeric.ConfigurationError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return numeric.Invalid(fe.Field(), fe.Value(), fmt.Sprintf("failed %q constraint", fe.Tag()))
		}
		return fmt.Errorf("%w: %v", numeric.ErrConfiguration, err)
	}

	switch c.Method {
	case "secant":
		if c.X0 == c.X1 {
			return numeric.Invalid("x1", c.X1, "must differ from x0")
		}
	case "bisection", "rect_left", "rect_right", "trapezoid", "simpson":
		if c.A == c.B {
			return numeric.Invalid("interval", [2]float64{c.A, c.B}, "has zero length")
		}
	}
	return nil
}
