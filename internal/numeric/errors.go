package numeric

import (
	"errors"
	"fmt"
)

// Error classes for numerical operations.
var (
	// ErrDomain indicates a function is undefined at the requested point.
	ErrDomain = errors.New("numeric: function undefined at sample point")

	// ErrDivision indicates a method hit a zero or vanishing denominator.
	ErrDivision = errors.New("numeric: division by zero")

	// ErrConfiguration indicates invalid run parameters.
	ErrConfiguration = errors.New("numeric: invalid configuration")
)

// DomainError reports a failed evaluation at X.
type DomainError struct {
	X     float64
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (x=%g, value=%g)", ErrDomain, e.X, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// DivisionError reports a step that would divide by zero.
type DivisionError struct {
	Method string
	Step   int
	X      float64
	Reason string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: %s at step %d (x=%g): %s", e.Method, ErrDivision, e.Step, e.X, e.Reason)
}

func (e *DivisionError) Unwrap() error {
	return ErrDivision
}

// ConfigurationError reports a rejected parameter.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Invalid is shorthand for building a *ConfigurationError.
func Invalid(field string, value any, reason string) error {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}
