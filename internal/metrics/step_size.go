package metrics

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// StepSize is |x_{n+1} - x_n| of the final step.
type StepSize struct {
	name    string
	last    float64
	samples int
}

func NewStepSize() *StepSize {
	return &StepSize{name: "step_size"}
}

func (s *StepSize) Name() string { return s.name }

func (s *StepSize) Observe(rec numeric.IterationRecord) {
	s.last = math.Abs(rec.Delta())
	s.samples++
}

func (s *StepSize) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.last
}

func (s *StepSize) Reset() {
	s.last = 0
	s.samples = 0
}
