package metrics

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Order estimates the empirical order of convergence q from the last three
// nonzero step sizes d, using q ≈ ln(d₂/d₁) / ln(d₁/d₀).
type Order struct {
	name  string
	steps []float64
}

func NewOrder() *Order {
	return &Order{name: "order"}
}

func (o *Order) Name() string { return o.name }

func (o *Order) Observe(rec numeric.IterationRecord) {
	d := math.Abs(rec.Delta())
	if d == 0 {
		return
	}
	o.steps = append(o.steps, d)
	if len(o.steps) > 3 {
		o.steps = o.steps[1:]
	}
}

func (o *Order) Value() float64 {
	if len(o.steps) < 3 {
		return 0
	}
	d0, d1, d2 := o.steps[0], o.steps[1], o.steps[2]
	den := math.Log(d1 / d0)
	if den == 0 {
		return 0
	}
	q := math.Log(d2/d1) / den
	if !numeric.IsFinite(q) {
		return 0
	}
	return q
}

func (o *Order) Reset() {
	o.steps = o.steps[:0]
}
