package metrics

import (
	"github.com/san-kum/numlab/internal/numeric"
)

// Residual reports RootResult.Residual: |f| at the returned root, or the
// size of the last step for fixed-point runs. The records alone cannot give
// it since no record is written at the final estimate.
type Residual struct {
	name  string
	value float64
	done  bool
}

func NewResidual() *Residual {
	return &Residual{name: "residual"}
}

func (r *Residual) Name() string { return r.name }

func (r *Residual) Observe(rec numeric.IterationRecord) {}

func (r *Residual) Finish(res *numeric.RootResult) {
	r.value = res.Residual
	r.done = true
}

func (r *Residual) Value() float64 {
	if !r.done {
		return 0
	}
	return r.value
}

func (r *Residual) Reset() {
	r.value = 0
	r.done = false
}
