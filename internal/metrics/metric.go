// Package metrics summarizes root-finding traces.
package metrics

import "github.com/san-kum/numlab/internal/numeric"

// Metric folds a trace into a single number. Observe is called once per
// record in step order; Reset prepares the metric for another run.
type Metric interface {
	Name() string
	Observe(rec numeric.IterationRecord)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard metrics.
func Defaults() []Metric {
	return []Metric{
		NewResidual(),
		NewStepSize(),
		NewContraction(),
		NewOrder(),
	}
}

// Finisher is implemented by metrics that also read the finished result,
// for quantities the trace does not hold.
type Finisher interface {
	Finish(res *numeric.RootResult)
}

// Collect runs every metric over the records of res and returns the values
// by name.
func Collect(res *numeric.RootResult, ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, rec := range res.Records {
			m.Observe(rec)
		}
		if f, ok := m.(Finisher); ok {
			f.Finish(res)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
