package analysis

import (
	"context"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Solver runs a root finder from a single starting point.
type Solver func(x0 float64) (*numeric.RootResult, error)

// StartOutcome is what one starting point led to.
type StartOutcome struct {
	X0         float64
	Root       float64
	Iterations int
	Status     numeric.Status
	Err        error
}

func (o StartOutcome) Converged() bool {
	return o.Err == nil && o.Status == numeric.StatusConverged
}

// StartScan runs a solver over a grid of starting points, which shows
// the basins of attraction of an iterative method.
type StartScan struct {
	starts []float64
}

func NewStartScan(lo, hi float64, steps int) *StartScan {
	return &StartScan{starts: Linspace(lo, hi, steps)}
}

func (s *StartScan) Starts() []float64 { return s.starts }

// Scan runs solve from every start. Solver errors are kept per outcome;
// only context cancellation aborts the scan.
func (s *StartScan) Scan(ctx context.Context, solve Solver) ([]StartOutcome, error) {
	out := make([]StartOutcome, 0, len(s.starts))
	for _, x0 := range s.starts {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		o := StartOutcome{X0: x0, Root: math.NaN()}
		res, err := solve(x0)
		if res != nil {
			o.Root = res.Root
			o.Iterations = res.Iterations
			o.Status = res.Status
		}
		o.Err = err
		out = append(out, o)
	}
	return out, nil
}

// Best returns the converged outcome that used the fewest iterations.
func Best(outcomes []StartOutcome) (StartOutcome, bool) {
	best := StartOutcome{Iterations: math.MaxInt}
	found := false
	for _, o := range outcomes {
		if o.Converged() && o.Iterations < best.Iterations {
			best = o
			found = true
		}
	}
	return best, found
}

// Basins groups converged starting points by the root they reached.
// Roots closer than tol are treated as the same root.
func Basins(outcomes []StartOutcome, tol float64) map[float64][]float64 {
	basins := make(map[float64][]float64)
	for _, o := range outcomes {
		if !o.Converged() {
			continue
		}
		key := o.Root
		for r := range basins {
			if math.Abs(r-o.Root) < tol {
				key = r
				break
			}
		}
		basins[key] = append(basins[key], o.X0)
	}
	return basins
}

// Linspace returns steps evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, steps int) []float64 {
	if steps <= 1 {
		return []float64{lo}
	}
	out := make([]float64, steps)
	step := (hi - lo) / float64(steps-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
