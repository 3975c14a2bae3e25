package metrics

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Contraction is the fraction of steps shorter than the step before them.
// Values near 1 indicate a contracting iteration, near 0 a diverging one.
type Contraction struct {
	name       string
	prev       float64
	shrinking  int
	comparable int
	seen       bool
}

func NewContraction() *Contraction {
	return &Contraction{name: "contraction"}
}

func (c *Contraction) Name() string { return c.name }

func (c *Contraction) Observe(rec numeric.IterationRecord) {
	d := math.Abs(rec.Delta())
	if c.seen {
		c.comparable++
		if d < c.prev {
			c.shrinking++
		}
	}
	c.prev = d
	c.seen = true
}

func (c *Contraction) Value() float64 {
	if c.comparable == 0 {
		return 1.0
	}
	return float64(c.shrinking) / float64(c.comparable)
}

func (c *Contraction) Reset() {
	c.prev = 0
	c.shrinking = 0
	c.comparable = 0
	c.seen = false
}
