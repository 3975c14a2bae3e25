package quadrature_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

var (
	square = numeric.Plain(func(x float64) float64 { return x * x })
	pole   = numeric.Plain(func(x float64) float64 { return 1 / (x - 1) })
)

var _ = Describe("accuracy on x^2 over [0, 1]", func() {
	const third = 1.0 / 3.0

	It("orders Simpson before trapezoid before rectangles", func() {
		left, err := quadrature.Rectangles(square, 0, 1, 100, quadrature.Left)
		Expect(err).NotTo(HaveOccurred())
		right, err := quadrature.Rectangles(square, 0, 1, 100, quadrature.Right)
		Expect(err).NotTo(HaveOccurred())
		trap, err := quadrature.Trapezoid(square, 0, 1, 100)
		Expect(err).NotTo(HaveOccurred())
		simp, err := quadrature.Simpson(square, 0, 1, 100)
		Expect(err).NotTo(HaveOccurred())

		for _, r := range []*numeric.QuadResult{left, right, trap, simp} {
			Expect(r.Value).To(BeNumerically("~", third, 1e-2))
		}

		errSimp := math.Abs(simp.Value - third)
		errTrap := math.Abs(trap.Value - third)
		Expect(errSimp).To(BeNumerically("<", errTrap))
		Expect(errTrap).To(BeNumerically("<", math.Abs(left.Value-third)))
		Expect(errTrap).To(BeNumerically("<", math.Abs(right.Value-third)))
	})

	It("brackets the integral with left and right sums for an increasing integrand", func() {
		left, _ := quadrature.Rectangles(square, 0, 1, 10, quadrature.Left)
		right, _ := quadrature.Rectangles(square, 0, 1, 10, quadrature.Right)
		Expect(left.Value).To(BeNumerically("<", third))
		Expect(right.Value).To(BeNumerically(">", third))
	})
})

var _ = Describe("Rectangles", func() {
	It("is exact for constants", func() {
		c := numeric.Plain(func(float64) float64 { return 2.5 })
		for _, v := range []quadrature.Variant{quadrature.Left, quadrature.Right} {
			r, err := quadrature.Rectangles(c, -1, 3, 7, v)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value).To(BeNumerically("~", 10, 1e-12))
		}
	})

	It("samples at the chosen end of each sub-interval", func() {
		left, _ := quadrature.Rectangles(square, 0, 1, 4, quadrature.Left)
		right, _ := quadrature.Rectangles(square, 0, 1, 4, quadrature.Right)
		Expect(left.Segments).To(HaveLen(4))
		Expect(left.Method).To(Equal("rect_left"))
		Expect(right.Method).To(Equal("rect_right"))
		for i := range left.Segments {
			Expect(left.Segments[i].Samples[0].X).To(Equal(left.Segments[i].X0))
			Expect(right.Segments[i].Samples[0].X).To(Equal(right.Segments[i].X1))
			Expect(left.Segments[i].Shape).To(Equal(numeric.ShapeRectangle))
		}
	})
})

var _ = Describe("Trapezoid", func() {
	It("is exact for linear integrands", func() {
		lin := numeric.Plain(func(x float64) float64 { return 3*x - 1 })
		r, err := quadrature.Trapezoid(lin, 0, 2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Value).To(BeNumerically("~", 4, 1e-12))
	})

	It("emits contiguous trapezoids", func() {
		r, _ := quadrature.Trapezoid(square, 0, 1, 5)
		Expect(r.Segments).To(HaveLen(5))
		for i := 1; i < len(r.Segments); i++ {
			Expect(r.Segments[i].X0).To(Equal(r.Segments[i-1].X1))
			Expect(r.Segments[i].Samples[0]).To(Equal(r.Segments[i-1].Samples[1]))
		}
	})
})

var _ = Describe("Simpson", func() {
	cubic := numeric.Plain(func(x float64) float64 { return x*x*x - 2*x*x + x + 1 })
	exact := func(a, b float64) float64 {
		F := func(x float64) float64 { return x*x*x*x/4 - 2*x*x*x/3 + x*x/2 + x }
		return F(b) - F(a)
	}

	DescribeTable("is exact for cubics",
		func(a, b float64, n int) {
			r, err := quadrature.Simpson(cubic, a, b, n)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value).To(BeNumerically("~", exact(a, b), 1e-12))
		},
		Entry("single pair", -1.0, 2.0, 2),
		Entry("four segments", -1.0, 2.0, 4),
		Entry("odd count", 0.5, 3.0, 7),
		Entry("reversed interval", 2.0, -1.0, 10),
	)

	It("rounds an odd segment count up", func() {
		odd, err := quadrature.Simpson(numeric.Plain(math.Exp), 0, 1, 7)
		Expect(err).NotTo(HaveOccurred())
		even, err := quadrature.Simpson(numeric.Plain(math.Exp), 0, 1, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(odd.N).To(Equal(8))
		Expect(odd.Value).To(Equal(even.Value))
		Expect(odd.Segments).To(Equal(even.Segments))
	})

	It("emits one parabola per pair of sub-intervals", func() {
		r, _ := quadrature.Simpson(square, 0, 1, 6)
		Expect(r.Segments).To(HaveLen(3))
		for _, seg := range r.Segments {
			Expect(seg.Shape).To(Equal(numeric.ShapeParabola))
			Expect(seg.Samples).To(HaveLen(3))
			Expect(seg.Width()).To(BeNumerically("~", 2*r.H, 1e-15))
		}
	})
})

var _ = Describe("domain policy", func() {
	type rule func(opts ...quadrature.Option) (*numeric.QuadResult, error)

	rules := []struct {
		name string
		run  rule
	}{
		{"right rectangles", func(opts ...quadrature.Option) (*numeric.QuadResult, error) {
			return quadrature.Rectangles(pole, 0, 2, 4, quadrature.Right, opts...)
		}},
		{"trapezoid", func(opts ...quadrature.Option) (*numeric.QuadResult, error) {
			return quadrature.Trapezoid(pole, 0, 2, 4, opts...)
		}},
		{"simpson", func(opts ...quadrature.Option) (*numeric.QuadResult, error) {
			return quadrature.Simpson(pole, 0, 2, 4, opts...)
		}},
	}

	for _, rl := range rules {
		name, run := rl.name, rl.run

		It("skips the failing sample by default for "+name, func() {
			r, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsNaN(r.Value)).To(BeFalse())
			Expect(r.Failures).To(Equal([]float64{1}))
			Expect(r.Skipped()).To(Equal(1))

			failed := 0
			for _, seg := range r.Segments {
				if seg.Failed {
					failed++
					Expect(seg.Outline(10)).To(BeNil())
				}
			}
			Expect(failed).To(BeNumerically(">", 0))
		})

		It("poisons the estimate under PolicyNaN for "+name, func() {
			r, err := run(quadrature.WithPolicy(quadrature.PolicyNaN))
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsNaN(r.Value)).To(BeTrue())
			Expect(r.Segments).NotTo(BeEmpty())
		})
	}

	It("drops exactly the failing contribution", func() {
		r, err := quadrature.Trapezoid(pole, 0, 2, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Value).To(BeNumerically("~", 0, 1e-12))

		s, err := quadrature.Simpson(pole, 0, 2, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Value).To(BeNumerically("~", 0, 1e-12))
	})
})

var _ = Describe("purity", func() {
	It("returns identical results for identical calls", func() {
		tan := numeric.Plain(math.Tan)

		a, _ := quadrature.Simpson(tan, 0, 1, 10)
		b, _ := quadrature.Simpson(tan, 0, 1, 10)
		Expect(a).To(Equal(b))

		c, _ := quadrature.Trapezoid(tan, 0, 1, 10)
		d, _ := quadrature.Trapezoid(tan, 0, 1, 10)
		Expect(c).To(Equal(d))

		e, _ := quadrature.Rectangles(tan, 0, 1, 10, quadrature.Left)
		f, _ := quadrature.Rectangles(tan, 0, 1, 10, quadrature.Left)
		Expect(e).To(Equal(f))
	})
})

var _ = DescribeTable("configuration errors",
	func(a, b float64, n int) {
		_, err := quadrature.Rectangles(square, a, b, n, quadrature.Left)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		_, err = quadrature.Trapezoid(square, a, b, n)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		_, err = quadrature.Simpson(square, a, b, n)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
	},
	Entry("zero segments", 0.0, 1.0, 0),
	Entry("negative segments", 0.0, 1.0, -3),
	Entry("zero-length interval", 1.0, 1.0, 10),
	Entry("infinite bound", 0.0, math.Inf(1), 10),
)

var _ = Describe("ParsePolicy and ParseVariant", func() {
	It("accepts known names", func() {
		p, err := quadrature.ParsePolicy("nan")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(quadrature.PolicyNaN))

		v, err := quadrature.ParseVariant("right")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(quadrature.Right))
	})

	It("rejects unknown names", func() {
		_, err := quadrature.ParsePolicy("ignore")
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		_, err = quadrature.ParseVariant("middle")
		Expect(err).To(MatchError(numeric.ErrConfiguration))
	})
})

var _ = Describe("ByName", func() {
	It("resolves every listed rule", func() {
		for _, name := range quadrature.RuleNames {
			rule, ok := quadrature.ByName(name)
			Expect(ok).To(BeTrue(), name)
			r, err := rule(square, 0, 1, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.N).To(Equal(4))
		}
		_, ok := quadrature.ByName("midpoint")
		Expect(ok).To(BeFalse())
	})
})
