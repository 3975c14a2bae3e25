package rootfind_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/rootfind"
)

var sqrt2 = math.Sqrt2

func parabola() *numeric.Function {
	return numeric.NewFunction("x^2-2", func(x float64) float64 { return x*x - 2 }).
		WithDerivative(func(x float64) float64 { return 2 * x })
}

var _ = Describe("Newton", func() {
	It("converges to sqrt(2) from 1.5 in a few steps", func() {
		res, err := rootfind.Newton(parabola(), 1.5, 1e-4, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Status).To(Equal(numeric.StatusConverged))
		Expect(res.Root).To(BeNumerically("~", sqrt2, 1e-4))
		Expect(res.Iterations).To(BeNumerically("<", 5))
	})

	It("reports |f(root)| below tol on convergence", func() {
		res, err := rootfind.Newton(parabola(), 1.5, 1e-4, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Residual).To(Equal(math.Abs(res.Root*res.Root - 2)))
		Expect(res.Residual).To(BeNumerically("<", 1e-4))
	})

	It("records a tangent line per step", func() {
		res, err := rootfind.Newton(parabola(), 1.5, 1e-10, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Records).NotTo(BeEmpty())
		for i, rec := range res.Records {
			Expect(rec.Step).To(Equal(i))
			Expect(rec.Line).NotTo(BeNil())
			Expect(rec.Line.Kind).To(Equal(numeric.LineTangent))
			root, ok := rec.Line.Root()
			Expect(ok).To(BeTrue())
			Expect(root).To(BeNumerically("~", rec.Next, 1e-12))
		}
	})

	It("reports a division error at a stationary point", func() {
		res, err := rootfind.Newton(parabola(), 0, 1e-4, 10)
		Expect(err).To(MatchError(numeric.ErrDivision))
		var de *numeric.DivisionError
		Expect(err).To(BeAssignableToTypeOf(de))
		Expect(res.Converged).To(BeFalse())
		Expect(math.IsInf(res.Root, 0)).To(BeFalse())
		Expect(math.IsNaN(res.Root)).To(BeFalse())
	})

	It("falls back to a numerical derivative", func() {
		f := numeric.NewFunction("x^2-2", func(x float64) float64 { return x*x - 2 })
		res, err := rootfind.Newton(f, 1.5, 1e-8, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", sqrt2, 1e-6))
	})

	It("returns the best estimate without converging when out of iterations", func() {
		res, err := rootfind.Newton(parabola(), 100, 1e-12, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeFalse())
		Expect(res.Status).To(Equal(numeric.StatusMaxIterations))
		Expect(res.Iterations).To(Equal(2))
		Expect(res.Root).To(Equal(res.Records[1].Next))
	})

	It("surfaces domain errors", func() {
		f := numeric.NewFunction("log", math.Log).WithDerivative(func(x float64) float64 { return 1 / x })
		_, err := rootfind.Newton(f, -1, 1e-6, 10)
		Expect(err).To(MatchError(numeric.ErrDomain))
	})
})

var _ = Describe("Secant", func() {
	It("converges to sqrt(2) from 1 and 2", func() {
		res, err := rootfind.Secant(parabola(), 1.0, 2.0, 1e-4, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Root).To(BeNumerically("~", sqrt2, 1e-4))
		for _, rec := range res.Records {
			Expect(rec.Line).NotTo(BeNil())
			Expect(rec.Line.Kind).To(Equal(numeric.LineSecant))
		}
	})

	It("stops early on a flat secant and reports x1", func() {
		flat := numeric.NewFunction("const", func(float64) float64 { return 3 })
		res, err := rootfind.Secant(flat, 0, 1, 1e-6, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(numeric.StatusStalled))
		Expect(res.Converged).To(BeFalse())
		Expect(res.Root).To(Equal(1.0))
		Expect(res.Records).To(BeEmpty())
	})

	It("reports the last x1 when out of iterations", func() {
		res, err := rootfind.Secant(parabola(), 1.0, 2.0, 1e-14, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(numeric.StatusMaxIterations))
		Expect(res.Root).To(Equal(res.Records[0].Next))
	})
})

var _ = Describe("FixedPoint", func() {
	babylonian := numeric.Plain(func(x float64) float64 { return 0.5 * (x + 2/x) })

	It("converges to sqrt(2) and agrees with Newton", func() {
		res, err := rootfind.FixedPoint(babylonian, 1.0, 1e-4, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Root).To(BeNumerically("~", sqrt2, 1e-4))

		nr, err := rootfind.Newton(parabola(), 1.0, 1e-4, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", nr.Root, 1e-4))
	})

	It("records each substitution", func() {
		res, err := rootfind.FixedPoint(babylonian, 1.0, 1e-4, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Records[0].Prev).To(Equal(1.0))
		Expect(res.Records[0].Next).To(Equal(1.5))
		for i := 1; i < len(res.Records); i++ {
			Expect(res.Records[i].Prev).To(Equal(res.Records[i-1].Next))
		}
	})

	It("runs to max_iter on a diverging map", func() {
		diverging := numeric.Plain(func(x float64) float64 { return 2*x + 1 })
		res, err := rootfind.FixedPoint(diverging, 1.0, 1e-6, 15)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeFalse())
		Expect(res.Iterations).To(Equal(15))
	})

	It("stops on a domain error", func() {
		_, err := rootfind.FixedPoint(babylonian, 0, 1e-4, 20)
		Expect(err).To(MatchError(numeric.ErrDomain))
	})
})

var _ = Describe("Bisection", func() {
	It("brackets sqrt(2) on an inverted parabola", func() {
		f := numeric.Plain(func(x float64) float64 { return -x*x + 2 })
		res, err := rootfind.Bisection(f, 0, 2, 1e-3, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Root).To(BeNumerically("~", sqrt2, 1e-3))
		for _, rec := range res.Records {
			Expect(rec.Bracket).NotTo(BeNil())
			Expect(rec.Bracket.Width()).To(BeNumerically(">=", 0))
		}
	})

	It("rejects an interval without a sign change", func() {
		_, err := rootfind.Bisection(parabola(), 2, 3, 1e-3, 100)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
	})

	It("rejects a zero-length interval", func() {
		res, err := rootfind.Bisection(parabola(), 1, 1, 1e-3, 10)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		Expect(res).To(BeNil())
	})

	It("accepts a root at an endpoint", func() {
		f := numeric.Plain(func(x float64) float64 { return x - 1 })
		res, err := rootfind.Bisection(f, 1, 3, 1e-3, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Converged).To(BeTrue())
		Expect(res.Root).To(Equal(1.0))
	})
})

var _ = DescribeTable("parameter validation",
	func(tol float64, maxIter int) {
		_, err := rootfind.FixedPoint(numeric.Plain(math.Cos), 1, tol, maxIter)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		_, err = rootfind.Newton(parabola(), 1, tol, maxIter)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
		_, err = rootfind.Secant(parabola(), 1, 2, tol, maxIter)
		Expect(err).To(MatchError(numeric.ErrConfiguration))
	},
	Entry("zero tolerance", 0.0, 10),
	Entry("negative tolerance", -1e-4, 10),
	Entry("NaN tolerance", math.NaN(), 10),
	Entry("zero iterations", 1e-4, 0),
)
