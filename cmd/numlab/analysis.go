package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/analysis"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/formula"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

var (
	sweepStart  int
	sweepSteps  int
	exactValue  float64
	scanFrom    float64
	scanTo      float64
	scanSteps   int
	compareRule []string

	// compare has its own copies; the run flags share variables.
	cmpFunction string
	cmpLo       float64
	cmpHi       float64
	cmpPolicy   string
)

func analysisCommands() []*cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare quadrature rules over doubling segment counts",
		Args:  cobra.NoArgs,
		RunE:  compareRules,
	}
	compareCmd.Flags().StringVarP(&cmpFunction, "function", "f", "tan", "built-in name or expression in x")
	compareCmd.Flags().Float64VarP(&cmpLo, "a", "a", 0, "interval start")
	compareCmd.Flags().Float64VarP(&cmpHi, "b", "b", 1, "interval end")
	compareCmd.Flags().IntVar(&sweepStart, "n0", 2, "first segment count")
	compareCmd.Flags().IntVar(&sweepSteps, "steps", 6, "number of doublings")
	compareCmd.Flags().Float64Var(&exactValue, "exact", math.NaN(), "exact integral (default: fine Simpson reference)")
	compareCmd.Flags().StringSliceVar(&compareRule, "rules", quadrature.RuleNames, "rules to compare")
	compareCmd.Flags().StringVar(&cmpPolicy, "policy", "skip", "undefined sample policy: skip or nan")

	scanCmd := &cobra.Command{
		Use:       "scan [method]",
		Short:     "run a root finder from a grid of starting points",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"fixed_point", "newton", "secant"},
		RunE:      scanStarts,
	}
	addRunFlags(scanCmd)
	scanCmd.Flags().Float64Var(&scanFrom, "from", -3, "first starting point")
	scanCmd.Flags().Float64Var(&scanTo, "to", 3, "last starting point")
	scanCmd.Flags().IntVar(&scanSteps, "steps", 13, "number of starting points")

	return []*cobra.Command{compareCmd, scanCmd}
}

func compareRules(cmd *cobra.Command, args []string) error {
	f, err := formula.Parse(cmpFunction, "")
	if err != nil {
		return err
	}
	p, err := quadrature.ParsePolicy(cmpPolicy)
	if err != nil {
		return err
	}

	exact := exactValue
	if math.IsNaN(exact) {
		exact, err = analysis.Reference(f, cmpLo, cmpHi)
		if err != nil {
			return err
		}
	}
	ns := analysis.Doubling(sweepStart, sweepSteps)

	fmt.Printf("comparing rules for %s on [%g, %g] (reference %.12g)\n\n", f.Name, cmpLo, cmpHi, exact)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RULE\tORDER")
	for _, n := range ns {
		fmt.Fprintf(w, "\tn=%d", n)
	}
	fmt.Fprintln(w)

	var series [][]float64
	var names []string
	for _, name := range compareRule {
		rule, ok := quadrature.ByName(name)
		if !ok {
			fmt.Fprintf(w, "%s\terror: unknown rule\n", name)
			continue
		}
		pts, err := analysis.Sweep(cmd.Context(), rule, f, cmpLo, cmpHi, ns, exact, quadrature.WithPolicy(p))
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.2f", name, analysis.Order(pts))
		errs := make([]float64, len(pts))
		for i, pt := range pts {
			fmt.Fprintf(w, "\t%.2e", pt.Error)
			errs[i] = math.Log10(math.Max(pt.Error, 1e-16))
		}
		fmt.Fprintln(w)
		series = append(series, errs)
		names = append(names, name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(series) > 0 && len(ns) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(series,
			asciigraph.Height(12),
			asciigraph.Width(60),
			asciigraph.Caption("log10 error vs doubling ("+strings.Join(names, ", ")+")"),
		))
	}
	return nil
}

func scanStarts(cmd *cobra.Command, args []string) error {
	method := args[0]
	cfg, err := buildConfig(cmd, method)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if method == "bisection" || !cfg.IsRootMethod() {
		return fmt.Errorf("scan needs a method with a starting point, got %s", method)
	}

	f, err := formula.Parse(cfg.Function, cfg.Derivative)
	if err != nil {
		return err
	}
	solve, err := experiment.NewRegistry().GetRootMethod(method)
	if err != nil {
		return err
	}

	scan := analysis.NewStartScan(scanFrom, scanTo, scanSteps)
	outcomes, err := scan.Scan(cmd.Context(), func(start float64) (*numeric.RootResult, error) {
		c := *cfg
		c.X0 = start
		if method == "secant" {
			c.X1 = start + (cfg.X1 - cfg.X0)
		}
		return solve(f, &c)
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X0\tROOT\tITER\tSTATUS")
	for _, o := range outcomes {
		status := o.Status.String()
		if o.Err != nil {
			status = o.Err.Error()
		}
		fmt.Fprintf(w, "%.4g\t%.10g\t%d\t%s\n", o.X0, o.Root, o.Iterations, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	basins := analysis.Basins(outcomes, math.Max(10*cfg.Tolerance, 1e-9))
	roots := make([]float64, 0, len(basins))
	for r := range basins {
		roots = append(roots, r)
	}
	sort.Float64s(roots)

	fmt.Println("\nbasins:")
	for _, r := range roots {
		fmt.Printf("  %.8g <- %d start(s)\n", r, len(basins[r]))
	}
	if best, ok := analysis.Best(outcomes); ok {
		fmt.Printf("fastest: x0=%.4g in %d iterations\n", best.X0, best.Iterations)
	}
	return nil
}

