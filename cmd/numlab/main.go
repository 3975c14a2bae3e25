package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/formula"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/viz"
)

var (
	dataDir string
	verbose bool
	logger  *slog.Logger

	// run parameters
	function   string
	derivative string
	x0         float64
	x1         float64
	lo         float64
	hi         float64
	tolerance  float64
	maxIter    int
	segments   int
	policy     string
	configFile string
	preset     string
	noSave     bool

	// replay
	interval  time.Duration
	themeName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical methods lab: root finding and quadrature with traces",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:       "run [method]",
		Short:     "run a method and store its trace",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Methods,
		RunE:      runMethod,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	replayCmd := &cobra.Command{
		Use:       "replay [method]",
		Short:     "run a method and step through it in the terminal",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Methods,
		RunE:      replayMethod,
	}
	addRunFlags(replayCmd)
	replayCmd.Flags().DurationVar(&interval, "interval", 600*time.Millisecond, "time per step while playing")
	replayCmd.Flags().StringVar(&themeName, "theme", "chalk", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [method]",
		Short: "list available presets for a method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for method: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-12s %s\n", p, cfg.Function)
			}
			return nil
		},
	}

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list built-in functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range formula.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, formula.Describe(name))
			}
			fmt.Fprintln(w, "\nany expression in x is accepted too, e.g. \"x^3 - x - 2\"")
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, replayCmd, listCmd, presetsCmd, functionsCmd)
	rootCmd.AddCommand(runCommands()...)
	rootCmd.AddCommand(analysisCommands()...)
	rootCmd.AddCommand(batchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVarP(&function, "function", "f", def.Function, "built-in name or expression in x")
	cmd.Flags().StringVar(&derivative, "derivative", "", "derivative expression (newton)")
	cmd.Flags().Float64Var(&x0, "x0", def.X0, "starting point")
	cmd.Flags().Float64Var(&x1, "x1", def.X1, "second starting point (secant)")
	cmd.Flags().Float64VarP(&lo, "a", "a", def.A, "interval start")
	cmd.Flags().Float64VarP(&hi, "b", "b", def.B, "interval end")
	cmd.Flags().Float64Var(&tolerance, "tol", def.Tolerance, "tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", def.MaxIter, "iteration limit")
	cmd.Flags().IntVarP(&segments, "n", "n", def.Segments, "number of segments")
	cmd.Flags().StringVar(&policy, "policy", def.DomainPolicy, "undefined sample policy: skip or nan")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig layers defaults, preset, config file and flags, in that
// order of increasing precedence.
func buildConfig(cmd *cobra.Command, method string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(method, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(method))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Method = method

	flags := cmd.Flags()
	if flags.Changed("function") {
		cfg.Function = function
	}
	if flags.Changed("derivative") {
		cfg.Derivative = derivative
	}
	if flags.Changed("x0") {
		cfg.X0 = x0
	}
	if flags.Changed("x1") {
		cfg.X1 = x1
	}
	if flags.Changed("a") {
		cfg.A = lo
	}
	if flags.Changed("b") {
		cfg.B = hi
	}
	if flags.Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if flags.Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	if flags.Changed("n") {
		cfg.Segments = segments
	}
	if flags.Changed("policy") {
		cfg.DomainPolicy = policy
	}
	return cfg, nil
}

func execute(cmd *cobra.Command, method string) (*experiment.Report, error) {
	cfg, err := buildConfig(cmd, method)
	if err != nil {
		return nil, err
	}

	exp := experiment.New(cfg, logger)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return nil, err
	}
	return exp.Run(cmd.Context())
}

func runMethod(cmd *cobra.Command, args []string) error {
	report, err := execute(cmd, args[0])
	if err != nil {
		return err
	}

	styles := viz.NewStyles(viz.ThemeChalk)
	fmt.Println(styles.Block(report.Config.Method, summaryRows(report)))

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(report)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(report.Metrics) {
		fmt.Printf("  %s: %.6g\n", name, report.Metrics[name])
	}
	return nil
}

func summaryRows(r *experiment.Report) [][2]string {
	rows := [][2]string{{"function", r.Function.Name}}
	if r.Root != nil {
		rows = append(rows,
			[2]string{"root", strconv.FormatFloat(r.Root.Root, 'g', 10, 64)},
			[2]string{"iterations", strconv.Itoa(r.Root.Iterations)},
		)
	} else {
		rows = append(rows,
			[2]string{"interval", fmt.Sprintf("[%g, %g]", r.Config.A, r.Config.B)},
			[2]string{"integral", strconv.FormatFloat(r.Quad.Value, 'g', 10, 64)},
			[2]string{"segments", strconv.Itoa(r.Quad.N)},
		)
	}
	rows = append(rows,
		[2]string{"status", r.Status()},
		[2]string{"elapsed", r.Elapsed.String()},
	)
	return rows
}

func sceneFor(r *experiment.Report, title string) *viz.Scene {
	if r.Root != nil {
		return viz.NewRootScene(title, r.Function, r.Root)
	}
	return viz.NewQuadScene(title, r.Function, r.Quad)
}

func replayMethod(cmd *cobra.Command, args []string) error {
	report, err := execute(cmd, args[0])
	if report == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "run stopped early: %v\n", err)
	}

	title := fmt.Sprintf("%s  %s", report.Config.Method, report.Function.Name)
	m := viz.NewReplay(sceneFor(report, title), viz.GetTheme(themeName), interval).
		WithSummary(summaryRows(report))

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tFUNCTION\tTIME\tVALUE\tSTEPS\tSTATUS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.8g\t%d\t%s\n",
			run.ID,
			run.Method,
			run.Function,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Value,
			run.Steps,
			run.Status,
		)
	}

	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
