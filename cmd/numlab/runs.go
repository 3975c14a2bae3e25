package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/export"
	"github.com/san-kum/numlab/internal/formula"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/viz"
)

var (
	outPath   string
	svgWidth  int
	svgHeight int
	svgDots   bool
	plotCols  int
	plotRows  int
)

func runCommands() []*cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotCols, "cols", 60, "canvas width in cells")
	plotCmd.Flags().IntVar(&plotRows, "rows", 20, "canvas height in cells")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the run trace as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "render a stored run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.svg)")
	svgCmd.Flags().IntVar(&svgWidth, "width", 0, "width in pixels (default 8 x scale)")
	svgCmd.Flags().IntVar(&svgHeight, "height", 0, "height in pixels (default 6 x scale)")
	svgCmd.Flags().BoolVar(&svgDots, "dots", false, "render the Braille canvas instead of vectors")

	return []*cobra.Command{plotCmd, exportCmd, exportJSONCmd, exportCSVCmd, svgCmd}
}

// loadScene rebuilds the scene of a stored run from its config and trace.
func loadScene(st *storage.Store, runID string) (*storage.RunMetadata, *viz.Scene, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	f, err := formula.Parse(meta.Config.Function, meta.Config.Derivative)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild function: %w", err)
	}

	title := fmt.Sprintf("%s  %s", meta.Method, f.Name)
	if meta.Kind == storage.KindRoot {
		recs, err := st.LoadRecords(runID)
		if err != nil {
			return nil, nil, err
		}
		res := recordsResult(meta, recs)
		return meta, viz.NewRootScene(title, f, res), nil
	}

	segs, err := st.LoadSegments(runID)
	if err != nil {
		return nil, nil, err
	}
	sc := &viz.Scene{Title: title, Method: meta.Method, Function: f, Segments: segs, Lo: meta.Config.A, Hi: meta.Config.B}
	if sc.Lo > sc.Hi {
		sc.Lo, sc.Hi = sc.Hi, sc.Lo
	}
	return meta, sc, nil
}

func recordsResult(meta *storage.RunMetadata, recs []numeric.IterationRecord) *numeric.RootResult {
	return &numeric.RootResult{
		Method:     meta.Method,
		Root:       meta.Value,
		Iterations: len(recs),
		Converged:  meta.Converged,
		Residual:   meta.Metrics["residual"],
		Records:    recs,
	}
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, scene, err := loadScene(st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("method: %s\n", meta.Method)
	fmt.Printf("function: %s\n", meta.Function)
	fmt.Printf("value: %.10g (%s)\n\n", meta.Value, meta.Status)

	fmt.Print(scene.Render(plotCols, plotRows, scene.Steps()))
	fmt.Println()

	if len(scene.Records) < 2 {
		return nil
	}

	iterates := make([]float64, 0, len(scene.Records)+1)
	iterates = append(iterates, scene.Records[0].Prev)
	for _, r := range scene.Records {
		iterates = append(iterates, r.Next)
	}
	fmt.Println(asciigraph.Plot(iterates,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("estimate per step"),
	))
	fmt.Println()

	deltas := viz.Deltas(scene.Records)
	for i, d := range deltas {
		deltas[i] = math.Log10(math.Max(d, 1e-16))
	}
	fmt.Println(asciigraph.Plot(deltas,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 |step|"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(outPath, data); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if _, err := st.Load(args[0]); err != nil {
		return err
	}

	f, err := os.Open(st.TraceFile(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func renderSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, scene, err := loadScene(st, args[0])
	if err != nil {
		return err
	}

	scale := meta.Config.Scale
	if scale <= 0 {
		scale = config.DefaultScale
	}
	w, h := svgWidth, svgHeight
	if w <= 0 {
		w = int(8 * scale)
	}
	if h <= 0 {
		h = int(6 * scale)
	}

	var svg string
	if svgDots {
		svg = export.CanvasToSVG(scene.Draw(plotCols, plotRows, scene.Steps()).Canvas, float64(w)/float64(2*plotCols))
	} else {
		svg = export.SceneToSVG(scene, scene.Steps(), w, h)
	}

	path := outPath
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
