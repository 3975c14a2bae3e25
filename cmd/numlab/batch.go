package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/automation"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/storage"
)

func batchCommand() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every step of a scenario file and store the runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")
	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if !noSave {
		if err := st.Init(); err != nil {
			return err
		}
	}

	if scenario.Description != "" {
		fmt.Printf("%s: %s\n\n", scenario.Name, scenario.Description)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMETHOD\tVALUE\tSTATUS\tRUN ID")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\t-\t-\t%v\t-\n", r.Step, r.Err)
			continue
		}
		runID := "-"
		if !noSave {
			if runID, err = st.Save(r.Report); err != nil {
				return fmt.Errorf("save %s: %w", r.Step, err)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%.10g\t%s\t%s\n", r.Step, r.Report.Config.Method, r.Report.Value(), r.Report.Status(), runID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(results))
	}
	return nil
}
