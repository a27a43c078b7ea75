// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phonlab/formantkit/analysis"
	"github.com/phonlab/formantkit/figure"
)

// Exports land in --out under fixed names.
const (
	csvName  = "formants.csv"
	plotName = "formant_plots.png"
)

var (
	numTimestamps int
	numFormants   int
	exportCSV     bool
	exportPlot    bool
	gridDPI       int
	soundExt      string
)

var formantsCmd = &cobra.Command{
	Use:   "formants",
	Short: "Extract formants from every recording in a directory",
	Long: `Analyze every matching recording in --in and extract formant
frequencies at evenly spaced timestamps.

Each file is resampled to twice the formant ceiling, mixed down to mono
and run through Burg LPC analysis. Files that cannot be decoded are
logged and skipped; the batch carries on.

Exports are written to --out:
  --csv    ` + csvName + ` with one row per sound and timestamp
  --plot   ` + plotName + ` with one panel per sound (first nine)

Examples:
  formantkit formants --in ./recordings --csv
  formantkit formants --in ./recordings --out ./results --plot --dpi 600
  formantkit formants --in ./takes --ext .aiff --formants 5 --csv`,
	RunE: runFormants,
}

func runFormants(cmd *cobra.Command, args []string) error {
	ac := cfg.AnalysisConfig()
	flags := cmd.Flags()
	if flags.Changed("timestamps") {
		ac.Timestamps = numTimestamps
	}
	if flags.Changed("formants") {
		ac.Formants = numFormants
	}
	if flags.Changed("ext") {
		ac.Ext = soundExt
	}

	if !exportCSV && !exportPlot {
		log.Warn("neither --csv nor --plot requested, results are discarded")
	}

	a := analysis.New(ac, log)
	res, err := a.ExtractFormants(inDir)
	if err != nil {
		return err
	}

	// An empty batch was already warned about; nothing to export.
	if (!exportCSV && !exportPlot) || len(res.Sounds) == 0 {
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	if exportCSV {
		if err := a.ExportCSV(res, filepath.Join(outDir, csvName)); err != nil {
			return err
		}
	}

	if exportPlot {
		dpi := cfg.Plot.DPI
		if flags.Changed("dpi") {
			dpi = gridDPI
		}
		path := filepath.Join(outDir, plotName)
		if err := figure.SaveFormantGrid(path, res, dpi); err != nil {
			return err
		}
		log.WithField("path", path).Info("plot saved")
	}

	return nil
}

func init() {
	formantsCmd.Flags().IntVar(&numTimestamps, "timestamps", analysis.DefaultTimestamps, "timestamps per recording")
	formantsCmd.Flags().IntVar(&numFormants, "formants", analysis.DefaultFormants, "formants per timestamp")
	formantsCmd.Flags().BoolVar(&exportCSV, "csv", false, "write "+csvName+" to --out")
	formantsCmd.Flags().BoolVar(&exportPlot, "plot", false, "write "+plotName+" to --out")
	formantsCmd.Flags().IntVar(&gridDPI, "dpi", figure.DefaultGridDPI, "formant plot resolution")
	formantsCmd.Flags().StringVar(&soundExt, "ext", analysis.DefaultExt, "recording file extension")

	rootCmd.AddCommand(formantsCmd)
}
