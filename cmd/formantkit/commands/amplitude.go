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

var (
	ampStart  float64
	ampEnd    float64
	ampDPI    int
	ampOutput string
)

var amplitudeCmd = &cobra.Command{
	Use:   "amplitude <file>",
	Short: "Plot the waveform of a single recording",
	Long: `Render the amplitude of one recording over time as a PNG plot.

--start and --end trim the recording to a window before plotting; the
time axis keeps the timing of the original file. Either side may be
left open.

Examples:
  formantkit amplitude take1.wav --out ./results
  formantkit amplitude take1.wav --start 0.5 --end 1.5 --dpi 600`,
	Args: cobra.ExactArgs(1),
	RunE: runAmplitude,
}

func runAmplitude(cmd *cobra.Command, args []string) error {
	wave, err := analysis.New(cfg.AnalysisConfig(), log).LoadWaveform(args[0], ampStart, ampEnd)
	if err != nil {
		return err
	}

	dpi := cfg.Plot.AmplitudeDPI
	if cmd.Flags().Changed("dpi") {
		dpi = ampDPI
	}

	path := ampOutput
	if !filepath.IsAbs(path) {
		path = filepath.Join(outDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	if err := figure.SaveWaveform(path, wave, dpi); err != nil {
		return err
	}
	log.WithField("path", path).Info("plot saved")

	return nil
}

func init() {
	amplitudeCmd.Flags().Float64Var(&ampStart, "start", -1, "window start in seconds (-1 = from the beginning)")
	amplitudeCmd.Flags().Float64Var(&ampEnd, "end", -1, "window end in seconds (-1 = to the end)")
	amplitudeCmd.Flags().IntVar(&ampDPI, "dpi", figure.DefaultWaveformDPI, "plot resolution")
	amplitudeCmd.Flags().StringVar(&ampOutput, "output", "amplitude_plot.png", "output file, relative to --out")

	rootCmd.AddCommand(amplitudeCmd)
}
