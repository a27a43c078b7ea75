package commands

import (
	"github.com/spf13/cobra"

	"github.com/phonlab/formantkit/analysis"
)

var monoExt string

var monoCmd = &cobra.Command{
	Use:   "mono",
	Short: "Convert every recording in a directory to mono WAV",
	Long: `Convert every matching recording in --in to a 16-bit mono WAV
file in --out, mixing channels down and keeping the sample rate.

Output files are named after the input with a .wav extension. Files
that cannot be decoded are logged and skipped.

Examples:
  formantkit mono --in ./recordings --out ./mono
  formantkit mono --in ./takes --ext .aiff --out ./mono`,
	RunE: runMono,
}

func runMono(cmd *cobra.Command, args []string) error {
	ac := cfg.AnalysisConfig()
	if cmd.Flags().Changed("ext") {
		ac.Ext = monoExt
	}

	if err := analysis.New(ac, log).ConvertToMono(inDir, outDir); err != nil {
		return err
	}
	log.Info("done")

	return nil
}

func init() {
	monoCmd.Flags().StringVar(&monoExt, "ext", analysis.DefaultExt, "recording file extension")

	rootCmd.AddCommand(monoCmd)
}
