// SPDX-License-Identifier: EPL-2.0

// Package commands implements the formantkit command tree.
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phonlab/formantkit/config"
)

var (
	// Global flags.
	configPath string
	inDir      string
	outDir     string
	logLevel   string

	// Configuration loaded before any command runs. Flags set on the
	// command line win over values from the file.
	cfg config.Config

	log = logrus.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "formantkit",
	Short: "Batch formant analysis for speech recordings",
	Long: `formantkit - batch formant analysis for speech recordings.

Commands:
  formants   analyze every recording in a directory and export CSV/plots
  mono       convert every recording in a directory to mono WAV
  amplitude  plot the waveform of a single recording
  version    show version information

Settings are read from ` + config.DefaultPath + ` in the working directory
when it exists (override the location with --config). Command-line flags
take precedence over the config file.

Examples:
  # Three formants at ten timestamps per file, CSV plus formant grid
  formantkit formants --in ./recordings --out ./results --csv --plot

  # Mono conversion of a whole directory
  formantkit mono --in ./recordings --out ./mono

  # One second of a recording at print resolution
  formantkit amplitude take1.wav --start 0.5 --end 1.5 --out ./results`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().StringVar(&inDir, "in", "./", "directory with input recordings")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "./", "directory for exported files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// setup loads the configuration and applies the log level before any
// command runs.
func setup(cmd *cobra.Command) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadIfPresent()
	}
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		logLevel = cfg.Log.Level
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	return nil
}
