// Package cmd provides the CLI commands for the os4p calculator.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/os4p/engine/internal/config"
	"github.com/os4p/engine/internal/engine"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "os4p",
	Short: "Estimate CO2 savings and financing for an outpost fleet",
	Long: `os4p computes the environmental and financial metrics of deploying
a fleet of autonomous, fuel-displacing outposts.

Examples:
  os4p calculate --outposts 5 --fuel 25 --rate 5 --years 10 --sla 15
  os4p calculate --outposts 5 --fuel 25 --rate 5 --years 10 --format json
  os4p sweep --param interest_rate --from 0 --to 10 --steps 20 --outposts 5 --fuel 25 --years 10`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildEngine loads configuration and constructs the calculation engine.
func buildEngine() (*engine.Engine, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	cfg.ApplyEnv(logger)

	return engine.New(cfg.Engine, logger)
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("os4p version 0.1.0")
	},
}
