package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebreaker/internal/config"
	"codebreaker/internal/logging"
	"codebreaker/internal/solver"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg      *config.Config
	alphabet solver.Alphabet

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codebreaker",
	Short: "codebreaker - adaptive secret-code discovery",
	Long: `codebreaker discovers a hidden fixed-alphabet string by adaptively
querying an oracle that reports, for each guess, the number of positions
matching the secret.

The solver learns the length and per-symbol frequencies through uniform
probes, lays out a frequency-ordered candidate, then confirms the secret
one position at a time from single-position match-count deltas.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		alphabet, err = solver.ParseAlphabet(cfg.Alphabet)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "codebreaker.yaml", "Path to configuration file")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
