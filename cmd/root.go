package cmd

import (
	"io"
	"log"
	"os"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/session"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire in your terminal",
	Long: `Solitaire is a Klondike solitaire game for the terminal.
Deals are reproducible: the same seed always produces the same table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output to stderr")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the config file and applies the --verbose flag on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger returns a debug logger that discards output unless verbose
func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "DEBUG: ", log.Ltime)
}

// resolveSeed picks the --seed flag, then the configured seed, then the clock
func resolveSeed(cmd *cobra.Command, cfg *config.Config) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return session.TimeSeed()
}
