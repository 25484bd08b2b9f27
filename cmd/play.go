package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/solitaire/internal/render"
	"github.com/arcanaland/solitaire/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Klondike",
	Long: `Play deals a game and reads moves from standard input.

Type "help" at the prompt for the list of commands.

Examples:
  solitaire play
  solitaire play --seed 1234`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		r, err := render.New(cfg)
		if err != nil {
			return err
		}

		s := session.New(r, os.Stdout, newLogger(cfg.Verbose))
		s.Debug, _ = cmd.Flags().GetBool("debug")

		if err := s.Start(resolveSeed(cmd, cfg)); err != nil {
			return err
		}
		return s.Run(os.Stdin)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64P("seed", "s", 0, "Seed for the deal (default: config seed, else the clock)")
	playCmd.Flags().Bool("debug", false, "Enable the \"win\" command")
}
