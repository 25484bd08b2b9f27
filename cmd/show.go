package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/solitaire/internal/klondike"
	"github.com/arcanaland/solitaire/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the opening table of a deal",
	Long: `Show deals a game and prints the opening table with ANSI colours.
Colours and card sizes come from the [theme] and [layout] sections of
the config file.

Examples:
  solitaire show --seed 42
  solitaire show --seed 42 --draw 3`,
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

		g := klondike.New(
			klondike.WithListener(render.Narrator{W: os.Stdout}),
			klondike.WithLogger(newLogger(cfg.Verbose)),
		)
		if err := g.NewGame(resolveSeed(cmd, cfg)); err != nil {
			return err
		}

		draws, _ := cmd.Flags().GetInt("draw")
		for i := 0; i < draws; i++ {
			g.OnStockClick()
		}

		fmt.Println()
		if err := r.Table(os.Stdout, g.Table()); err != nil {
			return err
		}
		r.Status(os.Stdout, g.Table(), g.Seed(), g.Won())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Uint64P("seed", "s", 0, "Seed for the deal (default: config seed, else the clock)")
	showCmd.Flags().IntP("draw", "d", 0, "Click the stock this many times before printing")
}
