package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/pile"
	"github.com/arcanaland/solitaire/internal/render"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect seeded decks",
	Long:  `Commands for inspecting the shuffled deck and deal produced by a seed.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the shuffled deck of a seed, top of the deal first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		seed := resolveSeed(cmd, cfg)

		cards := deck.Build(deck.NewRand(seed))
		fmt.Printf("Deck for seed %d:\n", seed)
		for i, id := range cards {
			fmt.Printf("%2d. %-4s %s\n", i+1, id.Card().Label(), id)
		}
		return nil
	},
}

// deckDealCmd represents the deck deal command
var deckDealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print every pile of a seeded deal, bottom card first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		seed := resolveSeed(cmd, cfg)

		t := pile.NewTable()
		if err := deck.Deal(deck.Build(deck.NewRand(seed)), t); err != nil {
			return err
		}

		fmt.Printf("Deal for seed %d:\n", seed)
		for _, p := range t.All() {
			var labels []string
			for _, id := range p.Cards() {
				label := id.Card().Label()
				if !t.Arena.FaceUp(id) {
					label = strings.ToLower(label)
				}
				labels = append(labels, label)
			}
			fmt.Printf("%s %s\n", colorize.CyanString("%-3s", render.Name(p.Ref())), strings.Join(labels, " "))
		}
		fmt.Println("(lower case cards are face down)")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDealCmd)

	deckCmd.PersistentFlags().Uint64P("seed", "s", 0, "Seed for the shuffle (default: config seed, else the clock)")
}
