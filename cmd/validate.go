package cmd

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/pile"
	"github.com/arcanaland/solitaire/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deal invariants for a range of seeds",
	Long: `Validate deals one game per seed and checks the opening table: 52 unique
cards, column i holding i cards with only the top one face up, 24 face-down
cards in the stock and empty waste and foundations.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		first := resolveSeed(cmd, cfg)
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		failed := 0
		for _, seed := range seedRange(first, count) {
			t := pile.NewTable()
			if err := deck.Deal(deck.Build(deck.NewRand(seed)), t); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			results, err := validator.NewValidator(t).ValidateDeal()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			if results.Valid() {
				fmt.Printf("✅ Seed %d deals a valid table.\n", seed)
			} else {
				failed++
				fmt.Printf("❌ Seed %d has %d validation errors:\n", seed, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Printf("%d. %s\n", i+1, err)
				}
			}

			if len(results.Warnings) > 0 {
				fmt.Println("\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Printf("%d. %s\n", i+1, warn)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("validation failed for %d of %d seeds", failed, count)
		}
		return nil
	},
}

// seedRange returns count consecutive seeds from first, wrapping past the
// largest uint64
func seedRange(first uint64, count int) []uint64 {
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = first + uint64(i)
	}
	return seeds
}

func init() {
	validateCmd.Flags().Uint64P("seed", "s", 0, "First seed to check (default: config seed, else the clock)")
	validateCmd.Flags().IntP("count", "n", 1, "Number of consecutive seeds to check")
}
