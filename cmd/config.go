package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/solitaire/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the solitaire config file",
	Long:  `Commands for creating and editing the config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

// configSetSeedCmd represents the config set-seed command
var configSetSeedCmd = &cobra.Command{
	Use:   "set-seed [seed]",
	Short: "Set the default seed (0 for a new deal every time)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %s", args[0])
		}

		if err := config.SetSeed(seed); err != nil {
			return fmt.Errorf("error setting seed: %w", err)
		}

		fmt.Printf("Default seed set to: %d\n", seed)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSeedCmd)
}
