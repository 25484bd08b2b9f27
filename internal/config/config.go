package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidTheme is returned when a theme colour is not a #rrggbb hex string
var ErrInvalidTheme = errors.New("invalid theme")

// ErrInvalidLayout is returned when a layout size is not positive
var ErrInvalidLayout = errors.New("invalid layout")

// MinCardWidth fits the widest corner label, "[10♥]"
const MinCardWidth = 5

// Config represents the application configuration
type Config struct {
	Seed    uint64 `toml:"seed"` // 0 picks a time-based seed
	Verbose bool   `toml:"verbose"`
	Theme   Theme  `toml:"theme"`
	Layout  Layout `toml:"layout"`
}

// Theme holds the hex colours used to draw cards
type Theme struct {
	Red   string `toml:"red"`
	Black string `toml:"black"`
	Back  string `toml:"back"`
}

// Layout holds the card and gap sizes of the terminal table, in character cells
type Layout struct {
	CardWidth  int `toml:"card_width"`
	CardHeight int `toml:"card_height"`
	GapX       int `toml:"gap_x"`
	SpacingY   int `toml:"spacing_y"`
}

// Palette is a parsed Theme
type Palette struct {
	Red   colorful.Color
	Black colorful.Color
	Back  colorful.Color
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Seed:    0,
		Verbose: false,
		Theme: Theme{
			Red:   "#e0474c",
			Black: "#f2f2f2",
			Back:  "#3b6fd1",
		},
		Layout: Layout{
			CardWidth:  5,
			CardHeight: 3,
			GapX:       2,
			SpacingY:   1,
		},
	}
}

// Palette parses the theme colours
func (t Theme) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Red, err = colorful.Hex(t.Red); err != nil {
		return Palette{}, fmt.Errorf("%w: red %q: %v", ErrInvalidTheme, t.Red, err)
	}
	if p.Black, err = colorful.Hex(t.Black); err != nil {
		return Palette{}, fmt.Errorf("%w: black %q: %v", ErrInvalidTheme, t.Black, err)
	}
	if p.Back, err = colorful.Hex(t.Back); err != nil {
		return Palette{}, fmt.Errorf("%w: back %q: %v", ErrInvalidTheme, t.Back, err)
	}
	return p, nil
}

// Validate checks the theme parses and the layout sizes are usable
func (c *Config) Validate() error {
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	l := c.Layout
	if l.CardWidth < MinCardWidth || l.CardHeight < 1 {
		return fmt.Errorf("%w: card must be at least %dx1 cells, got %dx%d", ErrInvalidLayout, MinCardWidth, l.CardWidth, l.CardHeight)
	}
	if l.GapX < 0 || l.SpacingY < 1 {
		return fmt.Errorf("%w: gap_x must be >= 0 and spacing_y >= 1", ErrInvalidLayout)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("error in config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetSeed stores the default seed in the config
func SetSeed(seed uint64) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Seed = seed
	return SaveConfig(config)
}
