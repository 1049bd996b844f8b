package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display  DisplayConfig   `json:"display"`
	Packages []PackageConfig `json:"packages"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Mode         string `json:"mode"`          // "plain" or "tui"
	DistanceUnit string `json:"distance_unit"` // viewer only, messages are always km
}

// PackageConfig is one raw sensor package: a workout tag and its positional values
type PackageConfig struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

const (
	ModePlain = "plain"
	ModeTUI   = "tui"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultPackages returns the demonstration sensor packages
func DefaultPackages() []PackageConfig {
	return []PackageConfig{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Mode:         ModePlain,
			DistanceUnit: "km",
		},
		Packages: DefaultPackages(),
	}
}

// Load reads the configuration from ~/.ftracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Mode == "" {
		cfg.Display.Mode = defaults.Display.Mode
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Packages == nil {
		cfg.Packages = defaults.Packages
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.ftracker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks display settings and that there is something to process.
// Sensor values are checked later, when each package is read.
func (c *Config) Validate() error {
	if c.Display.Mode != "" && c.Display.Mode != ModePlain && c.Display.Mode != ModeTUI {
		return fmt.Errorf("display.mode must be %q or %q, got %q", ModePlain, ModeTUI, c.Display.Mode)
	}
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}

	if len(c.Packages) == 0 {
		return errors.New("packages must list at least one sensor package")
	}
	for i, p := range c.Packages {
		if p.Type == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ftracker"), nil
}
