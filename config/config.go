package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wxdeck/log"
)

const (
	ConfigFileName = "config.json"

	defaultCity       = "nyc"
	defaultUnits      = "F"
	defaultPxPerCell  = 8
	defaultRefreshSec = 300
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wxdeck"), nil
}

// Config represents the application configuration
type Config struct {
	// DefaultCity is the city shown on startup.
	DefaultCity string `json:"default_city"`
	// Units is the temperature unit, "F" or "C".
	Units string `json:"units"`
	// PxPerCell converts terminal columns to the viewport pixel width the
	// layout engine's breakpoints are declared in.
	PxPerCell int `json:"px_per_cell"`
	// RefreshSeconds is the data refresh interval.
	RefreshSeconds int `json:"refresh_seconds"`
	// LayoutOverrides is an optional path to a YAML file tweaking widget
	// priorities, hide flags, and min heights. Empty disables overrides.
	LayoutOverrides string `json:"layout_overrides"`
	// WatchOverrides reloads the overrides file on change when true.
	WatchOverrides bool `json:"watch_overrides"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultCity:    defaultCity,
		Units:          defaultUnits,
		PxPerCell:      defaultPxPerCell,
		RefreshSeconds: defaultRefreshSec,
		WatchOverrides: true,
	}
}

// ViewportPx converts a terminal width in columns to viewport pixels for
// breakpoint resolution.
func (c *Config) ViewportPx(termCols int) int {
	px := c.PxPerCell
	if px <= 0 {
		px = defaultPxPerCell
	}
	return termCols * px
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	fillConfigDefaults(&config)
	return &config
}

// fillConfigDefaults patches zero values left by older config files.
func fillConfigDefaults(c *Config) {
	if c.DefaultCity == "" {
		c.DefaultCity = defaultCity
	}
	if c.Units != "F" && c.Units != "C" {
		c.Units = defaultUnits
	}
	if c.PxPerCell <= 0 {
		c.PxPerCell = defaultPxPerCell
	}
	if c.RefreshSeconds <= 0 {
		c.RefreshSeconds = defaultRefreshSec
	}
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
