package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slider/catalog"
	"slider/log"
	"slider/ui"
	"slider/ui/layout"
)

const (
	ConfigFileName = "config.json"

	// ConfigDirEnvVar overrides the configuration directory.
	ConfigDirEnvVar = "SLIDER_CONFIG_DIR"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".slider"), nil
}

// Config represents the application configuration
type Config struct {
	// CellWidth is the assumed width of one terminal column in logical pixels.
	CellWidth int `json:"cell_width"`
	// Manifest is a YAML file listing the images to show. Takes precedence over ImageDir.
	Manifest string `json:"manifest,omitempty"`
	// ImageDir is scanned for images when no manifest is set.
	ImageDir string `json:"image_dir,omitempty"`
	// Title is shown in the nav bar.
	Title string `json:"title"`
	// Description is the paragraph under the heading.
	Description string `json:"description"`
	// Mouse enables hover and click selection.
	Mouse bool `json:"mouse"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CellWidth:   layout.DefaultCellWidth,
		Title:       ui.DefaultTitle,
		Description: ui.DefaultDescription,
		Mouse:       true,
	}
}

// Catalog builds the image catalog the config points at: the manifest if
// set, else the image directory, else the builtin images.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	switch {
	case c.Manifest != "":
		return catalog.LoadManifest(c.Manifest)
	case c.ImageDir != "":
		return catalog.ScanDir(c.ImageDir)
	default:
		return catalog.Default(), nil
	}
}

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	if c.CellWidth <= 0 {
		log.WarningLog.Printf("invalid cell_width %d, using %d", c.CellWidth, layout.DefaultCellWidth)
		c.CellWidth = layout.DefaultCellWidth
	}
	if c.Title == "" {
		c.Title = ui.DefaultTitle
	}
	if c.Description == "" {
		c.Description = ui.DefaultDescription
	}
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

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
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

	config.Normalize()
	return config
}

// GetConfigPath returns the location of the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

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
