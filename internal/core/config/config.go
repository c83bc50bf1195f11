// Package config handles configuration loading and validation for todos.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/todos/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	// UsersFile and TodosFile are the flat JSON documents backing the user
	// and todo stores. They default to files inside DataDir.
	UsersFile string `yaml:"users_file"`
	TodosFile string `yaml:"todos_file"`

	// Theme selects the output color palette.
	Theme string `yaml:"theme"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values derived from the data directory.
func (c *Config) applyDefaults() {
	if c.UsersFile == "" {
		c.UsersFile = filepath.Join(c.DataDir, "users.json")
	}
	if c.TodosFile == "" {
		c.TodosFile = filepath.Join(c.DataDir, "todos.json")
	}
	if c.Theme == "" {
		c.Theme = styles.DefaultTheme
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, required),
		c.validateDocumentPaths(),
		criterio.Run("theme", c.Theme, themeExists),
	)
}

func (c *Config) validateDocumentPaths() error {
	if c.UsersFile == c.TodosFile {
		return criterio.NewFieldErrors("todos_file", fmt.Errorf("must be a distinct document from users_file"))
	}
	return nil
}

func required(v string) error {
	if v == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: valid themes are %v", name, styles.ThemeNames())
	}
	return nil
}
