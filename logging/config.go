package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk logging configuration. The two tables map logger
// names to severity strings: [levels] tunes console verbosity per logger,
// [silence] sets noise policy floors for third-party streams.
type Config struct {
	Level   string            `toml:"level"`
	Color   string            `toml:"color"`
	Dir     string            `toml:"dir"`
	Levels  map[string]string `toml:"levels"`
	Silence map[string]string `toml:"silence"`
}

// DefaultConfig returns the settings used when no config file is given:
// INFO on the console, color always on, files under DefaultDir.
func DefaultConfig() *Config {
	return &Config{
		Level: "INFO",
		Color: "always",
		Dir:   DefaultDir,
	}
}

// LoadConfig reads a TOML configuration file. Missing keys keep their
// DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("logging: no config file found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("logging: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path in TOML form, creating the parent
// directory if it doesn't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("logging: failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("logging: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("logging: failed to write %s: %w", path, err)
	}

	return nil
}

// Options translates the top-level settings into registry construction
// options.
func (c *Config) Options() []Option {
	opts := []Option{WithColorMode(ParseColorMode(c.Color))}
	if c.Dir != "" {
		opts = append(opts, WithDir(c.Dir))
	}
	return opts
}

// Apply installs the per-logger tables on an existing registry: [levels]
// becomes console verbosity overrides, [silence] becomes suppression
// floors. Severity strings follow ParseSeverity rules.
func (c *Config) Apply(r *Registry) error {
	if len(c.Levels) > 0 {
		if err := r.SetModuleLevels(c.Levels); err != nil {
			return err
		}
	}
	if len(c.Silence) > 0 {
		floors := make(map[string]Severity, len(c.Silence))
		for name, level := range c.Silence {
			floors[name] = ParseSeverity(level)
		}
		if err := r.ApplyNoisePolicy(floors); err != nil {
			return err
		}
	}
	return nil
}
