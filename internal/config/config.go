// Package config loads the settings of the mlang command line tool from a
// TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable pointing at the configuration file
const EnvVar = "MLANG_CONFIG"

// Output formats of the parse command
const (
	FormatSexpr = "sexpr"
	FormatYAML  = "yaml"
)

// Color modes of the error reporter
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root of the configuration file
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
}

// REPLConfig holds the interactive prompt settings
type REPLConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
	HistoryFile        string `toml:"history_file"`
}

// OutputConfig holds the rendering settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the configuration file at path
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by MLANG_CONFIG, falling back to
// ./mlang.toml and then $HOME/.config/mlang/config.toml. The path that was
// used is returned, it is empty when no file exists and the defaults apply.
func LoadFromEnv() (*Config, string, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// DefaultPaths lists the locations searched when MLANG_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{"./mlang.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mlang", "config.toml"))
	}
	return paths
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatSexpr, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatSexpr, FormatYAML, c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Output.Color)
	}
	return nil
}

// HistoryFile returns the REPL history path with environment variables and a
// leading "~" expanded
func (c *Config) HistoryFile() string {
	path := os.ExpandEnv(c.REPL.HistoryFile)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.REPL.ContinuationPrompt == "" {
		c.REPL.ContinuationPrompt = ". "
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = "~/.mlang_history"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatSexpr
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}
