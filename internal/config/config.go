// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Template     string `json:"template,omitempty"`      // Template name or path to a template file
	TemplatesDir string `json:"templates_dir,omitempty"` // Directory of extra templates registered at startup

	// Extraction
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	UseRemote      bool   `json:"use_remote,omitempty"`      // Extract with the LLM, falling back to heuristics
	ModelTier      string `json:"model_tier,omitempty"`      // lite, standard or advanced
	RemoteTimeout  int    `json:"remote_timeout,omitempty"`  // Seconds allowed for one model call
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload size cap for the server

	// Server
	Addr string `json:"addr,omitempty"` // Listen address, e.g. ":8080"

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Template:       "classic",
		ModelTier:      "standard",
		RemoteTimeout:  30,
		MaxUploadBytes: 10 << 20,
		Addr:           ":8080",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.RemoteTimeout < 0 {
		return fmt.Errorf("config error: 'remote_timeout' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'model_tier' must be lite, standard or advanced")
	}

	if c.TemplatesDir != "" {
		if info, err := os.Stat(c.TemplatesDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	// Numeric fields: use default if zero
	if result.RemoteTimeout == 0 {
		result.RemoteTimeout = defaults.RemoteTimeout
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
