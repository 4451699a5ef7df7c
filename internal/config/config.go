// Package config loads mdtoc CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdtoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength  = 100 // TOC title
	MaxSymbolLength = 10  // Permalink symbol (a glyph or two)
	MaxPathLength   = 255 // Output directory
	MaxStyleLength  = 100 // Style name or path
)

// Config holds all configuration for TOC generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	TOC    TOCConfig    `yaml:"toc"`
	Page   PageConfig   `yaml:"page"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Title           string `yaml:"title"`           // Empty = no title above TOC
	MinDepth        int    `yaml:"minDepth"`        // 1-6, default 1
	MaxDepth        int    `yaml:"maxDepth"`        // 1-6, default 6
	PermalinkSymbol string `yaml:"permalinkSymbol"` // Empty = library default
}

// PageConfig defines full-page assembly options.
type PageConfig struct {
	Enabled bool   `yaml:"enabled"` // Assemble a full HTML page instead of a bare TOC
	Style   string `yaml:"style"`   // Embedded style name or CSS file path (empty = no CSS)
}

// DefaultConfig returns a neutral configuration: bare TOC output, all
// heading levels, no styling.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{DefaultDir: ""},
		TOC:    TOCConfig{MinDepth: 1, MaxDepth: 6},
		Page:   PageConfig{Enabled: false},
	}
}

// Validate checks field lengths and depth bounds.
// Called automatically by Load, but available for consumers who construct
// Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"toc.title", c.TOC.Title, MaxTitleLength},
		{"toc.permalinkSymbol", c.TOC.PermalinkSymbol, MaxSymbolLength},
		{"page.style", c.Page.Style, MaxStyleLength},
	}

	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}

	return nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config
// directory under mdtoc/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdtoc", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
