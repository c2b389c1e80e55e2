// Package config loads the converter's YAML configuration. A config can be
// referenced by name (resolved against the current directory and the user
// config directory) or by explicit path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrBadExtension    = errors.New("output extension must start with a dot")
)

// MaxConfigSize limits config input to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Config holds all configuration for Markdown conversion.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Engine EngineConfig `yaml:"engine"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output file extension (default: ".html")
}

// EngineConfig mirrors the transformation engine's options.
type EngineConfig struct {
	HTMLOutput            bool `yaml:"htmlOutput"`            // "<hr>" instead of "<hr />"
	LinkEmails            bool `yaml:"linkEmails"`            // obfuscated mailto links
	StrictBoldItalic      bool `yaml:"strictBoldItalic"`      // word-boundary emphasis only
	AutoNewlines          bool `yaml:"autoNewlines"`          // every newline becomes <br>
	AutoHyperlink         bool `yaml:"autoHyperlink"`         // linkify bare URLs
	EncodeProblemURLChars bool `yaml:"encodeProblemURLChars"` // percent-encode risky URL chars
}

// DefaultConfig returns the standard Markdown behavior: emails are
// obfuscated, everything else off, XHTML output.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: "", Extension: ".html"},
		Engine: EngineConfig{LinkEmails: true},
	}
}

// Validate checks the few fields with structural constraints.
func (c *Config) Validate() error {
	if ext := c.Output.Extension; ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%w: %q", ErrBadExtension, ext)
	}
	return nil
}

// LoadConfig loads configuration from a name or explicit path. Values not
// present in the file keep their defaults; unknown fields are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
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
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath distinguishes explicit paths from bare config names.
func isFilePath(s string) bool {
	return strings.ContainsRune(s, os.PathSeparator) ||
		strings.HasSuffix(s, ".yaml") ||
		strings.HasSuffix(s, ".yml")
}

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
			userPath := filepath.Join(userConfigDir, "go-md2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
