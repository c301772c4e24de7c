package app

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gxlfixture/internal/config"
	"github.com/specialistvlad/gxlfixture/internal/export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputDir         string // searched recursively for .gxl files
	FixtureDir       string
	FixtureExtension string
	TestFile         string // empty disables test generation
	TestPackage      string
	FixturePrefix    string // empty means "./" + FixtureDir
	ManifestPath     string // empty disables the manifest
	Validate         bool

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the settings used when neither a config file nor a
// flag says otherwise.
func DefaultConfig() Config {
	return Config{
		InputDir:         ".",
		FixtureDir:       filepath.Join("graphs", "optimal"),
		FixtureExtension: export.DefaultFixtureExtension,
		TestPackage:      "optimal",
		LogFormat:        "text",
		LogLevel:         "info",
	}
}

// ApplyFile overlays every value set in f onto c.
func (c *Config) ApplyFile(f *config.File) {
	if f == nil {
		return
	}
	setIfNotEmpty(&c.InputDir, f.InputDir)
	if f.Validate != nil {
		c.Validate = *f.Validate
	}
	if o := f.Output; o != nil {
		setIfNotEmpty(&c.FixtureDir, o.FixtureDir)
		setIfNotEmpty(&c.FixtureExtension, o.FixtureExtension)
		setIfNotEmpty(&c.TestFile, o.TestFile)
		setIfNotEmpty(&c.TestPackage, o.TestPackage)
		setIfNotEmpty(&c.FixturePrefix, o.FixturePrefix)
		setIfNotEmpty(&c.ManifestPath, o.Manifest)
	}
	if l := f.Logging; l != nil {
		setIfNotEmpty(&c.LogLevel, l.Level)
		setIfNotEmpty(&c.LogFormat, l.Format)
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// NewConfig validates cfg and returns a normalised copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputDir == "" {
		return nil, errors.New("InputDir is a required configuration field and cannot be empty")
	}
	if cfg.FixtureDir == "" {
		return nil, errors.New("FixtureDir is a required configuration field and cannot be empty")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.FixtureExtension == "" {
		cfg.FixtureExtension = export.DefaultFixtureExtension
	}
	if !strings.HasPrefix(cfg.FixtureExtension, ".") {
		return nil, fmt.Errorf("invalid fixture extension %q: must start with '.'", cfg.FixtureExtension)
	}
	if cfg.TestFile != "" {
		if !strings.HasSuffix(cfg.TestFile, "_test.go") {
			return nil, fmt.Errorf("invalid test file %q: must end in _test.go", cfg.TestFile)
		}
		if !token.IsIdentifier(cfg.TestPackage) {
			return nil, fmt.Errorf("invalid test package %q: must be a Go identifier", cfg.TestPackage)
		}
	}
	if cfg.FixturePrefix == "" {
		cfg.FixturePrefix = filepath.ToSlash(filepath.Clean(cfg.FixtureDir))
		if !filepath.IsAbs(cfg.FixtureDir) {
			cfg.FixturePrefix = "./" + cfg.FixturePrefix
		}
	}

	return &cfg, nil
}

// ExportOptions converts the configuration into export options.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		InputDir:         c.InputDir,
		FixtureDir:       c.FixtureDir,
		FixtureExtension: c.FixtureExtension,
		TestFile:         c.TestFile,
		TestPackage:      c.TestPackage,
		FixturePrefix:    c.FixturePrefix,
		ManifestPath:     c.ManifestPath,
		Validate:         c.Validate,
	}
}
