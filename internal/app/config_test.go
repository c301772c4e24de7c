package app

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gxlfixture/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, filepath.Join("graphs", "optimal"), cfg.FixtureDir)
	assert.Equal(t, ".dot", cfg.FixtureExtension)
	assert.Equal(t, "./graphs/optimal", cfg.FixturePrefix)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	abs := DefaultConfig()
	abs.FixtureDir = filepath.Join(t.TempDir(), "out")
	cfg, err = NewConfig(abs)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(abs.FixtureDir), cfg.FixturePrefix, "absolute fixture dirs are used as is")

	explicit := DefaultConfig()
	explicit.FixturePrefix = "../fixtures"
	cfg, err = NewConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, "../fixtures", cfg.FixturePrefix)
}

func TestNewConfig_Rejects(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty input", func(c *Config) { c.InputDir = "" }, "InputDir"},
		{"empty fixtures", func(c *Config) { c.FixtureDir = "" }, "FixtureDir"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad extension", func(c *Config) { c.FixtureExtension = "dot" }, "invalid fixture extension"},
		{"bad test file", func(c *Config) { c.TestFile = "gen.go" }, "must end in _test.go"},
		{"bad package", func(c *Config) { c.TestFile = "gen_test.go"; c.TestPackage = "1st" }, "invalid test package"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := NewConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestNewConfig_NormalisesCase(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.LogFormat = "JSON"
	cfg.LogLevel = "Debug"

	got, err := NewConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestApplyFile(t *testing.T) {
	t.Parallel()
	validate := true
	cfg := DefaultConfig()
	cfg.ApplyFile(&config.File{
		InputDir: "corpus",
		Validate: &validate,
		Output: &config.Output{
			FixtureDir: "fixtures",
			TestFile:   "gen_test.go",
		},
		Logging: &config.Logging{Level: "warn"},
	})

	assert.Equal(t, "corpus", cfg.InputDir)
	assert.True(t, cfg.Validate)
	assert.Equal(t, "fixtures", cfg.FixtureDir)
	assert.Equal(t, "gen_test.go", cfg.TestFile)
	assert.Equal(t, "optimal", cfg.TestPackage, "unset values keep their defaults")
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	before := cfg
	cfg.ApplyFile(nil)
	assert.Equal(t, before, cfg)
}

func TestExportOptions(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.ManifestPath = "m.yaml"
	cfg.Validate = true
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	opts := c.ExportOptions()
	assert.Equal(t, c.InputDir, opts.InputDir)
	assert.Equal(t, c.FixturePrefix, opts.FixturePrefix)
	assert.Equal(t, "m.yaml", opts.ManifestPath)
	assert.True(t, opts.Validate)
}
