package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gxlfixture/internal/ctxlog"
)

// File is the decoded configuration file.
type File struct {
	InputDir string   `hcl:"input_dir,optional"`
	Validate *bool    `hcl:"validate,optional"`
	Output   *Output  `hcl:"output,block"`
	Logging  *Logging `hcl:"logging,block"`
	Remain   hcl.Body `hcl:",remain"`
}

// Output configures where fixtures, generated tests and the manifest go.
type Output struct {
	FixtureDir       string `hcl:"fixture_dir,optional"`
	FixtureExtension string `hcl:"fixture_extension,optional"`
	TestFile         string `hcl:"test_file,optional"`
	TestPackage      string `hcl:"test_package,optional"`
	FixturePrefix    string `hcl:"fixture_prefix,optional"`
	Manifest         string `hcl:"manifest,optional"`
}

// Logging configures the run's logger.
type Logging struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load reads and decodes the HCL file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(ctx, hclFile, path)
}

// Parse decodes configuration from src. filename is used for diagnostics
// and to resolve config_dir.
func Parse(ctx context.Context, src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(ctx, hclFile, filename)
}

func decode(ctx context.Context, hclFile *hcl.File, filename string) (*File, error) {
	var f File
	diags := gohcl.DecodeBody(hclFile.Body, evalContext(filepath.Dir(filename)), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	if f.Remain != nil {
		if attrs, _ := f.Remain.JustAttributes(); len(attrs) > 0 {
			for name := range attrs {
				ctxlog.FromContext(ctx).Warn("Ignoring unknown configuration attribute.", "name", name, "file", filename)
			}
		}
	}

	ctxlog.FromContext(ctx).Debug("Configuration file decoded.", "file", filename)
	return &f, nil
}
