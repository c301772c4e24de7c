package export

import "errors"

// DefaultFixtureExtension is appended to a graph name to form its fixture
// file name.
const DefaultFixtureExtension = ".dot"

// Options controls a single export run.
type Options struct {
	// InputDir is searched recursively for .gxl files.
	InputDir string
	// FixtureDir receives one input fixture per graph.
	FixtureDir       string
	FixtureExtension string

	// TestFile, when set, is the Go test source to generate.
	TestFile    string
	TestPackage string
	// FixturePrefix is prepended to fixture file names inside generated tests,
	// i.e. the fixture directory as seen from the test package.
	FixturePrefix string

	// ManifestPath, when set, is where the YAML manifest is written.
	ManifestPath string

	// Validate runs the schedule consistency checks on every graph.
	Validate bool
}

func (o Options) validate() error {
	if o.InputDir == "" {
		return errors.New("input directory must be set")
	}
	if o.FixtureDir == "" {
		return errors.New("fixture directory must be set")
	}
	if o.TestFile != "" && o.TestPackage == "" {
		return errors.New("test package must be set when a test file is generated")
	}
	return nil
}

func (o Options) extension() string {
	if o.FixtureExtension == "" {
		return DefaultFixtureExtension
	}
	return o.FixtureExtension
}
