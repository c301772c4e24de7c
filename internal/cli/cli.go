package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gxlfixture/internal/app"
	"github.com/specialistvlad/gxlfixture/internal/config"
	"github.com/specialistvlad/gxlfixture/internal/ctxlog"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type flagValues struct {
	configPath    string
	fixtureDir    string
	extension     string
	testFile      string
	testPackage   string
	fixturePrefix string
	manifest      string
	validate      bool
	logLevel      string
	logFormat     string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	cmd := newRootCommand(func(cfg *app.Config) { parsed = cfg })
	// cobra reads os.Args when handed a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		slog.Debug("No run requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCommand(onParsed func(*app.Config)) *cobra.Command {
	defaults := app.DefaultConfig()
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "gxlfixture [INPUT_DIR]",
		Short: "Convert GXL task graphs into DOT scheduler fixtures and Go tests.",
		Long: `gxlfixture reads every .gxl file under INPUT_DIR (default ".") and writes:
  - one DOT input fixture per graph into the fixture directory,
  - optionally a Go test file pairing each fixture with its reference schedule,
  - optionally a YAML manifest describing the export.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()

			if fv.configPath != "" {
				// The file's own logging block is not known yet, so its
				// diagnostics use the level and format given on the command line.
				logger := app.NewLogger(strings.ToLower(fv.logLevel), strings.ToLower(fv.logFormat), cmd.OutOrStdout())
				f, err := config.Load(ctxlog.WithLogger(context.Background(), logger), fv.configPath)
				if err != nil {
					return err
				}
				cfg.ApplyFile(f)
			}

			// Flags given explicitly win over the config file.
			flags := cmd.Flags()
			if len(args) == 1 {
				cfg.InputDir = args[0]
			}
			if flags.Changed("fixtures") {
				cfg.FixtureDir = fv.fixtureDir
			}
			if flags.Changed("ext") {
				cfg.FixtureExtension = fv.extension
			}
			if flags.Changed("test-file") {
				cfg.TestFile = fv.testFile
			}
			if flags.Changed("test-package") {
				cfg.TestPackage = fv.testPackage
			}
			if flags.Changed("fixture-prefix") {
				cfg.FixturePrefix = fv.fixturePrefix
			}
			if flags.Changed("manifest") {
				cfg.ManifestPath = fv.manifest
			}
			if flags.Changed("validate") {
				cfg.Validate = fv.validate
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = fv.logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = fv.logFormat
			}

			validated, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			onParsed(validated)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&fv.configPath, "config", "c", "", "Path to an HCL configuration file.")
	flags.StringVarP(&fv.fixtureDir, "fixtures", "o", defaults.FixtureDir, "Directory that receives the DOT input fixtures.")
	flags.StringVar(&fv.extension, "ext", defaults.FixtureExtension, "File extension of the written fixtures.")
	flags.StringVar(&fv.testFile, "test-file", "", "Go test file to generate (must end in _test.go). Empty disables generation.")
	flags.StringVar(&fv.testPackage, "test-package", defaults.TestPackage, "Package name of the generated test file.")
	flags.StringVar(&fv.fixturePrefix, "fixture-prefix", "", "Fixture directory as referenced from generated tests. Defaults to ./<fixtures>.")
	flags.StringVar(&fv.manifest, "manifest", "", "Path of the YAML export manifest. Empty disables it.")
	flags.BoolVar(&fv.validate, "validate", false, "Check every recorded schedule for consistency and warn about problems.")
	flags.StringVar(&fv.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&fv.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	return cmd
}
