package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gxlfixture/internal/ctxlog"
	"github.com/specialistvlad/gxlfixture/internal/dot"
	"github.com/specialistvlad/gxlfixture/internal/fsutil"
	"github.com/specialistvlad/gxlfixture/internal/taskgraph"
)

// Failure records a file that could not be exported.
type Failure struct {
	Path string
	Err  error
}

// Report summarises an export run.
type Report struct {
	Entries  []Entry
	Failures []Failure
	// Untested lists graphs exported without a generated test because the
	// document carries no total schedule length.
	Untested []string
	// TestCases is the number of tests written to the test file.
	TestCases int
}

// Failed reports whether any file failed to export.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Exporter converts a directory of GXL files into DOT fixtures and test
// scaffolding.
type Exporter struct {
	opts Options
}

// New creates an Exporter for the given options.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Run visits every GXL file under the input directory. Per-file errors are
// collected in the Report; the returned error is reserved for problems that
// stop the whole run, such as an unreadable input directory or a failure to
// write the generated test file.
func (e *Exporter) Run(ctx context.Context) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	if err := e.opts.validate(); err != nil {
		return nil, err
	}

	files, err := fsutil.FindFilesByExtension(e.opts.InputDir, taskgraph.Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}
	logger.Info("Found GXL files.", "count", len(files), "dir", e.opts.InputDir)

	report := &Report{}
	var cases []TestCase
	exportedFrom := make(map[string]string, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry, tc, err := e.exportFile(ctx, file, exportedFrom)
		if err != nil {
			logger.Error("Failed to export graph.", "path", file, "error", err)
			report.Failures = append(report.Failures, Failure{Path: file, Err: err})
			continue
		}
		report.Entries = append(report.Entries, entry)
		if tc == nil {
			logger.Warn("Graph has no total schedule length, no test will be generated.", "graph", entry.Name)
			report.Untested = append(report.Untested, entry.Name)
			continue
		}
		cases = append(cases, *tc)
	}

	if e.opts.TestFile != "" {
		src, err := RenderTests(e.opts.TestPackage, cases)
		if err != nil {
			return report, err
		}
		if err := fsutil.WriteFile(e.opts.TestFile, src); err != nil {
			return report, err
		}
		report.TestCases = len(cases)
		logger.Info("Wrote generated tests.", "path", e.opts.TestFile, "tests", len(cases))
	}

	if e.opts.ManifestPath != "" {
		if err := WriteManifest(e.opts.ManifestPath, report.Entries); err != nil {
			return report, err
		}
		logger.Info("Wrote export manifest.", "path", e.opts.ManifestPath)
	}

	logger.Info("Export finished.", "exported", len(report.Entries), "failed", len(report.Failures))
	return report, nil
}

// exportFile handles one GXL file. The returned TestCase is nil when the
// graph records no makespan.
func (e *Exporter) exportFile(ctx context.Context, file string, exportedFrom map[string]string) (Entry, *TestCase, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := taskgraph.Load(file)
	if err != nil {
		return Entry{}, nil, err
	}
	if prev, dup := exportedFrom[g.Name]; dup {
		return Entry{}, nil, fmt.Errorf("graph name %q already exported from %s", g.Name, prev)
	}

	fixtureName := g.Name + e.opts.extension()
	fixturePath := filepath.Join(e.opts.FixtureDir, fixtureName)
	logger.Debug("Writing input fixture.", "graph", g.Name, "path", fixturePath)
	if err := fsutil.WriteFile(fixturePath, []byte(dot.Input(g))); err != nil {
		return Entry{}, nil, err
	}
	exportedFrom[g.Name] = file

	entry := Entry{
		Name:              g.Name,
		Source:            file,
		Fixture:           fixturePath,
		Nodes:             len(g.Nodes),
		Edges:             len(g.Edges),
		ProcessorCount:    g.ProcessorCount,
		ProcessorEndTimes: g.ProcessorEndTimes(ctx),
	}
	total, hasTotal := g.TotalScheduleLength()
	if hasTotal {
		entry.TotalScheduleLength = &total
	}

	if e.opts.Validate {
		for _, v := range g.CheckSchedule() {
			logger.Warn("Recorded schedule is inconsistent.", "graph", g.Name, "violation", v.String())
			entry.Violations = append(entry.Violations, v.String())
		}
	}

	if !hasTotal {
		return entry, nil, nil
	}
	return entry, &TestCase{
		Name:                g.Name,
		FixturePath:         fixtureRef(e.opts.FixturePrefix, fixtureName),
		ProcessorCount:      g.ProcessorCount,
		TotalScheduleLength: total,
		ProcessorEndTimes:   entry.ProcessorEndTimes,
		Expected:            dot.Scheduled(g),
	}, nil
}

// fixtureRef joins prefix and name with a forward slash, leaving the prefix
// untouched so "./graphs/" stays relative in generated code.
func fixtureRef(prefix, name string) string {
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		return prefix + name
	}
	return prefix + "/" + name
}
