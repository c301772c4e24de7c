// Package export drives a batch conversion of a directory of GXL files.
//
// For every file it builds a taskgraph.Graph, writes the DOT input fixture,
// and collects what the generated tests need: processor count, recorded
// makespan, per-processor end times and the canonical scheduled rendering.
// Once every file has been visited it can render a Go test source pairing
// each fixture with its expected result, and a YAML manifest describing the
// whole export.
//
// A file that fails to parse is logged and recorded in the Report; the run
// carries on with the remaining files.
package export
