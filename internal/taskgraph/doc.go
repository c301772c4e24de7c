// Package taskgraph holds the in-memory model of a scheduled task graph read
// from a GXL file: nodes with their computation weight and assigned slot,
// edges with their communication weight, and the values derived from them.
//
// A Graph is built once by New or Load and is never mutated afterwards. All
// construction errors are fatal for the document; no partially built Graph
// is returned. Data-quality problems found later (ProcessorEndTimes,
// CheckSchedule) are reported as warnings or violations instead of errors so
// that a batch export can keep going.
package taskgraph
