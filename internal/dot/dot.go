// Package dot renders task graphs as DOT text in the two forms the scheduler
// test suite consumes: the input fixture fed to a scheduler, and the
// canonical scheduled form a scheduler's output is compared against byte for
// byte.
package dot

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/gxlfixture/internal/taskgraph"
)

// Input renders the schedule-agnostic fixture: every node with its weight in
// document order, then every edge in document order.
func Input(g *taskgraph.Graph) string {
	var b strings.Builder
	writeHeader(&b, g.Name)

	nodes := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, inputNode(n))
	}
	edges := make([]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, edgeLine(e))
	}

	// Both blocks always end with a newline, even when empty, to stay byte
	// compatible with the fixtures already checked in.
	b.WriteString(strings.Join(nodes, "\n"))
	b.WriteByte('\n')
	b.WriteString(strings.Join(edges, "\n"))
	b.WriteByte('\n')

	b.WriteString("}")
	return b.String()
}

// Scheduled renders the canonical scheduled form. Nodes are grouped by
// processor in ascending order, ordered by start time within a group (ties
// by node id), and each node is followed directly by its outgoing edges in
// edge-list order. Processors are printed one-based.
func Scheduled(g *taskgraph.Graph) string {
	var b strings.Builder
	writeHeader(&b, g.Name)

	for _, group := range g.ByProcessor() {
		for _, n := range group {
			b.WriteString(scheduledNode(n))
			b.WriteByte('\n')
			for _, e := range g.OutgoingEdges(n.ID) {
				b.WriteString(edgeLine(e))
				b.WriteByte('\n')
			}
		}
	}

	b.WriteString("}")
	return b.String()
}

func writeHeader(b *strings.Builder, name string) {
	b.WriteString(`digraph "`)
	b.WriteString(name)
	b.WriteString("\" {\n")
}

func inputNode(n taskgraph.Node) string {
	return n.ID + " [Weight=" + strconv.FormatInt(n.Weight, 10) + "];"
}

func scheduledNode(n taskgraph.Node) string {
	return n.ID +
		" [Weight=" + strconv.FormatInt(n.Weight, 10) +
		",Start=" + strconv.FormatInt(n.Start, 10) +
		",Processor=" + strconv.FormatInt(n.Processor+1, 10) +
		"];"
}

func edgeLine(e taskgraph.Edge) string {
	return e.Source + " -> " + e.Target + " [Weight=" + strconv.FormatInt(e.Weight, 10) + "];"
}
