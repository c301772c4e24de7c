package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Task is a scheduled node for GXLBuilder. Finish is Start+Weight.
type Task struct {
	ID        string
	Weight    int64
	Start     int64
	Processor int64
}

// Dep is an edge for GXLBuilder.
type Dep struct {
	From, To string
	Weight   int64
}

// GXLBuilder assembles a GXL document for tests.
type GXLBuilder struct {
	total    *int64
	tasks    []Task
	deps     []Dep
	rawNodes []string
}

// NewGXL starts an empty document.
func NewGXL() *GXLBuilder {
	return &GXLBuilder{}
}

// Total sets the graph-level "Total schedule length".
func (b *GXLBuilder) Total(n int64) *GXLBuilder {
	b.total = &n
	return b
}

// Task appends scheduled nodes.
func (b *GXLBuilder) Task(tasks ...Task) *GXLBuilder {
	b.tasks = append(b.tasks, tasks...)
	return b
}

// Dep appends edges.
func (b *GXLBuilder) Dep(deps ...Dep) *GXLBuilder {
	b.deps = append(b.deps, deps...)
	return b
}

// RawNode appends a verbatim <node> element, for malformed input.
func (b *GXLBuilder) RawNode(xml string) *GXLBuilder {
	b.rawNodes = append(b.rawNodes, xml)
	return b
}

// String renders the document.
func (b *GXLBuilder) String() string {
	var s strings.Builder
	s.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<gxl>\n<graph id=\"embedded\" edgemode=\"directed\">\n")
	if b.total != nil {
		fmt.Fprintf(&s, "<attr name=\"Total schedule length\"><int>%d</int></attr>\n", *b.total)
	}
	for _, t := range b.tasks {
		fmt.Fprintf(&s, "<node id=%q>", t.ID)
		writeInt(&s, "Start time", t.Start)
		writeInt(&s, "Weight", t.Weight)
		writeInt(&s, "Finish time", t.Start+t.Weight)
		writeInt(&s, "Processor", t.Processor)
		s.WriteString("</node>\n")
	}
	for _, raw := range b.rawNodes {
		s.WriteString(raw)
		s.WriteString("\n")
	}
	for _, d := range b.deps {
		fmt.Fprintf(&s, "<edge from=%q to=%q>", d.From, d.To)
		writeInt(&s, "Weight", d.Weight)
		s.WriteString("</edge>\n")
	}
	s.WriteString("</graph>\n</gxl>\n")
	return s.String()
}

// WriteFile writes the document to dir/name, creating dir, and returns the path.
func (b *GXLBuilder) WriteFile(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func writeInt(s *strings.Builder, name string, v int64) {
	fmt.Fprintf(s, "<attr name=%q><int>%d</int></attr>", name, v)
}

// G1 is the two-node example graph: A(5) -> B(3) on one processor,
// makespan 8.
func G1() *GXLBuilder {
	return NewGXL().Total(8).
		Task(Task{ID: "A", Weight: 5, Start: 0}, Task{ID: "B", Weight: 3, Start: 5}).
		Dep(Dep{From: "A", To: "B", Weight: 2})
}
