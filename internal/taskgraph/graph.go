package taskgraph

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gxlfixture/internal/gxl"
)

// Extension is the file extension of GXL exchange files.
const Extension = ".gxl"

// MaxProcessors bounds the processor indices a document may use. Per-processor
// results are sized by the highest index, so an absurd index would otherwise
// allocate without limit.
const MaxProcessors = 1 << 16

// Attribute names read from the exchange format.
const (
	AttrStartTime           = "Start time"
	AttrWeight              = "Weight"
	AttrFinishTime          = "Finish time"
	AttrProcessor           = "Processor"
	AttrTotalScheduleLength = "Total schedule length"
)

// Node is a task with its scheduling metadata. Processor is zero-based.
type Node struct {
	ID        string
	Weight    int64
	Start     int64
	Finish    int64
	Processor int64
}

// Edge is a dependency from Source to Target with a communication cost.
type Edge struct {
	Source string
	Target string
	Weight int64
}

// Graph is a fully parsed task graph. Nodes and Edges keep document order.
type Graph struct {
	// Name comes from the source file name, not from the id embedded in the
	// document, so it is unique across a fixture directory.
	Name  string
	Nodes []Node
	Edges []Edge

	// ProcessorCount is one more than the highest processor index used.
	ProcessorCount int

	totalScheduleLength    int64
	hasTotalScheduleLength bool
}

// DuplicateNodeError reports two <node> elements sharing an id.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q", e.ID)
}

// Load reads the GXL file at path and builds its Graph.
func Load(path string) (*Graph, error) {
	doc, err := gxl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := doc.FirstGraph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := New(path, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// New builds a Graph from a decoded <graph> element. path is the file the
// element was read from and only determines the graph's name.
func New(path string, src *gxl.Graph) (*Graph, error) {
	g := &Graph{
		Name:  NameFromPath(path),
		Nodes: make([]Node, 0, len(src.Nodes)),
		Edges: make([]Edge, 0, len(src.Edges)),
	}

	attrs, err := gxl.ParseAttributes(src)
	if err != nil {
		return nil, fmt.Errorf("graph attributes: %w", err)
	}
	if _, ok := attrs.Lookup(AttrTotalScheduleLength); ok {
		total, err := attrs.Int(AttrTotalScheduleLength)
		if err != nil {
			return nil, fmt.Errorf("graph attributes: %w", err)
		}
		g.totalScheduleLength = total
		g.hasTotalScheduleLength = true
	}

	seen := make(map[string]struct{}, len(src.Nodes))
	maxProcessor := int64(-1)
	for i := range src.Nodes {
		n, err := newNode(&src.Nodes[i])
		if err != nil {
			return nil, err
		}
		if _, dup := seen[n.ID]; dup {
			return nil, &DuplicateNodeError{ID: n.ID}
		}
		seen[n.ID] = struct{}{}
		if n.Processor > maxProcessor {
			maxProcessor = n.Processor
		}
		g.Nodes = append(g.Nodes, n)
	}
	g.ProcessorCount = int(maxProcessor + 1)

	for i := range src.Edges {
		e, err := newEdge(&src.Edges[i])
		if err != nil {
			return nil, err
		}
		g.Edges = append(g.Edges, e)
	}

	return g, nil
}

func newNode(src *gxl.Node) (Node, error) {
	attrs, err := gxl.ParseAttributes(src)
	if err != nil {
		return Node{}, fmt.Errorf("node %q: %w", src.ID, err)
	}

	n := Node{ID: src.ID}
	fields := []struct {
		name string
		dst  *int64
	}{
		{AttrStartTime, &n.Start},
		{AttrWeight, &n.Weight},
		{AttrFinishTime, &n.Finish},
		{AttrProcessor, &n.Processor},
	}
	for _, f := range fields {
		v, err := attrs.Int(f.name)
		if err != nil {
			return Node{}, fmt.Errorf("node %q: %w", src.ID, err)
		}
		*f.dst = v
	}
	if n.Processor < 0 || n.Processor >= MaxProcessors {
		return Node{}, fmt.Errorf("node %q: %w", src.ID, &gxl.MalformedAttributeError{
			Name:   AttrProcessor,
			Reason: fmt.Sprintf("processor index %d outside [0, %d)", n.Processor, MaxProcessors),
		})
	}
	return n, nil
}

func newEdge(src *gxl.Edge) (Edge, error) {
	attrs, err := gxl.ParseAttributes(src)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %s -> %s: %w", src.From, src.To, err)
	}
	w, err := attrs.Int(AttrWeight)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %s -> %s: %w", src.From, src.To, err)
	}
	return Edge{Source: src.From, Target: src.To, Weight: w}, nil
}

// NameFromPath derives a graph name from its file path: the base name with
// the .gxl extension removed.
func NameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Extension)
}

// TotalScheduleLength returns the makespan recorded in the document, if any.
func (g *Graph) TotalScheduleLength() (int64, bool) {
	return g.totalScheduleLength, g.hasTotalScheduleLength
}

// OutgoingEdges returns the edges whose source is id, in edge-list order.
func (g *Graph) OutgoingEdges(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Makespan is the latest finish time of any node, or 0 for an empty graph.
func (g *Graph) Makespan() int64 {
	var m int64
	for _, n := range g.Nodes {
		if n.Finish > m {
			m = n.Finish
		}
	}
	return m
}
