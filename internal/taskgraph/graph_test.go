package taskgraph

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gxlfixture/internal/gxl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intAttr(name string, v int64) string {
	return fmt.Sprintf(`<attr name=%q><int>%d</int></attr>`, name, v)
}

func nodeXML(id string, weight, start, proc int64) string {
	return fmt.Sprintf(`<node id=%q>%s%s%s%s</node>`, id,
		intAttr(AttrStartTime, start),
		intAttr(AttrWeight, weight),
		intAttr(AttrFinishTime, start+weight),
		intAttr(AttrProcessor, proc),
	)
}

func edgeXML(from, to string, weight int64) string {
	return fmt.Sprintf(`<edge from=%q to=%q>%s</edge>`, from, to, intAttr(AttrWeight, weight))
}

// buildGraph decodes a <graph> whose inner XML is body and builds it as if it
// had been read from path.
func buildGraph(t *testing.T, path string, body ...string) (*Graph, error) {
	t.Helper()
	doc, err := gxl.Decode(strings.NewReader(`<gxl><graph id="embedded">` + strings.Join(body, "") + `</graph></gxl>`))
	require.NoError(t, err)
	src, err := doc.FirstGraph()
	require.NoError(t, err)
	return New(path, src)
}

func TestLoad_Fixture(t *testing.T) {
	t.Parallel()

	g, err := Load(filepath.Join("testdata", "Nodes_7_OutTree.gxl"))
	require.NoError(t, err)

	assert.Equal(t, "Nodes_7_OutTree", g.Name, "name must come from the file, not the embedded id")
	assert.Equal(t, 2, g.ProcessorCount)
	require.Len(t, g.Nodes, 7)
	require.Len(t, g.Edges, 6)

	total, ok := g.TotalScheduleLength()
	require.True(t, ok)
	assert.Equal(t, int64(34), total)

	want := Node{ID: "3", Weight: 6, Start: 16, Finish: 22, Processor: 1}
	if diff := cmp.Diff(want, g.Nodes[3]); diff != "" {
		t.Errorf("node 3 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Edge{Source: "0", Target: "1", Weight: 15}, g.Edges[0])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	g, err := Load(filepath.Join(t.TempDir(), "nope.gxl"))
	require.Error(t, err)
	assert.Nil(t, g)
}

func TestNew_DocumentOrderPreserved(t *testing.T) {
	t.Parallel()
	g, err := buildGraph(t, "order.gxl",
		nodeXML("C", 1, 0, 0),
		nodeXML("A", 1, 1, 0),
		nodeXML("B", 1, 2, 0),
		edgeXML("C", "A", 1),
		edgeXML("A", "B", 1),
	)
	require.NoError(t, err)

	var ids []string
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"C", "A", "B"}, ids)
	assert.Equal(t, "C", g.Edges[0].Source)
}

func TestNew_ProcessorCountUsesHighestIndex(t *testing.T) {
	t.Parallel()
	// Processors 0 and 3 are used; slots 1 and 2 are idle but still counted.
	g, err := buildGraph(t, "sparse.gxl",
		nodeXML("A", 2, 0, 0),
		nodeXML("B", 2, 0, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.ProcessorCount)
}

func TestNew_EmptyGraph(t *testing.T) {
	t.Parallel()
	g, err := buildGraph(t, "empty.gxl")
	require.NoError(t, err)
	assert.Equal(t, 0, g.ProcessorCount)
	assert.Empty(t, g.Nodes)
	_, ok := g.TotalScheduleLength()
	assert.False(t, ok)
}

func TestNew_MissingNodeAttribute(t *testing.T) {
	t.Parallel()
	g, err := buildGraph(t, "missing.gxl",
		`<node id="A">`+intAttr(AttrStartTime, 0)+intAttr(AttrWeight, 1)+intAttr(AttrProcessor, 0)+`</node>`,
	)
	require.Error(t, err)
	assert.Nil(t, g)

	var missing *gxl.MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, AttrFinishTime, missing.Name)
	assert.Contains(t, err.Error(), `node "A"`)
}

func TestNew_MissingEdgeWeight(t *testing.T) {
	t.Parallel()
	_, err := buildGraph(t, "edge.gxl",
		nodeXML("A", 1, 0, 0),
		nodeXML("B", 1, 1, 0),
		`<edge from="A" to="B"></edge>`,
	)
	var missing *gxl.MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, AttrWeight, missing.Name)
	assert.Contains(t, err.Error(), "edge A -> B")
}

func TestNew_MalformedAttributeYieldsNoGraph(t *testing.T) {
	t.Parallel()
	g, err := buildGraph(t, "bad.gxl",
		nodeXML("A", 1, 0, 0),
		`<node id="B"><attr name="Weight"><int>1</int><int>2</int></attr></node>`,
	)
	assert.Nil(t, g)

	var malformed *gxl.MalformedAttributeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Weight", malformed.Name)
}

func TestNew_StringWhereIntegerRequired(t *testing.T) {
	t.Parallel()
	_, err := buildGraph(t, "kind.gxl",
		`<node id="A"><attr name="Weight"><string>five</string></attr></node>`,
	)
	var kindErr *gxl.AttributeKindError
	require.ErrorAs(t, err, &kindErr)
}

func TestNew_ProcessorIndexOutOfRange(t *testing.T) {
	t.Parallel()
	for _, proc := range []int64{-1, MaxProcessors, 1 << 40, math.MaxInt64} {
		t.Run(strconv.FormatInt(proc, 10), func(t *testing.T) {
			g, err := buildGraph(t, "proc.gxl", nodeXML("A", 1, 0, 0), nodeXML("B", 1, 0, proc))
			assert.Nil(t, g)

			var malformed *gxl.MalformedAttributeError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, AttrProcessor, malformed.Name)
			assert.Contains(t, err.Error(), `node "B"`)
		})
	}

	g, err := buildGraph(t, "edge.gxl", nodeXML("A", 1, 0, MaxProcessors-1))
	require.NoError(t, err)
	assert.Equal(t, MaxProcessors, g.ProcessorCount)
}

func TestNew_DuplicateNodeID(t *testing.T) {
	t.Parallel()
	_, err := buildGraph(t, "dup.gxl",
		nodeXML("A", 1, 0, 0),
		nodeXML("A", 1, 1, 0),
	)
	var dup *DuplicateNodeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "A", dup.ID)
}

func TestNew_TotalScheduleLengthMustBeInteger(t *testing.T) {
	t.Parallel()
	_, err := buildGraph(t, "total.gxl",
		`<attr name="Total schedule length"><string>soon</string></attr>`,
	)
	var kindErr *gxl.AttributeKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Contains(t, err.Error(), "graph attributes")
}

func TestNameFromPath(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"graphs/Nodes_7_OutTree.gxl":   "Nodes_7_OutTree",
		"Nodes_10_Random.gxl":          "Nodes_10_Random",
		"/abs/dir/Fork_Join.Nodes.gxl": "Fork_Join.Nodes",
		"noext":                        "noext",
	}
	for in, want := range cases {
		assert.Equal(t, want, NameFromPath(in), in)
	}
}

func TestOutgoingEdges(t *testing.T) {
	t.Parallel()
	g := &Graph{Edges: []Edge{
		{Source: "A", Target: "C", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
		{Source: "A", Target: "B", Weight: 3},
	}}
	assert.Equal(t, []Edge{
		{Source: "A", Target: "C", Weight: 1},
		{Source: "A", Target: "B", Weight: 3},
	}, g.OutgoingEdges("A"))
	assert.Empty(t, g.OutgoingEdges("C"))
}
