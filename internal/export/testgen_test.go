package export

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTests_Shape(t *testing.T) {
	t.Parallel()
	src, err := RenderTests("optimal", []TestCase{{
		Name:                "Nodes_7_OutTree",
		FixturePath:         "./graphs/optimal/Nodes_7_OutTree.dot",
		ProcessorCount:      2,
		TotalScheduleLength: 34,
		ProcessorEndTimes:   []int64{34, 22},
		Expected:            "digraph \"Nodes_7_OutTree\" {\n0 [Weight=5,Start=0,Processor=1];\n}",
	}})
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "gen_test.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "optimal", f.Name.Name)

	code := string(src)
	assert.True(t, strings.HasPrefix(code, "// Code generated by gxlfixture. DO NOT EDIT."))
	assert.Contains(t, code, "func TestOptimal_Nodes_7_OutTree(t *testing.T) {")
	assert.Contains(t, code, "scheduleGraph(t, graph, 2)")
	assert.Contains(t, code, "assertMatchesReference(t, schedule, []int64{34, 22}, `digraph \"Nodes_7_OutTree\" {")
}

func TestRenderTests_NameCollisionsGetSuffix(t *testing.T) {
	t.Parallel()
	src, err := RenderTests("p", []TestCase{
		{Name: "a-b", ProcessorCount: 1, Expected: "x"},
		{Name: "a.b", ProcessorCount: 1, Expected: "y"},
	})
	require.NoError(t, err)
	code := string(src)
	assert.Contains(t, code, "func TestOptimal_a_b(t *testing.T)")
	assert.Contains(t, code, "func TestOptimal_a_b_2(t *testing.T)")
}

func TestRenderTests_SuffixSkipsTakenNames(t *testing.T) {
	t.Parallel()
	src, err := RenderTests("p", []TestCase{
		{Name: "a-b", ProcessorCount: 1, Expected: "x"},
		{Name: "a_b", ProcessorCount: 1, Expected: "y"},
		{Name: "a_b_2", ProcessorCount: 1, Expected: "z"},
	})
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "gen_test.go", src, 0)
	require.NoError(t, err)
	var funcs []string
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
		}
	}
	assert.Equal(t, []string{"TestOptimal_a_b", "TestOptimal_a_b_2", "TestOptimal_a_b_2_2"}, funcs)
}

func TestRenderTests_NoCases(t *testing.T) {
	t.Parallel()
	src, err := RenderTests("p", nil)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package p")
}

func TestRenderTests_InvalidPackage(t *testing.T) {
	t.Parallel()
	_, err := RenderTests("not a package", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not parse")
}

func TestGoLiteral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "`a\nb`", goLiteral("a\nb"))
	assert.Equal(t, "\"a`b\"", goLiteral("a`b"))
}

func TestIdentifier(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Nodes_10_Random", identifier("Nodes_10_Random"))
	assert.Equal(t, "Fork_Join_Nodes_9", identifier("Fork-Join.Nodes 9"))
}
