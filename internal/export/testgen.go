package export

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

// TestCase is everything a generated test needs to know about one graph.
type TestCase struct {
	Name                string
	FixturePath         string
	ProcessorCount      int
	TotalScheduleLength int64
	ProcessorEndTimes   []int64
	// Expected is the canonical scheduled rendering of the reference schedule.
	Expected string

	funcName string
}

const testFileTemplate = `// Code generated by gxlfixture. DO NOT EDIT.

// The enclosing package provides loadGraph, scheduleGraph,
// assertValidSchedule and assertMatchesReference.

package {{.Package}}
{{if .Cases}}
import (
	"testing"

	"github.com/stretchr/testify/require"
)
{{end}}{{range .Cases}}
// {{.FuncName}} schedules {{.Name}} on {{.ProcessorCount}} processor(s).
func {{.FuncName}}(t *testing.T) {
	t.Parallel()

	graph := loadGraph(t, {{quote .FixturePath}})
	schedule := scheduleGraph(t, graph, {{.ProcessorCount}})

	assertValidSchedule(t, graph, schedule)
	require.Equal(t, int64({{.TotalScheduleLength}}), schedule.Makespan())
	assertMatchesReference(t, schedule, {{int64s .ProcessorEndTimes}}, {{literal .Expected}})
}
{{end}}`

var testTemplate = template.Must(template.New("tests").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"literal": goLiteral,
	"int64s":  int64SliceLiteral,
}).Parse(testFileTemplate))

// FuncName is the Go test function name generated for the case.
func (tc TestCase) FuncName() string {
	if tc.funcName != "" {
		return tc.funcName
	}
	return "TestOptimal_" + identifier(tc.Name)
}

// RenderTests renders a gofmt-formatted Go test file for cases in package pkg.
// Cases are emitted in the given order; names that collide once sanitised get
// the lowest numeric suffix that is not already taken.
func RenderTests(pkg string, cases []TestCase) ([]byte, error) {
	named := make([]TestCase, len(cases))
	taken := make(map[string]struct{}, len(cases))
	for i, tc := range cases {
		base := tc.FuncName()
		name := base
		for n := 2; ; n++ {
			if _, dup := taken[name]; !dup {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}
		taken[name] = struct{}{}
		tc.funcName = name
		named[i] = tc
	}

	var buf bytes.Buffer
	err := testTemplate.Execute(&buf, struct {
		Package string
		Cases   []TestCase
	}{pkg, named})
	if err != nil {
		return nil, fmt.Errorf("failed to render test template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated test source does not parse: %w", err)
	}
	return src, nil
}

// identifier maps a graph name onto the characters allowed in a Go
// identifier.
func identifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// goLiteral prefers a raw string literal, which keeps multi-line DOT text
// readable, and falls back to a quoted one when the text holds a backtick.
func goLiteral(s string) string {
	if strings.ContainsRune(s, '`') {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

func int64SliceLiteral(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[]int64{" + strings.Join(parts, ", ") + "}"
}
