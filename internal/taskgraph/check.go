package taskgraph

import (
	"fmt"
	"sort"
)

// ViolationKind classifies a schedule inconsistency.
type ViolationKind string

const (
	ViolationDuration     ViolationKind = "duration"
	ViolationOverlap      ViolationKind = "overlap"
	ViolationPrecedence   ViolationKind = "precedence"
	ViolationDanglingEdge ViolationKind = "dangling-edge"
	ViolationMakespan     ViolationKind = "makespan"
)

// Violation is one inconsistency in the schedule recorded by a document.
type Violation struct {
	Kind   ViolationKind
	Node   string
	Detail string
}

func (v Violation) String() string {
	if v.Node == "" {
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
	return fmt.Sprintf("%s: node %s: %s", v.Kind, v.Node, v.Detail)
}

// CheckSchedule cross-checks the schedule carried by the graph and returns
// every inconsistency found, in a stable order. An empty result means the
// recorded schedule is feasible:
//   - every node runs for exactly its weight;
//   - nodes on one processor do not overlap;
//   - a node starts no earlier than each parent's finish, plus the edge
//     weight when the parent ran on another processor;
//   - the recorded total schedule length equals the latest finish time.
func (g *Graph) CheckSchedule() []Violation {
	var out []Violation

	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
		if n.Finish-n.Start != n.Weight {
			out = append(out, Violation{
				Kind:   ViolationDuration,
				Node:   n.ID,
				Detail: fmt.Sprintf("runs from %d to %d but has weight %d", n.Start, n.Finish, n.Weight),
			})
		}
	}

	out = append(out, g.checkOverlaps()...)

	for _, e := range g.Edges {
		src, okSrc := byID[e.Source]
		dst, okDst := byID[e.Target]
		if !okSrc || !okDst {
			out = append(out, Violation{
				Kind:   ViolationDanglingEdge,
				Detail: fmt.Sprintf("edge %s -> %s references an unknown node", e.Source, e.Target),
			})
			continue
		}
		ready := src.Finish
		if src.Processor != dst.Processor {
			ready += e.Weight
		}
		if dst.Start < ready {
			out = append(out, Violation{
				Kind:   ViolationPrecedence,
				Node:   dst.ID,
				Detail: fmt.Sprintf("starts at %d before its dependency %s allows (%d)", dst.Start, src.ID, ready),
			})
		}
	}

	if total, ok := g.TotalScheduleLength(); ok {
		if m := g.Makespan(); m != total {
			out = append(out, Violation{
				Kind:   ViolationMakespan,
				Detail: fmt.Sprintf("total schedule length is %d but the last node finishes at %d", total, m),
			})
		}
	}

	return out
}

func (g *Graph) checkOverlaps() []Violation {
	var out []Violation
	for _, group := range g.ByProcessor() {
		for i := 1; i < len(group); i++ {
			prev, cur := group[i-1], group[i]
			if cur.Start < prev.Finish {
				out = append(out, Violation{
					Kind:   ViolationOverlap,
					Node:   cur.ID,
					Detail: fmt.Sprintf("starts at %d while %s runs until %d on processor %d", cur.Start, prev.ID, prev.Finish, cur.Processor),
				})
			}
		}
	}
	return out
}

// ByProcessor groups the nodes by processor index, ascending. Within a group
// nodes are ordered by start time, then by id so that equal start times do
// not depend on document order.
func (g *Graph) ByProcessor() [][]Node {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Processor != b.Processor {
			return a.Processor < b.Processor
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.ID < b.ID
	})

	var groups [][]Node
	for i, n := range nodes {
		if i == 0 || n.Processor != nodes[i-1].Processor {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], n)
	}
	return groups
}
