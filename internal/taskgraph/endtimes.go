package taskgraph

import (
	"context"

	"github.com/specialistvlad/gxlfixture/internal/ctxlog"
)

// ProcessorEndTimes returns, for each processor slot 0..ProcessorCount-1, the
// latest finish time of the nodes assigned to it (0 for an idle slot).
//
// A node whose processor index falls outside that range is logged as a
// warning and left out; the rest of the result is still returned.
func (g *Graph) ProcessorEndTimes(ctx context.Context) []int64 {
	logger := ctxlog.FromContext(ctx)
	ends := make([]int64, g.ProcessorCount)

	for _, n := range g.Nodes {
		if n.Processor < 0 || n.Processor >= int64(len(ends)) {
			logger.Warn("Node processor index out of range, leaving it out of end times.",
				"graph", g.Name,
				"node", n.ID,
				"processor", n.Processor,
				"processor_count", g.ProcessorCount,
			)
			continue
		}
		if n.Finish > ends[n.Processor] {
			ends[n.Processor] = n.Finish
		}
	}

	return ends
}
