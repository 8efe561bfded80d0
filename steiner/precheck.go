package steiner

import (
	"github.com/wsgan001/DSTAlgoEvaluation/bfs"
	"github.com/wsgan001/DSTAlgoEvaluation/core"
)

// graphBacked is implemented by instances that can hand back the
// *core.Graph underneath them. The reachability precheck needs one because
// it reuses the bfs package, which only traverses core.Graph; instances
// that do not implement it simply skip the precheck (WithReachabilityPrecheck
// is a pure optimization, never required for correctness).
type graphBacked interface {
	Graph() *core.Graph
}

// unreachableTerminals runs one bfs.BFS from root over inst's backing
// graph and reports which of outstanding are not forward-reachable from
// root. A non-nil, non-empty result lets Solve report Infeasible without
// paying for a FLAC run whose schedule will empty out anyway (spec S5).
func unreachableTerminals(inst Instance, outstanding map[string]struct{}) map[string]struct{} {
	gb, ok := inst.(graphBacked)
	if !ok {
		return nil
	}
	// bfs.BFS refuses weighted graphs outright; this module's GraphInstance
	// always builds a weighted graph (arc costs live in Edge.Weight), so the
	// precheck runs over an unweighted topology-only view instead.
	g := core.UnweightedView(gb.Graph())

	res, err := bfs.BFS(g, inst.Root())
	if err != nil {
		return nil
	}

	gaps := make(map[string]struct{})
	for t := range outstanding {
		if _, ok := res.Depth[t]; !ok {
			gaps[t] = struct{}{}
		}
	}

	return gaps
}
