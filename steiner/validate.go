package steiner

import (
	"fmt"

	"github.com/wsgan001/DSTAlgoEvaluation/bfs"
	"github.com/wsgan001/DSTAlgoEvaluation/core"
	"github.com/wsgan001/DSTAlgoEvaluation/dfs"
)

// validateArborescence checks P1/P2 on a Feasible result directly over the
// solver's own output: every non-root vertex has in-degree at most one, the
// arc set is acyclic, and every terminal is reachable from the root. The
// in-degree count is a direct scan of res.Arborescence; acyclicity and
// reachability are delegated to dfs.DetectCycles and bfs.BFS over a small
// *core.Graph built from the same edges, rather than hand-rolled traversals.
func validateArborescence(inst Instance, res Result) error {
	g := core.NewGraph(core.WithDirected(true))
	if err := g.AddVertex(inst.Root()); err != nil {
		return fmt.Errorf("steiner: validating arborescence: %w", err)
	}

	inDegree := make(map[string]int)
	for _, a := range res.Arborescence {
		inDegree[a.To]++
		if inDegree[a.To] > 1 {
			return fmt.Errorf("%w: vertex %q has in-degree %d", ErrArborescenceInvalid, a.To, inDegree[a.To])
		}
		if _, err := g.AddEdge(a.From, a.To, 0); err != nil {
			return fmt.Errorf("steiner: validating arborescence: %w", err)
		}
	}

	hasCycle, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return fmt.Errorf("steiner: validating arborescence: %w", err)
	}
	if hasCycle {
		return fmt.Errorf("%w: cycle through %v", ErrArborescenceInvalid, cycles[0])
	}

	reached, err := bfs.BFS(g, inst.Root())
	if err != nil {
		return fmt.Errorf("steiner: validating arborescence: %w", err)
	}
	for t := range inst.Terminals() {
		if t == inst.Root() {
			continue
		}
		if _, ok := reached.Depth[t]; !ok {
			return fmt.Errorf("%w: terminal %q not reached from root", ErrArborescenceInvalid, t)
		}
	}

	return nil
}
