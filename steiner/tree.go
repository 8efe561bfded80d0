package steiner

import "github.com/wsgan001/DSTAlgoEvaluation/core"

// buildTree walks forward from the root over saturated arcs (spec §4.G)
// once the root has been reached, collecting the tree those arcs form and
// the outstanding terminals it reaches. Traversal order is irrelevant to
// correctness; a FIFO queue keeps the shape the bfs package uses elsewhere
// in this module.
func (fs *flacState) buildTree() (tree []*core.Edge, reached map[string]struct{}) {
	reached = make(map[string]struct{})

	queue := []string{fs.root}
	visited := map[string]bool{fs.root: true}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if _, ok := fs.outstanding[v]; ok {
			reached[v] = struct{}{}
		}

		for _, a := range fs.inst.OutgoingArcs(v) {
			if !fs.saturated[a.ID] {
				continue
			}
			tree = append(tree, a)
			if !visited[a.To] {
				visited[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return tree, reached
}
