package steinerbench

import (
	"errors"
	"sort"

	"github.com/wsgan001/DSTAlgoEvaluation/core"
	"github.com/wsgan001/DSTAlgoEvaluation/dijkstra"
	"github.com/wsgan001/DSTAlgoEvaluation/prim_kruskal"
	"github.com/wsgan001/DSTAlgoEvaluation/steiner"
)

// ErrNotGraphBacked is returned when an Instance cannot hand back the
// *core.Graph a baseline needs to run dijkstra or prim_kruskal over.
var ErrNotGraphBacked = errors.New("steinerbench: instance does not expose a backing *core.Graph")

// ErrDisconnected is returned when a terminal is unreachable from the root,
// so no baseline tree can be built.
var ErrDisconnected = errors.New("steinerbench: instance is not fully spanning for this baseline")

// Result is a baseline construction's outcome: the cost it achieves and, for
// baselines that stay within the instance's own arc set, the arcs chosen.
type Result struct {
	TotalCost int64
	Arcs      []*core.Edge // nil for the metric-closure baseline (virtual edges, no direct correspondence)
}

type graphBacked interface {
	Graph() *core.Graph
}

func backingGraph(inst steiner.Instance) (*core.Graph, error) {
	gb, ok := inst.(graphBacked)
	if !ok {
		return nil, ErrNotGraphBacked
	}

	return gb.Graph(), nil
}

// ShortestPathTree runs dijkstra.Dijkstra once from the root and unions
// every terminal's shortest path into a single tree, deduplicating arcs the
// paths share (spec's shortest-path-tree baseline).
func ShortestPathTree(inst steiner.Instance) (Result, error) {
	g, err := backingGraph(inst)
	if err != nil {
		return Result{}, err
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(inst.Root()), dijkstra.WithReturnPath())
	if err != nil {
		return Result{}, err
	}

	root := inst.Root()
	chosen := make(map[string]*core.Edge) // "tail|head" -> arc
	for t := range inst.Terminals() {
		if t == root {
			continue
		}
		if dist[t] == dijkstraUnreachable {
			return Result{}, ErrDisconnected
		}
		for v := t; v != root; {
			p, ok := prev[v]
			if !ok || p == "" {
				return Result{}, ErrDisconnected
			}
			arc := arcBetween(inst, p, v)
			if arc == nil {
				return Result{}, ErrDisconnected
			}
			chosen[p+"|"+v] = arc
			v = p
		}
	}

	arcs := make([]*core.Edge, 0, len(chosen))
	for _, a := range chosen {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].ID < arcs[j].ID })

	var total int64
	for _, a := range arcs {
		total += inst.Cost(a)
	}

	return Result{TotalCost: total, Arcs: arcs}, nil
}

// math.MaxInt64 as dijkstra.Dijkstra's own unreachable sentinel; duplicated
// here rather than importing math just for one constant comparison.
const dijkstraUnreachable = 1<<63 - 1

// arcBetween returns the (tail,head) arc of minimal cost between p and v,
// favoring the cost dijkstra actually walked. core.Graph forbids parallel
// arcs without WithMultiEdges(), so at most one candidate exists per pair.
func arcBetween(inst steiner.Instance, tail, head string) *core.Edge {
	for _, a := range inst.EnteringArcs(head) {
		if a.From == tail {
			return a
		}
	}

	return nil
}

// MetricClosureMST symmetrizes shortest-path distances among {root} ∪
// terminals into an undirected weighted core.Graph, then runs
// prim_kruskal.Kruskal over that closure — the textbook MST-based Steiner
// tree approximation. The returned Result's Arcs is always nil: the MST
// edges live in the synthetic closure graph, not the instance's own arc set.
func MetricClosureMST(inst steiner.Instance) (Result, error) {
	g, err := backingGraph(inst)
	if err != nil {
		return Result{}, err
	}

	nodes := closureNodes(inst)
	closure := core.NewGraph(core.WithWeighted())
	for _, v := range nodes {
		if err := closure.AddVertex(v); err != nil {
			return Result{}, err
		}
	}

	distFrom := make(map[string]map[string]int64, len(nodes))
	for _, u := range nodes {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(u))
		if err != nil {
			return Result{}, err
		}
		distFrom[u] = dist
	}

	for i, u := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			v := nodes[j]
			fwd, fwdOK := distFrom[u][v], distFrom[u][v] != dijkstraUnreachable
			bwd, bwdOK := distFrom[v][u], distFrom[v][u] != dijkstraUnreachable
			w, ok := symmetricDistance(fwd, fwdOK, bwd, bwdOK)
			if !ok {
				continue
			}
			if _, err := closure.AddEdge(u, v, w); err != nil {
				return Result{}, err
			}
		}
	}

	mst, total, err := prim_kruskal.Kruskal(closure)
	if err != nil {
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return Result{}, ErrDisconnected
		}

		return Result{}, err
	}
	_ = mst // the closure's own edges are virtual; only the aggregate cost is meaningful

	return Result{TotalCost: total}, nil
}

// symmetricDistance picks the cheaper of the two directed distances between
// a pair, since the closure graph is undirected but the instance is not.
func symmetricDistance(fwd int64, fwdOK bool, bwd int64, bwdOK bool) (int64, bool) {
	switch {
	case fwdOK && bwdOK:
		if bwd < fwd {
			return bwd, true
		}

		return fwd, true
	case fwdOK:
		return fwd, true
	case bwdOK:
		return bwd, true
	default:
		return 0, false
	}
}

// closureNodes returns {root} ∪ terminals in a stable order.
func closureNodes(inst steiner.Instance) []string {
	set := map[string]struct{}{inst.Root(): {}}
	for t := range inst.Terminals() {
		set[t] = struct{}{}
	}
	nodes := make([]string, 0, len(set))
	for v := range set {
		nodes = append(nodes, v)
	}
	sort.Strings(nodes)

	return nodes
}
