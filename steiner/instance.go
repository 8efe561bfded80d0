package steiner

import (
	"fmt"
	"sort"

	"github.com/wsgan001/DSTAlgoEvaluation/core"
)

// Instance is the external collaborator the solver core depends on: a
// directed graph with non-negative integer arc costs, a root vertex, and a
// set of terminal vertices. It is deliberately narrow — exactly the surface
// FLAC and G_F read from — so that any graph representation can back a
// solve as long as it can answer these six questions.
type Instance interface {
	// Root returns the vertex every arborescence this instance's solutions
	// are rooted at.
	Root() string

	// Terminals returns the set of vertices the solution must span.
	Terminals() map[string]struct{}

	// Vertices returns every vertex of the instance, in a stable order.
	Vertices() []string

	// EnteringArcs returns every arc with head v, in no particular order;
	// callers that need an ordering build one from Cost themselves.
	EnteringArcs(v string) []*core.Edge

	// OutgoingArcs returns every arc with tail v.
	OutgoingArcs(v string) []*core.Edge

	// Cost returns the arc's original, never-mutated cost.
	Cost(a *core.Edge) int64
}

// ArcSpec describes one directed arc when building a GraphInstance from a
// flat description instead of an already-populated *core.Graph.
type ArcSpec struct {
	Tail string
	Head string
	Cost int64
}

// GraphInstance is the concrete Instance backed by a *core.Graph built with
// WithDirected(true) and WithWeighted(). Vertex IDs are opaque comparable
// strings: core.Graph already gives them a total order, which is all the
// data model requires of a vertex identifier.
type GraphInstance struct {
	graph     *core.Graph
	root      string
	terminals map[string]struct{}
	entering  map[string][]*core.Edge
}

// NewGraphInstance validates vertices, arcs/ a root, and terminals against
// the structural preconditions of the data model (non-negative costs, arcs
// only between declared vertices, no duplicate arc with differing cost),
// then builds the backing *core.Graph. It rejects malformed input with an
// error rather than panicking, per the "programming error" outcome class.
func NewGraphInstance(vertices []string, arcs []ArcSpec, root string, terminals []string) (*GraphInstance, error) {
	known := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		known[v] = struct{}{}
	}
	if _, ok := known[root]; !ok {
		return nil, fmt.Errorf("%w: root %q", ErrUnknownVertex, root)
	}
	for _, t := range terminals {
		if _, ok := known[t]; !ok {
			return nil, fmt.Errorf("%w: terminal %q", ErrUnknownVertex, t)
		}
	}

	type key struct{ tail, head string }
	seenCost := make(map[key]int64, len(arcs))
	for _, a := range arcs {
		if a.Cost < 0 {
			return nil, fmt.Errorf("%w: arc %s->%s cost=%d", ErrNegativeCost, a.Tail, a.Head, a.Cost)
		}
		if _, ok := known[a.Tail]; !ok {
			return nil, fmt.Errorf("%w: arc tail %q", ErrUnknownVertex, a.Tail)
		}
		if _, ok := known[a.Head]; !ok {
			return nil, fmt.Errorf("%w: arc head %q", ErrUnknownVertex, a.Head)
		}
		k := key{a.Tail, a.Head}
		if prev, ok := seenCost[k]; ok && prev != a.Cost {
			return nil, fmt.Errorf("%w: %s->%s has costs %d and %d", ErrDuplicateArcCost, a.Tail, a.Head, prev, a.Cost)
		}
		seenCost[k] = a.Cost
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("steiner: adding vertex %q: %w", v, err)
		}
	}
	for _, a := range arcs {
		if _, err := g.AddEdge(a.Tail, a.Head, a.Cost); err != nil {
			return nil, fmt.Errorf("steiner: adding arc %s->%s: %w", a.Tail, a.Head, err)
		}
	}

	return NewGraphInstanceFromGraph(g, root, terminals)
}

// NewGraphInstanceFromGraph wraps an already-populated directed, weighted
// *core.Graph as an Instance, indexing its entering arcs once up front.
func NewGraphInstanceFromGraph(g *core.Graph, root string, terminals []string) (*GraphInstance, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrUnknownVertex)
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %q", ErrUnknownVertex, root)
	}

	termSet := make(map[string]struct{}, len(terminals))
	for _, t := range terminals {
		if !g.HasVertex(t) {
			return nil, fmt.Errorf("%w: terminal %q", ErrUnknownVertex, t)
		}
		termSet[t] = struct{}{}
	}

	entering := make(map[string][]*core.Edge)
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: arc %s->%s weight=%d", ErrNegativeCost, e.From, e.To, e.Weight)
		}
		entering[e.To] = append(entering[e.To], e)
	}

	return &GraphInstance{
		graph:     g,
		root:      root,
		terminals: termSet,
		entering:  entering,
	}, nil
}

func (gi *GraphInstance) Root() string { return gi.root }

func (gi *GraphInstance) Terminals() map[string]struct{} { return gi.terminals }

func (gi *GraphInstance) Vertices() []string {
	vs := gi.graph.Vertices()
	sort.Strings(vs)

	return vs
}

func (gi *GraphInstance) EnteringArcs(v string) []*core.Edge { return gi.entering[v] }

func (gi *GraphInstance) OutgoingArcs(v string) []*core.Edge {
	out, err := gi.graph.Neighbors(v)
	if err != nil {
		return nil
	}

	return out
}

func (gi *GraphInstance) Cost(a *core.Edge) int64 { return a.Weight }

// Graph exposes the backing *core.Graph for callers (baselines, CLI) that
// need full graph operations the narrow Instance interface does not offer.
func (gi *GraphInstance) Graph() *core.Graph { return gi.graph }
