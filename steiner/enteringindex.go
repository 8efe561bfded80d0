package steiner

import (
	"sort"

	"github.com/wsgan001/DSTAlgoEvaluation/core"
)

// enteringIndex is the per-vertex sorted entering-arc index of spec §3/§4.B:
// for each vertex, its entering arcs ordered by (cost, tail, head) — cost
// first, tail ID as tiebreak, head ID as final tiebreak. It persists across
// FLAC runs within one Solve call because G_F edits it as it zeroes arcs.
//
// The comparator reads cost from the live costMap, never from a value
// frozen at insertion time: changing an arc's cost without first removing
// it would silently break the ordering, so every caller that mutates a
// cost must follow the sequence remove(a); cost.zero(a); insert(a).
type enteringIndex struct {
	byHead map[string][]*core.Edge
	cost   *costMap
}

// newEnteringIndex builds the index once per Solve call, from inst's
// entering-arc lists. The instance's arc set never changes shape during a
// solve — only costs move through costMap — so this is the only place the
// per-vertex slices are populated from scratch.
func newEnteringIndex(inst Instance, cost *costMap) *enteringIndex {
	idx := &enteringIndex{byHead: make(map[string][]*core.Edge), cost: cost}
	for _, v := range inst.Vertices() {
		arcs := append([]*core.Edge(nil), inst.EnteringArcs(v)...)
		sort.SliceStable(arcs, func(i, j int) bool { return idx.less(arcs[i], arcs[j]) })
		idx.byHead[v] = arcs
	}

	return idx
}

// less implements the (cost, tail, head) total order. (tail, head) already
// uniquely identifies an arc because core.Graph rejects parallel arcs
// without WithMultiEdges(), so no two distinct arcs ever compare equal.
func (idx *enteringIndex) less(a, b *core.Edge) bool {
	ca, cb := idx.cost.get(a), idx.cost.get(b)
	if ca != cb {
		return ca < cb
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// arcsFor returns v's entering arcs in ascending (cost, tail, head) order.
// The returned slice is shared; callers must not mutate it.
func (idx *enteringIndex) arcsFor(v string) []*core.Edge { return idx.byHead[v] }

// remove deletes a from its head's sorted slice, locating it by binary
// search under the cost ordering that held just before the caller mutates
// a's cost.
func (idx *enteringIndex) remove(a *core.Edge) {
	list := idx.byHead[a.To]
	i := sort.Search(len(list), func(i int) bool { return !idx.less(list[i], a) })
	for i < len(list) && list[i].ID != a.ID {
		i++
	}
	if i == len(list) {
		return
	}
	idx.byHead[a.To] = append(list[:i:i], list[i+1:]...)
}

// insert places a back into its head's sorted slice under its current
// (post-mutation) cost.
func (idx *enteringIndex) insert(a *core.Edge) {
	list := idx.byHead[a.To]
	i := sort.Search(len(list), func(i int) bool { return !idx.less(list[i], a) })
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = a
	idx.byHead[a.To] = list
}
