package steiner

import "github.com/wsgan001/DSTAlgoEvaluation/core"

// flacState is FLAC's per-run mutable state (spec §3, "FLAC per-run
// state"): constructed fresh for every invocation and discarded once it
// returns, except for the entering-arc index and cost map it borrows from
// the enclosing Solve call, which persist across runs.
type flacState struct {
	root        string
	inst        Instance
	outstanding map[string]struct{} // terminals still to reach, shared read-only view of G_F's set
	idx         *enteringIndex
	cost        *costMap

	saturated  map[string]bool       // edge ID -> saturated
	sources    map[string]sourceSet  // vertex -> terminals reaching it through saturated arcs
	nextArc    map[string]*core.Edge // vertex -> cheapest unsaturated entering arc
	cursor     map[string]int        // vertex -> position in idx.arcsFor(v) past arcs already chosen
	sched      *scheduler
	time       float64
}

// sourceSet is a set of terminal vertex IDs. Plain map semantics, not
// union-find, because conflict detection needs set intersection (spec §9).
type sourceSet map[string]struct{}

func newFlacState(inst Instance, outstanding map[string]struct{}, idx *enteringIndex, cost *costMap) *flacState {
	fs := &flacState{
		root:        inst.Root(),
		inst:        inst,
		outstanding: outstanding,
		idx:         idx,
		cost:        cost,
		saturated:   make(map[string]bool),
		sources:     make(map[string]sourceSet),
		nextArc:     make(map[string]*core.Edge),
		cursor:      make(map[string]int),
		sched:       newScheduler(),
	}

	// Every outstanding terminal is its own sole initial source, and is
	// scheduled for its cheapest entering arc right away.
	for t := range outstanding {
		fs.sourcesOf(t)[t] = struct{}{}
		fs.updateNextSaturatedArc(t)
	}

	return fs
}

// sourcesOf returns v's source set, lazily allocating it empty on first
// access (spec §3: "sources(t) = {t} for every terminal, and empty
// elsewhere").
func (fs *flacState) sourcesOf(v string) sourceSet {
	s, ok := fs.sources[v]
	if !ok {
		s = make(sourceSet)
		fs.sources[v] = s
	}

	return s
}

// rateOf is the current inflow rate at v: one unit per distinct source.
func (fs *flacState) rateOf(v string) int { return len(fs.sourcesOf(v)) }

// run executes FLAC's outer loop (spec §4.C) to completion: repeatedly
// extracting the vertex whose next entering arc saturates earliest,
// advancing the clock, and either terminating at the root or propagating
// the consequences of the saturation (or its veto) onward.
//
// ok is false if the schedule empties before the root is reached, per
// spec §4.C/§7 — the caller (Solve) treats that as Infeasible for the
// whole solve.
func (fs *flacState) run() (tree []*core.Edge, reached map[string]struct{}, ok bool) {
	for {
		v, satTime, has := fs.sched.extractMin()
		if !has {
			return nil, nil, false
		}
		fs.time = satTime

		a := fs.nextArc[v]
		u, head := a.From, a.To // head == v

		if u == fs.root {
			fs.saturated[a.ID] = true
			t, r := fs.buildTree()

			return t, r, true
		}

		conflict := fs.findConflict(u, head)
		fs.updateNextSaturatedArc(head)
		if !conflict {
			fs.saturateArcAndUpdate(a)
		}
	}
}

// updateNextSaturatedArc selects v's next-cheapest unsaturated entering arc
// and schedules when it will fill (spec §4.D). It is called once per
// terminal during reinit, once more whenever v's current nextArc is
// consumed (saturated or vetoed), and once the first time a vertex starts
// receiving inflow (saturateArcAndUpdate's prevRate==0 branch).
func (fs *flacState) updateNextSaturatedArc(v string) {
	list := fs.idx.arcsFor(v)
	pos := fs.cursor[v]
	b := fs.nextArc[v] // previously held candidate, nil on first call

	if pos >= len(list) {
		delete(fs.nextArc, v)
		delete(fs.sched.handles, v)

		return
	}

	a := list[pos]
	fs.cursor[v] = pos + 1
	fs.nextArc[v] = a

	rate := float64(fs.rateOf(v))
	var delta float64
	if b == nil {
		delta = float64(fs.cost.get(a)) / rate
	} else {
		delta = float64(fs.cost.get(a)-fs.cost.get(b)) / rate
	}

	fs.sched.insert(v, fs.time+delta, a.From != fs.root)
}
