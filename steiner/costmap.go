package steiner

import "github.com/wsgan001/DSTAlgoEvaluation/core"

// costMap is G_F's mutable copy of the instance's arc costs (spec §3,
// "Mutable cost map"). The instance's own costs, reached via Instance.Cost,
// are never altered; committing a FLAC tree only ever zeroes this copy.
type costMap struct {
	values map[string]int64 // edge ID -> current cost
}

// newCostMap seeds the mutable copy from inst's original costs.
func newCostMap(inst Instance) *costMap {
	values := make(map[string]int64)
	for _, v := range inst.Vertices() {
		for _, a := range inst.OutgoingArcs(v) {
			values[a.ID] = inst.Cost(a)
		}
	}

	return &costMap{values: values}
}

// get returns the current mutable cost of a.
func (c *costMap) get(a *core.Edge) int64 { return c.values[a.ID] }

// zero sets a's mutable cost to 0. Called by Solve once a is committed to
// the cumulative solution, so later FLAC runs are biased to reuse it.
func (c *costMap) zero(a *core.Edge) { c.values[a.ID] = 0 }
