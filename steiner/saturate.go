package steiner

import "github.com/wsgan001/DSTAlgoEvaluation/core"

// saturateArcAndUpdate commits arc a = (u, v) as saturated and propagates
// the consequences backward (spec §4.E): every vertex already linked to u
// by saturated arcs gains v's sources, and — since its inflow rate just
// grew — its own scheduled saturation time accelerates, or, if it had no
// inflow before, it is introduced into the schedule for the first time.
func (fs *flacState) saturateArcAndUpdate(a *core.Edge) {
	u, v := a.From, a.To
	vsrcs := fs.sourcesOf(v)

	queue := []string{u}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		prevRate := fs.rateOf(w)
		ws := fs.sourcesOf(w)
		for s := range vsrcs {
			ws[s] = struct{}{} // disjoint union: absence of conflict guarantees this
		}

		if prevRate > 0 {
			if item, ok := fs.sched.get(w); ok {
				newRate := fs.rateOf(w)
				newTime := fs.time + (item.satTime-fs.time)*(float64(prevRate)/float64(newRate))
				fs.sched.decreaseKey(w, newTime)
			}
		} else {
			fs.updateNextSaturatedArc(w)
		}

		satArc := fs.nextArc[w]
		for _, arc := range fs.idx.arcsFor(w) {
			if satArc != nil && arc == satArc {
				break
			}
			if fs.saturated[arc.ID] {
				queue = append(queue, arc.From)
			}
		}
	}

	fs.saturated[a.ID] = true
}
