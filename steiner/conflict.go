package steiner

// findConflict determines whether committing arc (u, v) would merge two
// already-connected flow components (spec §4.F): walking backward from u
// over already-saturated arcs, if any reached vertex's sources intersect
// v's sources, saturating (u, v) would double-connect a source or close a
// cycle, so the candidate is vetoed.
func (fs *flacState) findConflict(u, v string) bool {
	vsrcs := fs.sourcesOf(v)

	queue := []string{u}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if intersects(fs.sourcesOf(w), vsrcs) {
			return true
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

	return false
}

// intersects reports whether a and b share any element, scanning the
// smaller set first.
func intersects(a, b sourceSet) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}

	return false
}
