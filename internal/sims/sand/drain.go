package sand

// DrainSpan returns the inclusive column range and the row of the drain
// opening.
func (w *World) DrainSpan() (start, end, row int) {
	cx := w.w / 2
	half := w.cfg.Params.DrainHalfWidth
	return max(cx-half, 0), min(cx+half, w.w-1), w.h - 1
}

// Drain clears the drain opening and removes every grain resting on it,
// keeping the order of the survivors. Removed cells are folded into the
// active region with the usual margin so the grains above them fall on the
// next pass. It returns the number of grains removed.
func (w *World) Drain() int {
	start, end, row := w.DrainSpan()
	for x := start; x <= end; x++ {
		w.grid.Unset(x, row)
	}

	var drained Region
	kept := w.grains[:0]
	for _, g := range w.grains {
		if g.Y == row && g.X >= start && g.X <= end {
			drained.Include(g.X, g.Y)
			continue
		}
		kept = append(kept, g)
	}
	removed := len(w.grains) - len(kept)
	w.grains = kept

	if !drained.Empty() {
		w.region = w.region.Union(drained.Expand(RegionMargin, w.w, w.h))
	}
	return removed
}
