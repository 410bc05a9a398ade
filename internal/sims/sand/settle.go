package sand

// fallOrder lists the targets a grain tries, first match wins.
var fallOrder = [...]Point{
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

// Settle moves every grain inside the active region at most one cell and
// returns how many moved. Grains are visited newest first and the grid is
// updated immediately, so a cell vacated earlier in the pass can be taken by
// a grain visited later.
//
// When something moved, the region for the next pass is the box around the
// new positions grown by RegionMargin. A pass with no motion leaves the region
// as it was.
func (w *World) Settle() int {
	if w.region.Empty() {
		return 0
	}
	var next Region
	moved := 0
	for i := len(w.grains) - 1; i >= 0; i-- {
		g := w.grains[i]
		if !w.region.Contains(g.X, g.Y) {
			continue
		}
		for _, d := range fallOrder {
			nx, ny := g.X+d.X, g.Y+d.Y
			if !w.grid.Free(nx, ny) {
				continue
			}
			w.grid.Unset(g.X, g.Y)
			w.grid.Set(nx, ny)
			w.grains[i] = Point{X: nx, Y: ny}
			next.Include(nx, ny)
			moved++
			break
		}
	}
	if !next.Empty() {
		w.region = next.Expand(RegionMargin, w.w, w.h)
	}
	return moved
}
