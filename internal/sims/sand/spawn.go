package sand

import "math"

// Spawn runs the configured number of placement trials around (cx, cy) and
// returns how many grains were added. Each trial samples one offset inside
// the spawn disc; candidates that are off the grid or already occupied are
// dropped without a retry.
func (w *World) Spawn(cx, cy int) int {
	r := w.cfg.Params.SpawnRadius
	placed := 0
	for i := 0; i < w.cfg.Params.SpawnAttempts; i++ {
		dx, dy := w.sampleDisc(r)
		x, y := cx+dx, cy+dy
		if !w.grid.Free(x, y) {
			continue
		}
		w.grid.Set(x, y)
		w.grains = append(w.grains, Point{X: x, Y: y})
		w.region.Include(x, y)
		placed++
	}
	return placed
}

// sampleDisc draws integer offsets uniformly from [-r, r]^2 until one lands
// inside the disc of radius r.
func (w *World) sampleDisc(r int) (int, int) {
	span := float64(2*r + 1)
	r2 := r * r
	for {
		dx := int(math.Floor(w.rng.Float64()*span)) - r
		dy := int(math.Floor(w.rng.Float64()*span)) - r
		if dx*dx+dy*dy <= r2 {
			return dx, dy
		}
	}
}
