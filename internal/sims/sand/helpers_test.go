package sand

import "testing"

func newTestWorld(t *testing.T, w, h int, mutate func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.DrainHalfWidth = 1
	if mutate != nil {
		mutate(&cfg)
	}
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

// place inserts a grain the way the spawner does, bypassing sampling.
func place(t *testing.T, w *World, x, y int) {
	t.Helper()
	if !w.grid.Free(x, y) {
		t.Fatalf("cannot place grain at (%d,%d)", x, y)
	}
	w.grid.Set(x, y)
	w.grains = append(w.grains, Point{X: x, Y: y})
	w.region.Include(x, y)
}

func mustConsistent(t *testing.T, w *World, phase string) {
	t.Helper()
	if err := w.CheckConsistency(); err != nil {
		t.Fatalf("after %s: %v", phase, err)
	}
}
