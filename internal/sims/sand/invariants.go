package sand

import (
	"errors"
	"fmt"
)

// ErrInconsistent is wrapped by CheckConsistency failures.
var ErrInconsistent = errors.New("sand world inconsistent")

// CheckConsistency verifies that every grain is in bounds, that no two grains
// share a cell, and that the grid marks exactly the cells holding grains.
func (w *World) CheckConsistency() error {
	seen := make([]bool, w.w*w.h)
	for i, g := range w.grains {
		if !w.grid.In(g.X, g.Y) {
			return fmt.Errorf("%w: grain %d at (%d,%d) out of bounds", ErrInconsistent, i, g.X, g.Y)
		}
		idx := w.grid.Index(g.X, g.Y)
		if seen[idx] {
			return fmt.Errorf("%w: two grains at (%d,%d)", ErrInconsistent, g.X, g.Y)
		}
		seen[idx] = true
		if !w.grid.Occupied(g.X, g.Y) {
			return fmt.Errorf("%w: grain %d at (%d,%d) not marked in grid", ErrInconsistent, i, g.X, g.Y)
		}
	}
	if n := w.grid.Count(); n != len(w.grains) {
		return fmt.Errorf("%w: grid marks %d cells for %d grains", ErrInconsistent, n, len(w.grains))
	}
	return nil
}
