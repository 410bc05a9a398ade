// Package sand implements a falling-sand automaton: grains spawned around a
// pointer fall one cell per frame, pile into heaps and leave through a drain
// on the bottom edge.
package sand

import (
	"slices"

	"sandfall/internal/core"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// FrameReport summarizes what one frame did.
type FrameReport struct {
	Frame   int
	Spawned int
	Moved   int
	Drained int
	Grains  int
	Region  Region
}

// World owns the occupancy grid, the grain list and the active region. The
// grid and the grain list are only ever mutated together.
type World struct {
	cfg Config

	w, h int

	grid   *core.ByteGrid
	grains []Point
	region Region

	rng   *core.RNG
	input core.Input
	frame int
	last  FrameReport
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	if cfg.Params.DrainHalfWidth > w {
		cfg.Params.DrainHalfWidth = w / 2
	}
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and returns a world seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells exposes the occupancy buffer: 1 for a grain, 0 for empty. Callers
// must treat it as read-only.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Occupied reports whether (x, y) is in bounds and holds a grain.
func (w *World) Occupied(x, y int) bool {
	return w.grid.In(x, y) && w.grid.Occupied(x, y)
}

// Grains returns a copy of the grain positions in insertion order.
func (w *World) Grains() []Point { return slices.Clone(w.grains) }

// GrainCount returns the number of live grains.
func (w *World) GrainCount() int { return len(w.grains) }

// ActiveRegion returns the box the next settling pass will examine.
func (w *World) ActiveRegion() Region { return w.region }

// ActiveBounds reports the active region as plain coordinates for overlays.
func (w *World) ActiveBounds() (minX, minY, maxX, maxY int, ok bool) {
	r := w.region
	return r.MinX, r.MinY, r.MaxX, r.MaxY, !r.Empty()
}

// SetActiveRegion replaces the active region. Callers that know no motion is
// possible outside r may use it to narrow the box; r is clamped to the grid.
func (w *World) SetActiveRegion(r Region) {
	w.region = r.Clamp(w.w, w.h)
}

// Frames returns the number of frames run since the last reset.
func (w *World) Frames() int { return w.frame }

// LastFrame returns the report of the most recent frame.
func (w *World) LastFrame() FrameReport { return w.last }

// Reset empties the world and reseeds the random source. A zero seed selects
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.grid.Clear()
	w.grains = w.grains[:0]
	w.region = Region{}
	w.input = core.Input{}
	w.frame = 0
	w.last = FrameReport{}
}

// SetInput records the signals the next Step consumes.
func (w *World) SetInput(in core.Input) { w.input = in }

// Step runs one frame with the pending input and clears it.
func (w *World) Step() {
	in := w.input
	w.input = core.Input{}
	w.Frame(in)
}

// Frame runs spawn, settle and drain in that order.
func (w *World) Frame(in core.Input) FrameReport {
	report := FrameReport{Frame: w.frame}
	if in.Spawn {
		report.Spawned = w.Spawn(in.X, in.Y)
	}
	report.Moved = w.Settle()
	if in.Drain {
		report.Drained = w.Drain()
	}
	report.Grains = len(w.grains)
	report.Region = w.region
	w.frame++
	w.last = report
	return report
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
