// Package bench drives sand worlds headlessly with scripted input and
// collects per-frame telemetry.
package bench

import (
	"fmt"

	"sandfall/internal/core"
)

// Spawn patterns for scripted runs.
const (
	PatternCenter = "center"
	PatternSweep  = "sweep"
	PatternRain   = "rain"
)

// Script describes the input fed to a world frame by frame.
type Script struct {
	Steps int
	// PourFrames is how many leading frames request a spawn.
	PourFrames int
	// DrainEvery opens the drain on every Nth frame; 0 keeps it closed.
	DrainEvery int
	Pattern    string
}

// Validate rejects scripts that cannot run.
func (s Script) Validate() error {
	if s.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", s.Steps)
	}
	if s.PourFrames < 0 {
		return fmt.Errorf("pour frames must be >= 0, got %d", s.PourFrames)
	}
	if s.DrainEvery < 0 {
		return fmt.Errorf("drain interval must be >= 0, got %d", s.DrainEvery)
	}
	switch s.Pattern {
	case PatternCenter, PatternSweep, PatternRain:
	default:
		return fmt.Errorf("unknown spawn pattern %q", s.Pattern)
	}
	return nil
}

// Input returns the signals for frame. rng is only consulted by the rain
// pattern and must be separate from the world's own source.
func (s Script) Input(frame int, size core.Size, rng *core.RNG) core.Input {
	in := core.Input{Drain: s.DrainEvery > 0 && frame%s.DrainEvery == 0}
	if frame >= s.PourFrames {
		return in
	}
	in.Spawn = true
	in.Y = size.H / 8
	switch s.Pattern {
	case PatternSweep:
		// Back and forth across the top, one column per frame.
		period := max(2*(size.W-1), 1)
		pos := frame % period
		if pos >= size.W {
			pos = period - pos
		}
		in.X = pos
	case PatternRain:
		in.X = rng.IntN(size.W)
	default:
		in.X = size.W / 2
	}
	return in
}
