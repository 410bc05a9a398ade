package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// from a loop that wakes up at its own cadence.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxSteps    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxSteps: 4}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Pending() > 0
}

// Pending returns how many ticks are due since the previous call, capped so a
// stalled loop does not try to catch up with a burst of frames.
func (f *FixedStep) Pending() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance feeds elapsed time into the accumulator and returns the number of
// ticks that became due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step && n < f.maxSteps {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxSteps && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
