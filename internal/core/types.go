package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Input carries the per-frame user signals a front end collects. Spawn is
// false when no spawn was requested this frame.
type Input struct {
	Spawn bool
	X, Y  int
	Drain bool
}

// InputSink is implemented by sims that react to pointer and drain input. The
// input is consumed by the next Step.
type InputSink interface {
	SetInput(in Input)
}

// Factory constructs a Sim using an optional configuration map. Invalid
// configurations are reported before any frame runs.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Build looks up the named factory and constructs the sim.
func Build(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	sim, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}
	return sim, nil
}
