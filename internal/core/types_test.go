package core

import (
	"errors"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string { return "stub" }
func (stubSim) Size() Size { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64) {}
func (stubSim) Step() {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestBuildReportsUnknownAndFactoryErrors(t *testing.T) {
	errBad := errors.New("bad config")
	Register("stub-ok", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("stub-bad", func(map[string]string) (Sim, error) { return nil, errBad })

	if _, err := Build("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
	if _, err := Build("stub-bad", nil); !errors.Is(err, errBad) {
		t.Fatalf("expected wrapped factory error, got %v", err)
	}
	sim, err := Build("stub-ok", nil)
	if err != nil || sim.Name() != "stub" {
		t.Fatalf("expected stub sim, got %v, %v", sim, err)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "10"}}},
		{Name: "B", Params: []Parameter{{Key: "h", Value: "20"}}},
	}}
	p, ok := snap.Lookup("h")
	if !ok || p.Value != "20" {
		t.Fatalf("expected h=20, got %+v (ok=%v)", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key should fail")
	}
}
