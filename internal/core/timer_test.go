package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)

	if got := fs.Advance(0); got != 1 {
		t.Fatalf("expected the primed first tick, got %d", got)
	}
	if got := fs.Advance(50 * time.Millisecond); got != 0 {
		t.Fatalf("half a step should not tick, got %d", got)
	}
	if got := fs.Advance(60 * time.Millisecond); got != 1 {
		t.Fatalf("expected one tick after a full step, got %d", got)
	}
	if got := fs.Advance(10 * time.Second); got != 4 {
		t.Fatalf("expected catch-up to be capped at 4, got %d", got)
	}
	if got := fs.Advance(0); got != 0 {
		t.Fatalf("expected backlog to be dropped after the cap, got %d", got)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got step %v", fs.step)
	}
}
