package app

import (
	"testing"

	"sandfall/internal/core"
)

func TestPointerInput(t *testing.T) {
	size := core.Size{W: 100, H: 50}

	in := pointerInput(31, 17, 3, size, true, false)
	if !in.Spawn || in.X != 10 || in.Y != 5 || in.Drain {
		t.Fatalf("unexpected input %+v", in)
	}

	if in := pointerInput(310, 10, 3, size, true, true); in.Spawn || !in.Drain {
		t.Fatalf("cursor over the HUD must not spawn, got %+v", in)
	}
	if in := pointerInput(-1, 10, 1, size, true, false); in.Spawn {
		t.Fatalf("cursor left of the window must not spawn, got %+v", in)
	}
	if in := pointerInput(5, 5, 1, size, false, false); in.Spawn {
		t.Fatalf("no button, no spawn, got %+v", in)
	}
}
