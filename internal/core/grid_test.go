package core

import "testing"

func TestByteGridOccupancy(t *testing.T) {
	g := NewByteGrid(4, 3)

	if !g.Free(3, 2) {
		t.Fatal("fresh grid should be free everywhere")
	}
	if g.Free(4, 0) || g.Free(-1, 0) || g.Free(0, 3) {
		t.Fatal("out-of-bounds cells must never be free")
	}

	g.Set(1, 2)
	if !g.Occupied(1, 2) || g.Free(1, 2) {
		t.Fatal("expected (1,2) to be occupied after Set")
	}
	if got := g.Cells()[g.Index(1, 2)]; got != 1 {
		t.Fatalf("expected backing cell to read 1, got %d", got)
	}
	if g.Count() != 1 {
		t.Fatalf("expected one occupied cell, got %d", g.Count())
	}

	g.Unset(1, 2)
	if g.Occupied(1, 2) {
		t.Fatal("expected (1,2) to be empty after Unset")
	}

	g.Set(0, 0)
	g.Clear()
	if g.Count() != 0 {
		t.Fatalf("Clear should empty the grid, %d cells remain", g.Count())
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(170)
	b := NewRNG(170)
	for i := 0; i < 64; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of [0,1): %f", i, x)
		}
	}
}
