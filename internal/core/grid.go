package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Occupied reports whether the in-bounds cell (x, y) holds a non-zero value.
func (g *ByteGrid) Occupied(x, y int) bool { return g.data[y*g.W+x] != 0 }

// Free reports whether (x, y) is inside the grid and empty.
func (g *ByteGrid) Free(x, y int) bool {
	return g.In(x, y) && g.data[y*g.W+x] == 0
}

// Set marks the in-bounds cell (x, y) occupied.
func (g *ByteGrid) Set(x, y int) { g.data[y*g.W+x] = 1 }

// Unset marks the in-bounds cell (x, y) empty.
func (g *ByteGrid) Unset(x, y int) { g.data[y*g.W+x] = 0 }

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
