package sand

// Region is an inclusive axis-aligned box over cell coordinates. The zero
// value is the empty region.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int

	set bool
}

// RegionOf returns the box [minX,maxX] x [minY,maxY], or the empty region
// when either range is inverted.
func RegionOf(minX, minY, maxX, maxY int) Region {
	if minX > maxX || minY > maxY {
		return Region{}
	}
	return Region{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, set: true}
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool { return !r.set }

// Include grows the region to cover (x, y).
func (r *Region) Include(x, y int) {
	if !r.set {
		*r = Region{MinX: x, MinY: y, MaxX: x, MaxY: y, set: true}
		return
	}
	r.MinX = min(r.MinX, x)
	r.MinY = min(r.MinY, y)
	r.MaxX = max(r.MaxX, x)
	r.MaxY = max(r.MaxY, y)
}

// Contains reports whether (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return r.set && x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Union returns the smallest region covering both r and o.
func (r Region) Union(o Region) Region {
	if !o.set {
		return r
	}
	if !r.set {
		return o
	}
	return Region{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
		set:  true,
	}
}

// Expand grows the region by margin cells on every side and clamps it to a
// w*h grid.
func (r Region) Expand(margin, w, h int) Region {
	if !r.set {
		return r
	}
	return RegionOf(r.MinX-margin, r.MinY-margin, r.MaxX+margin, r.MaxY+margin).Clamp(w, h)
}

// Clamp intersects the region with a w*h grid.
func (r Region) Clamp(w, h int) Region {
	if !r.set {
		return r
	}
	return RegionOf(max(r.MinX, 0), max(r.MinY, 0), min(r.MaxX, w-1), min(r.MaxY, h-1))
}

// Area returns the number of cells covered.
func (r Region) Area() int {
	if !r.set {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}
