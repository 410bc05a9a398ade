//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type boundsProvider interface {
	ActiveBounds() (minX, minY, maxX, maxY int, ok bool)
}

type drainProvider interface {
	DrainSpan() (start, end, row int)
}

var (
	boundsColor = color.RGBA{R: 255, A: 255}
	drainColor  = color.RGBA{R: 70, G: 140, B: 255, A: 255}
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim        core.Sim
	scale      int
	showBounds bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// ShowingBounds reports whether the active-region box is drawn.
func (o *Overlay) ShowingBounds() bool { return o.showBounds }

// Update toggles the bounds box on B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBounds = !o.showBounds
	}
}

// Draw paints the drain opening and, when enabled, the active region.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.scale)
	if d, ok := o.sim.(drainProvider); ok {
		start, end, row := d.DrainSpan()
		y := (float32(row) + 0.5) * s
		vector.StrokeLine(screen, float32(start)*s, y, float32(end+1)*s, y, max(1, s/2), drainColor, false)
	}
	if !o.showBounds {
		return
	}
	b, ok := o.sim.(boundsProvider)
	if !ok {
		return
	}
	minX, minY, maxX, maxY, ok := b.ActiveBounds()
	if !ok {
		return
	}
	x := float32(minX) * s
	y := float32(minY) * s
	w := float32(maxX-minX+1) * s
	h := float32(maxY-minY+1) * s
	vector.StrokeRect(screen, x, y, w, h, 1, boundsColor, false)
}
