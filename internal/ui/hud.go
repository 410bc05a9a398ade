//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	GrainCount() int
	Frames() int
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	lines []hudLine
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the panel text from the simulation.
func (h *HUD) Update(paused, showBounds bool) {
	if h == nil || h.width <= 0 {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: h.title, header: true})
	if stats, ok := h.sim.(statsProvider); ok {
		h.lines = append(h.lines,
			hudLine{text: fmt.Sprintf("Grains  %d", stats.GrainCount())},
			hudLine{text: fmt.Sprintf("Frame   %d", stats.Frames())},
		)
	}
	if b, ok := h.sim.(boundsProvider); ok {
		minX, minY, maxX, maxY, ok := b.ActiveBounds()
		region := "empty"
		if ok {
			region = fmt.Sprintf("%d,%d..%d,%d", minX, minY, maxX, maxY)
		}
		h.lines = append(h.lines, hudLine{text: "Region  " + region})
	}
	h.lines = append(h.lines, hudLine{text: fmt.Sprintf("TPS     %.0f", ebiten.ActualTPS())})
	state := "running"
	if paused {
		state = "paused"
	}
	if showBounds {
		state += ", bounds"
	}
	h.lines = append(h.lines, hudLine{text: state})

	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.lines = append(h.lines, hudLine{}, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: p.Label + ": " + p.Value})
		}
		if group.Summary != "" {
			h.lines = append(h.lines, hudLine{text: group.Summary})
		}
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			clr = color.RGBA{R: 200, G: 200, B: 120, A: 255}
		}
		if line.text != "" {
			text.Draw(h.panel, line.text, face, panelPadding, y, clr)
		}
		y += lineHeight
		if y > height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 6
)
