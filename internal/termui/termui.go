// Package termui runs the sand world inside a terminal using tcell. Each
// text cell shows two grid rows with half-block glyphs.
package termui

import (
	"context"
	"fmt"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

// frameInterval is how often the loop wakes to step and redraw.
const frameInterval = 16 * time.Millisecond

var (
	grainStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(194, 178, 128)).Background(tcell.ColorBlack)
	emptyStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	boundsBg    = tcell.NewRGBColor(90, 0, 0)
	drainBg     = tcell.ColorNavy
)

// GridSize returns the world dimensions that fill a cols*rows terminal while
// leaving the last row for the status line.
func GridSize(cols, rows int) (w, h int) {
	return max(cols, 1), max(rows-1, 1) * 2
}

// Terminal couples a tcell screen to a sand world.
type Terminal struct {
	screen tcell.Screen
	world  *sand.World
	step   *core.FixedStep

	mouseDown      bool
	mouseX, mouseY int

	drain      bool
	showBounds bool
	paused     bool
}

// New returns a Terminal drawing world on screen and stepping it tps times
// per second.
func New(screen tcell.Screen, world *sand.World, tps int) *Terminal {
	return &Terminal{screen: screen, world: world, step: core.NewFixedStep(tps)}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				t.drain = !t.drain
			case 'b':
				t.showBounds = !t.showBounds
			case 'p':
				t.paused = !t.paused
			case 'n':
				t.Tick()
			case 'r':
				t.world.Reset(0)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.mouseDown = ev.Buttons()&tcell.Button1 != 0
		t.mouseX, t.mouseY = x, y*2
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Input returns the signals for the next frame.
func (t *Terminal) Input() core.Input {
	return core.Input{
		Spawn: t.mouseDown,
		X:     t.mouseX,
		Y:     t.mouseY,
		Drain: t.drain,
	}
}

// Tick runs one frame with the current input.
func (t *Terminal) Tick() {
	t.world.SetInput(t.Input())
	t.world.Step()
}

// Draw renders the world and the status line.
func (t *Terminal) Draw() {
	size := t.world.Size()
	start, end, drainRow := t.world.DrainSpan()
	region := t.world.ActiveRegion()

	for row := 0; row*2 < size.H; row++ {
		top, bottom := row*2, row*2+1
		for x := 0; x < size.W; x++ {
			upper := t.world.Occupied(x, top)
			lower := t.world.Occupied(x, bottom)
			r := ' '
			switch {
			case upper && lower:
				r = '█'
			case upper:
				r = '▀'
			case lower:
				r = '▄'
			}
			style := emptyStyle
			if upper || lower {
				style = grainStyle
			}
			if (top == drainRow || bottom == drainRow) && x >= start && x <= end {
				style = style.Background(drainBg)
			}
			if t.showBounds && (onBorder(region, x, top) || onBorder(region, x, bottom)) {
				style = style.Background(boundsBg)
			}
			t.screen.SetContent(x, row, r, nil, style)
		}
	}
	t.drawStatus((size.H + 1) / 2)
	t.screen.Show()
}

func (t *Terminal) drawStatus(row int) {
	cols, _ := t.screen.Size()
	drain := "off"
	if t.drain {
		drain = "on"
	}
	status := fmt.Sprintf(" grains %d  frame %d  drain %s  [mouse] pour [space] drain [b] bounds [p] pause [r] reset [q] quit",
		t.world.GrainCount(), t.world.Frames(), drain)
	if t.paused {
		status = " PAUSED" + status
	}
	runes := []rune(status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, row, r, nil, statusStyle)
	}
}

func onBorder(r sand.Region, x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.MinX || x == r.MaxX || y == r.MinY || y == r.MaxY
}

// Run polls events and steps the world until the user quits or ctx ends.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			for n := t.step.Pending(); n > 0 && !t.paused; n-- {
				t.Tick()
			}
			t.Draw()
		}
	}
}
