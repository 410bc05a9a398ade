package render

import (
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRowsPerBand keeps small grids on a single goroutine.
const minRowsPerBand = 64

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// Rows are split into bands converted concurrently; cells is only read.
func fillBinaryRGBA(buf []byte, cells []uint8, w int, on, off color.Color) {
	if w <= 0 || len(cells) == 0 {
		return
	}
	onPx := rgbaBytes(on)
	offPx := rgbaBytes(off)
	h := len(cells) / w

	bands := min(runtime.GOMAXPROCS(0), h/minRowsPerBand)
	if bands <= 1 {
		fillRows(buf, cells, w, 0, h, onPx, offPx)
		return
	}
	rowsPer := (h + bands - 1) / bands
	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += rowsPer {
		y1 := min(y0+rowsPer, h)
		g.Go(func() error {
			fillRows(buf, cells, w, y0, y1, onPx, offPx)
			return nil
		})
	}
	_ = g.Wait()
}

func fillRows(buf []byte, cells []uint8, w, y0, y1 int, on, off [4]byte) {
	for i := y0 * w; i < y1*w; i++ {
		px := off
		if cells[i] != 0 {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
