package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	sand := color.RGBA{R: 194, G: 178, B: 128, A: 255}

	fillBinaryRGBA(buf, cells, 2, sand, color.Black)

	want := []byte{
		0, 0, 0, 255,
		194, 178, 128, 255,
		194, 178, 128, 255,
		0, 0, 0, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillBinaryRGBABandsMatchSerial(t *testing.T) {
	const w, h = 37, 700
	cells := make([]uint8, w*h)
	for i := range cells {
		if (i*7)%5 == 0 {
			cells[i] = 1
		}
	}
	banded := make([]byte, 4*len(cells))
	fillBinaryRGBA(banded, cells, w, color.White, color.Black)

	serial := make([]byte, 4*len(cells))
	fillRows(serial, cells, w, 0, h, rgbaBytes(color.White), rgbaBytes(color.Black))

	for i := range serial {
		if banded[i] != serial[i] {
			t.Fatalf("byte %d differs: banded %d serial %d", i, banded[i], serial[i])
		}
	}
}
