package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	for i, c := range cells {
		base := i * 4
		want := byte(0)
		if c != 0 {
			want = 255
		}
		if buf[base] != want || buf[base+1] != want || buf[base+2] != want {
			t.Fatalf("cell %d: rgb (%d,%d,%d), want uniform %d", i, buf[base], buf[base+1], buf[base+2], want)
		}
		if buf[base+3] != 255 {
			t.Fatalf("cell %d: alpha %d, want 255", i, buf[base+3])
		}
	}
}

func TestFillPaletteRGBAClamps(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 100, A: 255},
		{R: 200, A: 255},
	}
	cells := []uint8{0, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	if buf[0] != 0 {
		t.Fatalf("value 0 should map to palette[0], got r=%d", buf[0])
	}
	if buf[4] != 200 {
		t.Fatalf("value 2 should map to palette[2], got r=%d", buf[4])
	}
	if buf[8] != 200 {
		t.Fatalf("value past the palette should clamp to the last entry, got r=%d", buf[8])
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{1, 2}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}
