package render

import (
	"image/color"
	"testing"

	"langton/internal/core"
)

var testPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, A: 255},
}

func pixelAt(buf []byte, i int) color.RGBA {
	return color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
}

func TestFillPaletteClampsUnknownValues(t *testing.T) {
	buf := make([]byte, 4*3)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, testPalette)
	for i, want := range []color.RGBA{testPalette[0], testPalette[1], testPalette[2]} {
		if got := pixelAt(buf, i); got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestApplyUpdatesLastWriteWins(t *testing.T) {
	buf := make([]byte, 4*4)
	fillPaletteRGBA(buf, make([]uint8, 4), testPalette)

	painted := applyUpdates(buf, []core.CellUpdate{
		{Index: 1, Value: 0},
		{Index: 2, Value: 1},
		{Index: 2, Value: 2},
	}, testPalette)
	if !painted {
		t.Fatal("expected updates to paint")
	}
	if got := pixelAt(buf, 2); got != testPalette[2] {
		t.Fatalf("pixel 2 = %v, want marker color", got)
	}
	if got := pixelAt(buf, 3); got != testPalette[0] {
		t.Fatalf("untouched pixel 3 = %v", got)
	}
	if applyUpdates(buf, nil, testPalette) {
		t.Fatal("no updates should report nothing painted")
	}
}
