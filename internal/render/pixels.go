package render

import (
	"image/color"

	"langton/internal/core"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}
	for i, c := range cells {
		setPixel(buf, i, paletteColor(palette, c))
	}
}

// applyUpdates paints each update into buf in order, so later updates to the
// same cell win. It reports whether anything was painted.
func applyUpdates(buf []byte, updates []core.CellUpdate, palette []color.RGBA) bool {
	if len(palette) == 0 {
		return false
	}
	for _, u := range updates {
		setPixel(buf, u.Index, paletteColor(palette, u.Value))
	}
	return len(updates) > 0
}

func paletteColor(palette []color.RGBA, v uint8) color.RGBA {
	idx := int(v)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
