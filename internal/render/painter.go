//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"langton/internal/core"
)

// GridPainter keeps one pixel per cell and uploads it to a GPU image only
// when cells changed.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	dirty   bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
		dirty:   true,
	}
}

// Sync repaints every cell from the display buffer.
func (gp *GridPainter) Sync(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.dirty = true
}

// Apply paints only the cells named by updates.
func (gp *GridPainter) Apply(updates []core.CellUpdate) {
	if applyUpdates(gp.buf, updates, gp.palette) {
		gp.dirty = true
	}
}

// Draw uploads pending changes and draws the grid scaled by cellSize.
func (gp *GridPainter) Draw(dst *ebiten.Image, cellSize int) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
