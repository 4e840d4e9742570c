//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"langton/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type controlProvider interface {
	ParameterControls() []core.ParameterControl
	core.IntParameterSetter
}

// HUD draws a translucent status panel over the top-left corner of the grid.
// Adjustable controls get +/- buttons; everything else is read-only.
type HUD struct {
	sim      core.Sim
	controls controlProvider
	values   func() map[string]int
	visible  bool

	width int
	panel *ebiten.Image
	pixel *ebiten.Image
	lines []string
	rows  []hudControlRow
}

type hudControlRow struct {
	control   core.ParameterControl
	value     int
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for sim. values reports the current value of every
// adjustable control keyed by parameter key.
func NewHUD(sim core.Sim, controls controlProvider, values func() map[string]int) *HUD {
	h := &HUD{sim: sim, controls: controls, values: values, visible: true, width: panelWidth}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if controls != nil {
		for _, ctrl := range controls.ParameterControls() {
			h.rows = append(h.rows, hudControlRow{control: ctrl})
		}
	}
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached text and handles button clicks.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, fmt.Sprintf("%s  TPS %.0f  FPS %.0f", h.sim.Name(), ebiten.ActualTPS(), ebiten.ActualFPS()))
	if provider, ok := h.sim.(parameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, p := range group.Params {
				h.lines = append(h.lines, fmt.Sprintf("%-15s %s", p.Label, p.Value))
			}
		}
	}
	h.layoutControls()
	if h.values != nil {
		vals := h.values()
		for i := range h.rows {
			h.rows[i].value = vals[h.rows[i].control.Key]
		}
	}
	h.handleInput()
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	height := controlsTop(len(h.lines)) + len(h.rows)*lineHeight + panelPadding
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+headerBaseline+i*textLine, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	for _, row := range h.rows {
		text.Draw(h.panel, row.control.Label, face, panelPadding, row.top+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		value := strconv.Itoa(row.value)
		valueX := row.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, row.top+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		h.drawButton(row.minusRect, "-", !row.control.HasMin || row.value > row.control.Min)
		h.drawButton(row.plusRect, "+", true)
	}
	screen.DrawImage(h.panel, nil)
}

func (h *HUD) handleInput() {
	if len(h.rows) == 0 || h.controls == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for _, row := range h.rows {
		pt := image.Pt(mx, my)
		switch {
		case pt.In(row.minusRect):
			h.controls.SetIntParameter(row.control.Key, row.value-row.control.Step)
			return
		case pt.In(row.plusRect):
			h.controls.SetIntParameter(row.control.Key, row.value+row.control.Step)
			return
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	top0 := controlsTop(len(h.lines))
	for i := range h.rows {
		top := top0 + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.rows[i].top = top
		h.rows[i].minusRect = minusRect
		h.rows[i].plusRect = plusRect
	}
}

func controlsTop(lines int) int {
	return panelPadding + headerBaseline + lines*textLine
}

const (
	panelWidth     = 260
	panelPadding   = 12
	textLine       = 16
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 4
	labelBaseline  = 20
)
