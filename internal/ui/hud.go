//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{R: 12, G: 22, B: 34, A: 255}
	hudTitle      = color.RGBA{R: 200, G: 225, B: 240, A: 255}
	hudLabel      = color.RGBA{R: 220, G: 230, B: 236, A: 255}
	hudMuted      = color.RGBA{R: 140, G: 155, B: 170, A: 255}
)

// HUD renders the control panel to the right of the ocean view.
type HUD struct {
	panel *Panel
	img   *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src. A zero width disables the panel.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{panel: NewPanel(src, width)}
	if h.panel.Width() > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width is the horizontal space the HUD occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.panel.Width()
}

// Update refreshes values and handles clicks. panelOffsetX is the screen x
// of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.panel.Width() <= 0 {
		return
	}
	h.panel.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return
	}
	h.panel.Click(mx-panelOffsetX, my)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.panel.Width() <= 0 || height <= 0 {
		return
	}
	w := h.panel.Width()
	if h.img == nil || h.img.Bounds().Dx() != w || h.img.Bounds().Dy() != height {
		if h.img != nil {
			h.img.Dispose()
		}
		h.img = ebiten.NewImage(w, height)
	}
	h.img.Fill(hudBackground)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	p := h.panel
	headerY := panelPadding + headerBaseline
	text.Draw(h.img, p.Title(), face, panelPadding, headerY, hudTitle)
	if len(p.controls) == 0 && len(p.triggers) == 0 {
		text.Draw(h.img, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, hudMuted)
		return
	}
	for i := range p.controls {
		state := &p.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.img, state.control.Label, face, panelPadding, y, hudLabel)

		valueColor := hudLabel
		if !state.hasValue {
			valueColor = hudMuted
		}
		width := text.BoundString(face, state.value).Dx()
		text.Draw(h.img, state.value, face, state.minusRect.Min.X-buttonGap-width, y, valueColor)

		h.drawButton(state.minusRect, "-", p.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", p.canAdjust(state, 1))
	}
	for _, ts := range p.triggers {
		h.drawButton(ts.rect, ts.trigger.Label, p.triggerer != nil)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 38, G: 62, B: 84, A: 255}
	fg := color.RGBA{R: 230, G: 240, B: 246, A: 255}
	if !enabled {
		bg = color.RGBA{R: 24, G: 36, B: 48, A: 255}
		fg = color.RGBA{R: 110, G: 125, B: 140, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
