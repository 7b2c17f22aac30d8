//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the ocean.
//
//	1  depth field heatmap
//	2  creature motion vectors
//	3  status text
type Overlay struct {
	view OceanView

	showDepth  bool
	showMotion bool
	showStatus bool

	depthImg    *ebiten.Image
	depthBuf    []byte
	depthLevels []uint8

	pixel  *ebiten.Image
	arrows []arrow
}

// NewOverlay constructs a new overlay for view.
func NewOverlay(view OceanView) *Overlay {
	o := &Overlay{view: view}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update polls the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDepth = !o.showDepth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMotion = !o.showMotion
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.view == nil {
		return
	}
	cell := o.view.Controls().CellSize
	if o.showDepth {
		o.drawDepth(screen, cell)
	}
	if o.showMotion {
		o.drawMotion(screen, cell)
	}
	if o.showStatus {
		o.drawStatus(screen)
	}
}

func (o *Overlay) drawDepth(screen *ebiten.Image, cell int) {
	field := o.view.Field()
	if field.Empty() || cell <= 0 {
		return
	}
	total := field.W * field.H
	if o.depthImg == nil || o.depthImg.Bounds().Dx() != field.W || o.depthImg.Bounds().Dy() != field.H {
		if o.depthImg != nil {
			o.depthImg.Dispose()
		}
		o.depthImg = ebiten.NewImage(field.W, field.H)
		o.depthBuf = make([]byte, 4*total)
		o.depthLevels = make([]uint8, total)
	}
	FillDepthOverlay(o.depthBuf, o.depthLevels, field)
	o.depthImg.WritePixels(o.depthBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	screen.DrawImage(o.depthImg, op)
}

func (o *Overlay) drawMotion(screen *ebiten.Image, cell int) {
	o.arrows = motionArrows(o.arrows, o.view.MotionVectors(), cell)
	for _, a := range o.arrows {
		if a.calm {
			o.drawPoint(screen, a.x, a.y, a.radius*2, a.col)
			continue
		}
		o.drawLine(screen, a.tailX, a.tailY, a.bodyX, a.bodyY, a.thickness, a.col)
		o.drawLine(screen, a.tipX, a.tipY, a.leftX, a.leftY, a.thickness*0.85, a.col)
		o.drawLine(screen, a.tipX, a.tipY, a.rightX, a.rightY, a.thickness*0.85, a.col)
	}
}

func (o *Overlay) drawStatus(screen *ebiten.Image) {
	lines := statusLines(o.view)
	face := basicfont.Face7x13
	const lineStep = 16
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	o.drawRect(screen, 4, 4, float64(width+16), float64(len(lines)*lineStep+10), color.RGBA{A: 150})
	for i, l := range lines {
		text.Draw(screen, l, face, 12, 20+i*lineStep, color.RGBA{R: 235, G: 245, B: 255, A: 255})
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	o.drawRect(screen, x-size*0.5, y-size*0.5, size, size, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
