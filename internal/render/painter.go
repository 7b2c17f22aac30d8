//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter keeps the last presented frame in an ebiten image and draws it
// to the screen. It implements core.Surface.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter. The backing image is created on the first
// Present so the painter follows viewport resizes.
func NewPainter() *Painter { return &Painter{} }

// Present uploads a full frame in one call.
func (p *Painter) Present(pix []byte, w, h int) {
	if w <= 0 || h <= 0 || len(pix) != 4*w*h {
		return
	}
	if p.img == nil || p.w != w || p.h != h {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(w, h)
		p.w, p.h = w, h
	}
	p.img.WritePixels(pix)
}

// Blit draws the last presented frame onto dst.
func (p *Painter) Blit(dst *ebiten.Image) {
	if p.img == nil {
		return
	}
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
