package render

import (
	"image"
	"image/color"

	"pixel-ocean/internal/core"
)

// Frame is an RGBA pixel buffer sized to the viewport. Pixels are stored
// row-major, 4 bytes each, so the whole buffer can be uploaded in one call.
type Frame struct {
	W, H int
	Pix  []byte
	row  []byte
}

// NewFrame allocates a frame of w*h pixels.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize reallocates the buffer when the dimensions change. Contents are
// cleared to transparent black.
func (f *Frame) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if f.W == w && f.H == h && f.Pix != nil {
		return
	}
	f.W, f.H = w, h
	f.Pix = make([]byte, 4*w*h)
}

// At returns the pixel at (x, y), or transparent black outside the frame.
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return color.RGBA{}
	}
	i := (y*f.W + x) * 4
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// FillRect writes an opaque w*h block with its top-left corner at (x, y),
// clipped to the frame. Rows are written with a single copy each.
func (f *Frame) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0, x1, y1 := f.clip(x, y, w, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	span := (x1 - x0) * 4
	if cap(f.row) < span {
		f.row = make([]byte, span)
	}
	row := f.row[:span]
	for i := 0; i < span; i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
	stride := f.W * 4
	for yy := y0; yy < y1; yy++ {
		base := yy*stride + x0*4
		copy(f.Pix[base:base+span], row)
	}
}

// FillCell writes the block covering grid cell (cx, cy).
func (f *Frame) FillCell(cx, cy, cell int, c color.RGBA) {
	f.FillRect(cx*cell, cy*cell, cell, cell, c)
}

// BlendRect composites a non-premultiplied colour over the existing pixels.
func (f *Frame) BlendRect(x, y, w, h int, c color.NRGBA) {
	if c.A == 255 {
		f.FillRect(x, y, w, h, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		return
	}
	if c.A == 0 {
		return
	}
	x0, y0, x1, y1 := f.clip(x, y, w, h)
	a := uint32(c.A)
	inv := 255 - a
	stride := f.W * 4
	for yy := y0; yy < y1; yy++ {
		base := yy*stride + x0*4
		for xx := x0; xx < x1; xx++ {
			f.Pix[base+0] = uint8((uint32(c.R)*a + uint32(f.Pix[base+0])*inv + 127) / 255)
			f.Pix[base+1] = uint8((uint32(c.G)*a + uint32(f.Pix[base+1])*inv + 127) / 255)
			f.Pix[base+2] = uint8((uint32(c.B)*a + uint32(f.Pix[base+2])*inv + 127) / 255)
			f.Pix[base+3] = 255
			base += 4
		}
	}
}

// BlendCell composites c over grid cell (cx, cy).
func (f *Frame) BlendCell(cx, cy, cell int, c color.NRGBA) {
	f.BlendRect(cx*cell, cy*cell, cell, cell, c)
}

// Present hands the buffer to the surface.
func (f *Frame) Present(s core.Surface) {
	if s == nil {
		return
	}
	s.Present(f.Pix, f.W, f.H)
}

// Image copies the frame into an *image.RGBA for encoding.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	copy(img.Pix, f.Pix)
	return img
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{W: f.W, H: f.H, Pix: make([]byte, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

func (f *Frame) clip(x, y, w, h int) (int, int, int, int) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.W {
		x1 = f.W
	}
	if y1 > f.H {
		y1 = f.H
	}
	return x0, y0, x1, y1
}

// FillPalette converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
