package render

import (
	"image/color"
	"testing"
)

func TestFillCellClipsToFrame(t *testing.T) {
	f := NewFrame(10, 10)
	red := color.RGBA{R: 255, A: 255}
	f.FillCell(2, 2, 4, red)

	if got := f.At(9, 9); got != red {
		t.Fatalf("pixel (9,9) = %v, want %v", got, red)
	}
	if got := f.At(7, 7); got != (color.RGBA{}) {
		t.Fatalf("pixel (7,7) should be untouched, got %v", got)
	}
	// Entirely outside: must not panic.
	f.FillCell(5, 5, 4, red)
	f.FillRect(-20, -20, 5, 5, red)
}

func TestBlendRectMixesColors(t *testing.T) {
	f := NewFrame(2, 1)
	f.FillRect(0, 0, f.W, f.H, color.RGBA{B: 200, A: 255})
	f.BlendRect(0, 0, 1, 1, color.NRGBA{R: 255, A: 128})

	got := f.At(0, 0)
	if got.R < 120 || got.R > 135 {
		t.Fatalf("blended red = %d, want about half", got.R)
	}
	if got.B < 95 || got.B > 105 {
		t.Fatalf("blended blue = %d, want about half of 200", got.B)
	}
	if other := f.At(1, 0); other != (color.RGBA{B: 200, A: 255}) {
		t.Fatalf("neighbour pixel changed: %v", other)
	}
}

type recordingSurface struct {
	calls int
	w, h  int
}

func (r *recordingSurface) Present(pix []byte, w, h int) {
	r.calls++
	r.w, r.h = w, h
}

func TestPresentForwardsDimensions(t *testing.T) {
	f := NewFrame(4, 3)
	s := &recordingSurface{}
	f.Present(s)
	if s.calls != 1 || s.w != 4 || s.h != 3 {
		t.Fatalf("surface saw calls=%d size=%dx%d", s.calls, s.w, s.h)
	}
}

func TestFillPaletteClampsIndex(t *testing.T) {
	buf := make([]byte, 8)
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	FillPalette(buf, []uint8{0, 9}, palette)
	if buf[0] != 1 || buf[4] != 2 {
		t.Fatalf("unexpected palette fill %v", buf)
	}
}

func TestImageCopiesPixels(t *testing.T) {
	f := NewFrame(3, 2)
	blue := color.RGBA{B: 200, A: 255}
	f.FillRect(1, 1, 1, 1, blue)
	img := f.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != blue {
		t.Fatalf("pixel = %v, want %v", got, blue)
	}
	f.FillRect(0, 0, f.W, f.H, color.RGBA{})
	if img.RGBAAt(1, 1) != blue {
		t.Fatal("image should not alias the frame buffer")
	}
}
