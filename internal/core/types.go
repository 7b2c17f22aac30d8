package core

// Size describes the dimensions of a grid or viewport.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// CeilDiv returns the number of cells of the given size needed to cover the
// viewport, rounding up on both axes.
func (s Size) CeilDiv(cell int) Size {
	if cell <= 0 || s.Empty() {
		return Size{}
	}
	return Size{W: (s.W + cell - 1) / cell, H: (s.H + cell - 1) / cell}
}

// Surface receives a finished RGBA frame once per tick. pix is row-major
// with 4 bytes per pixel and w*h pixels.
type Surface interface {
	Present(pix []byte, w, h int)
}

// PointerSource reports the latest pointer position in viewport pixels.
type PointerSource interface {
	Pointer() (x, y float64)
}

// PointerFunc adapts a plain function to PointerSource.
type PointerFunc func() (float64, float64)

// Pointer implements PointerSource.
func (f PointerFunc) Pointer() (float64, float64) { return f() }

// FixedPointer is a PointerSource that never moves.
type FixedPointer struct{ X, Y float64 }

// Pointer implements PointerSource.
func (p FixedPointer) Pointer() (float64, float64) { return p.X, p.Y }

// DiscardSurface drops every frame.
type DiscardSurface struct{}

// Present implements Surface.
func (DiscardSurface) Present([]byte, int, int) {}
