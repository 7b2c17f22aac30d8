package core

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
// A zero-sized grid is valid and holds no cells.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewFloatGrid(w, h int) *FloatGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Empty reports whether the grid has no cells.
func (g *FloatGrid) Empty() bool { return g == nil || g.W*g.H == 0 }

// Size returns the grid dimensions.
func (g *FloatGrid) Size() Size { return Size{W: g.W, H: g.H} }
