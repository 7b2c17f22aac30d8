package app

import "pixel-ocean/internal/core"

// Cursor is the boat's pointer source. Until the pointer has been seen
// inside the viewport it reports the viewport centre.
type Cursor struct {
	x, y float64
	seen bool
	view core.Size
}

// Observe records a pointer sample in viewport pixels. Samples outside the
// viewport keep the previous position.
func (c *Cursor) Observe(x, y int, view core.Size) {
	c.view = view
	if x < 0 || y < 0 || x >= view.W || y >= view.H {
		return
	}
	c.x, c.y = float64(x), float64(y)
	c.seen = true
}

// Pointer implements core.PointerSource.
func (c *Cursor) Pointer() (float64, float64) {
	if !c.seen {
		return float64(c.view.W) / 2, float64(c.view.H) / 2
	}
	return c.x, c.y
}
