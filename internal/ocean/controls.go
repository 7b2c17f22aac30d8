package ocean

import "math"

const (
	minCellSize = 2
	maxCellSize = 64
	minBoatSize = 0.25
)

// Controls are the externally adjustable animation parameters read by the
// simulation step and compositor on every tick.
type Controls struct {
	AnimationSpeed float64
	WaveSpeed      float64
	FishSpeed      float64
	DolphinSpeed   float64
	BoatSpeed      float64
	BoatSize       float64
	CellSize       int
}

// DefaultControls returns unit multipliers and 8px cells.
func DefaultControls() Controls {
	return Controls{
		AnimationSpeed: 1,
		WaveSpeed:      1,
		FishSpeed:      1,
		DolphinSpeed:   1,
		BoatSpeed:      1,
		BoatSize:       1,
		CellSize:       8,
	}
}

// Sanitize clamps every field into its usable range.
func (c Controls) Sanitize() Controls {
	c.AnimationSpeed = nonNegative(c.AnimationSpeed)
	c.WaveSpeed = nonNegative(c.WaveSpeed)
	c.FishSpeed = nonNegative(c.FishSpeed)
	c.DolphinSpeed = nonNegative(c.DolphinSpeed)
	c.BoatSpeed = nonNegative(c.BoatSpeed)
	c.BoatSize = nonNegative(c.BoatSize)
	if c.BoatSize < minBoatSize {
		c.BoatSize = minBoatSize
	}
	if c.CellSize < minCellSize {
		c.CellSize = minCellSize
	}
	if c.CellSize > maxCellSize {
		c.CellSize = maxCellSize
	}
	return c
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat32
	}
	return v
}
