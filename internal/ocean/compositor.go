package ocean

import (
	"math"

	"pixel-ocean/internal/render"
)

// Render composites the state into f. Each grid cell is a cell*cell block
// of pixels. An empty field renders nothing.
func Render(s *State, f *render.Frame, cell int, c Controls) {
	if s == nil || f == nil || s.Field.Empty() || cell <= 0 {
		return
	}
	t := s.Clock.Time
	slot := int(math.Floor(t * shimmerRate))

	field := s.Field
	cells := field.Cells()
	for y := 0; y < field.H; y++ {
		row := cells[y*field.W : (y+1)*field.W]
		for x, d := range row {
			col := depthColor(animatedDepth(d, x, y, t), x, y, slot)
			f.FillCell(x, y, cell, col)
		}
	}

	cv := canvas{f: f, cell: cell, t: t}
	for _, kind := range layerOrder {
		for _, feat := range s.Features {
			if feat.Kind() != kind {
				continue
			}
			cv.draw(feat)
		}
	}
	cv.drawBoat(s.Boat, c.BoatSize)
}

// canvas draws cell-aligned stencils into a frame.
type canvas struct {
	f    *render.Frame
	cell int
	t    float64
}

func (cv canvas) draw(f Feature) {
	switch ft := f.(type) {
	case *Kelp:
		cv.drawKelp(ft)
	case *Reef:
		cv.drawReef(ft)
	case *Rock:
		cv.drawRock(ft)
	case *Seaweed:
		cv.drawSeaweed(ft)
	case *Island:
		cv.drawIsland(ft)
	case *Fish:
		cv.drawFish(ft)
	case *Dolphin:
		cv.drawDolphin(ft)
	case *Jellyfish:
		cv.drawJellyfish(ft)
	}
}
