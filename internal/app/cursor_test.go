package app

import (
	"testing"

	"pixel-ocean/internal/core"
)

func TestCursorDefaultsToCentre(t *testing.T) {
	var c Cursor
	c.Observe(-1, -1, core.Size{W: 200, H: 100})
	if x, y := c.Pointer(); x != 100 || y != 50 {
		t.Fatalf("pointer = (%v,%v), want centre (100,50)", x, y)
	}
}

func TestCursorKeepsLastInsideSample(t *testing.T) {
	var c Cursor
	view := core.Size{W: 200, H: 100}
	c.Observe(30, 40, view)
	c.Observe(250, 40, view)
	if x, y := c.Pointer(); x != 30 || y != 40 {
		t.Fatalf("pointer = (%v,%v), want (30,40)", x, y)
	}
}
