package ui

import (
	"image"
	"math"
	"testing"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
)

func newRenderer(t *testing.T) *ocean.Renderer {
	t.Helper()
	cfg := ocean.DefaultConfig()
	cfg.Width, cfg.Height = 96, 64
	return ocean.New(cfg, nil, nil)
}

func centre(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func controlIndex(t *testing.T, p *Panel, key string) int {
	t.Helper()
	for i, c := range p.controls {
		if c.control.Key == key {
			return i
		}
	}
	t.Fatalf("control %q not on panel", key)
	return -1
}

func TestPanelAdjustsFloatControl(t *testing.T) {
	r := newRenderer(t)
	p := NewPanel(r, 240)
	p.Refresh()
	i := controlIndex(t, p, ocean.KeyFishSpeed)
	if p.controls[i].value != "1.0" {
		t.Fatalf("fish speed shown as %q", p.controls[i].value)
	}
	if !p.Click(centre(p.controls[i].plusRect)) {
		t.Fatal("plus click not handled")
	}
	if got := r.Controls().FishSpeed; math.Abs(got-1.1) > 1e-9 {
		t.Fatalf("fish speed = %f, want 1.1", got)
	}
	if p.controls[i].value != "1.1" {
		t.Fatalf("panel not refreshed: %q", p.controls[i].value)
	}
}

func TestPanelRespectsBounds(t *testing.T) {
	r := newRenderer(t)
	p := NewPanel(r, 240)
	p.Refresh()
	i := controlIndex(t, p, ocean.KeyBoatSize)
	for n := 0; n < 10; n++ {
		p.Click(centre(p.controls[i].minusRect))
	}
	if got := r.Controls().BoatSize; got != 0.25 {
		t.Fatalf("boat size = %f, want lower bound 0.25", got)
	}
	if p.canAdjust(&p.controls[i], -1) {
		t.Fatal("minus should be disabled at the lower bound")
	}
	if p.controls[i].value != "0.25" {
		t.Fatalf("boat size shown as %q", p.controls[i].value)
	}
}

func TestPanelAdjustsIntControl(t *testing.T) {
	r := newRenderer(t)
	p := NewPanel(r, 240)
	p.Refresh()
	i := controlIndex(t, p, ocean.KeyCellSize)
	p.Click(centre(p.controls[i].plusRect))
	if r.Controls().CellSize != 9 {
		t.Fatalf("cell size = %d, want 9", r.Controls().CellSize)
	}
	if r.GridSize() != (core.Size{W: 11, H: 8}) {
		t.Fatalf("grid = %v after cell change", r.GridSize())
	}
}

func TestPanelFiresTriggers(t *testing.T) {
	r := newRenderer(t)
	p := NewPanel(r, 240)
	p.Refresh()
	var pause, regen image.Rectangle
	for _, ts := range p.triggers {
		switch ts.trigger.Key {
		case ocean.TriggerPause:
			pause = ts.rect
		case ocean.TriggerRegenerate:
			regen = ts.rect
		}
	}
	if pause.Empty() || regen.Empty() {
		t.Fatal("trigger buttons not laid out")
	}
	if !p.Click(centre(pause)) || !r.Paused() {
		t.Fatal("pause button did not pause")
	}
	if !p.Click(centre(regen)) || r.Generations() != 2 {
		t.Fatalf("regenerate button: generations = %d", r.Generations())
	}
	if p.Click(2, 2) {
		t.Fatal("click outside buttons reported as handled")
	}
}

type readOnlySource struct{}

func (readOnlySource) Name() string                      { return "" }
func (readOnlySource) Parameters() core.ParameterSnapshot { return core.ParameterSnapshot{} }

func TestPanelWithoutCapabilities(t *testing.T) {
	p := NewPanel(readOnlySource{}, 200)
	p.Refresh()
	if len(p.controls) != 0 || len(p.triggers) != 0 {
		t.Fatal("read-only source should expose nothing adjustable")
	}
	if p.Title() != "Controls" {
		t.Fatalf("title = %q", p.Title())
	}
}

func TestPanelTitle(t *testing.T) {
	if got := NewPanel(newRenderer(t), 100).Title(); got != "Pixel ocean Controls" {
		t.Fatalf("title = %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		step, value float64
		want        string
	}{
		{0.1, 1, "1.0"},
		{0.25, 0.75, "0.75"},
		{0.001, 0.5, "0.500"},
		{0, 2, "2.00"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.step, tc.value); got != tc.want {
			t.Fatalf("formatFloat(%v, %v) = %q, want %q", tc.step, tc.value, got, tc.want)
		}
	}
}
