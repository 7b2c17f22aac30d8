package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"unicode"

	"pixel-ocean/internal/core"
)

// Source is what the control panel displays. Optional capabilities
// (controls, setters, triggers) are discovered by type assertion.
type Source interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// Panel holds the HUD's layout and interaction state. It knows nothing
// about drawing so it can be driven from tests.
type Panel struct {
	src   Source
	width int
	title string

	snapshot core.ParameterSnapshot
	controls []controlState
	triggers []triggerState

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	triggerer   core.TriggerProvider
}

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type triggerState struct {
	trigger core.Trigger
	rect    image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	triggerGap     = 8
	controlsTop    = panelPadding + headerBaseline + 14
)

// NewPanel builds a panel of the given width for src.
func NewPanel(src Source, width int) *Panel {
	if width < 0 {
		width = 0
	}
	p := &Panel{src: src, width: width, title: buildTitle(src)}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	if t, ok := src.(core.TriggerProvider); ok {
		p.triggerer = t
		for _, trig := range t.Triggers() {
			p.triggers = append(p.triggers, triggerState{trigger: trig})
		}
	}
	p.layout()
	return p
}

// Width is the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Title is the header line.
func (p *Panel) Title() string { return p.title }

// Refresh re-reads the snapshot from the source.
func (p *Panel) Refresh() {
	if p == nil || p.src == nil {
		return
	}
	p.snapshot = p.src.Parameters()
	for i := range p.controls {
		p.controls[i].refresh(p.snapshot)
	}
}

// Click handles a press at panel-local coordinates and reports whether it
// hit an enabled button.
func (p *Panel) Click(x, y int) bool {
	if p == nil {
		return false
	}
	for i := range p.controls {
		state := &p.controls[i]
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	for _, ts := range p.triggers {
		if pointInRect(x, y, ts.rect) && p.triggerer != nil {
			fired := p.triggerer.FireTrigger(ts.trigger.Key)
			p.Refresh()
			return fired
		}
	}
	return false
}

func (p *Panel) adjust(state *controlState, direction int) bool {
	if !p.canAdjust(state, direction) {
		return false
	}
	target, _ := state.target(direction)
	var ok bool
	switch state.control.Type {
	case core.ParamTypeInt:
		ok = p.intSetter.SetIntParameter(state.control.Key, int(math.Round(target)))
	case core.ParamTypeFloat:
		ok = p.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if ok {
		p.Refresh()
	}
	return ok
}

func (p *Panel) canAdjust(state *controlState, direction int) bool {
	if _, ok := state.target(direction); !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		return p.intSetter != nil
	case core.ParamTypeFloat:
		return p.floatSetter != nil
	}
	return false
}

func (p *Panel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
	top := controlsTop + len(p.controls)*lineHeight + triggerGap
	for i := range p.triggers {
		y := top + i*(buttonSize+triggerGap)
		p.triggers[i].rect = image.Rect(panelPadding, y, p.width-panelPadding, y+buttonSize)
	}
}

// target returns the clamped value one step in direction, or false when
// that step would not change anything.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	switch s.control.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	if math.Abs(target-s.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control.Step, parsed)
	default:
		return
	}
	s.hasValue = true
}

func buildTitle(src Source) string {
	if src == nil || src.Name() == "" {
		return "Controls"
	}
	name := []rune(src.Name())
	name[0] = unicode.ToUpper(name[0])
	return fmt.Sprintf("%s Controls", strings.TrimSpace(string(name)))
}

// formatFloat prints value with as many decimals as step needs, at least
// one and at most four.
func formatFloat(step, value float64) string {
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	for precision < 4 {
		scaled := step * math.Pow10(precision)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			break
		}
		precision++
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
