package ocean

import (
	"strconv"

	"pixel-ocean/internal/core"
)

// Parameter and trigger keys understood by the control surface.
const (
	KeyAnimationSpeed = "animation_speed"
	KeyWaveSpeed      = "wave_speed"
	KeyFishSpeed      = "fish_speed"
	KeyDolphinSpeed   = "dolphin_speed"
	KeyBoatSpeed      = "boat_speed"
	KeyBoatSize       = "boat_size"
	KeyCellSize       = "cell_size"
	KeySeed           = "seed"

	TriggerRegenerate = "regenerate"
	TriggerPause      = "pause"
)

// Parameters reports the current tunables for display.
func (r *Renderer) Parameters() core.ParameterSnapshot {
	c := r.controls
	counts := CountKinds(r.state.Features)
	groups := []core.ParameterGroup{
		{
			Name: "Viewport",
			Params: []core.Parameter{
				intParam("w", "Width", r.viewport.W),
				intParam("h", "Height", r.viewport.H),
				intParam("cols", "Columns", r.state.Cols),
				intParam("rows", "Rows", r.state.Rows),
				intParam(KeyCellSize, "Pixel size", c.CellSize),
				int64Param(KeySeed, "Seed", r.seed),
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				floatParam(KeyAnimationSpeed, "Animation speed", c.AnimationSpeed),
				floatParam(KeyWaveSpeed, "Wave speed", c.WaveSpeed),
				floatParam(KeyFishSpeed, "Fish speed", c.FishSpeed),
				floatParam(KeyDolphinSpeed, "Dolphin speed", c.DolphinSpeed),
				floatParam(KeyBoatSpeed, "Boat speed", c.BoatSpeed),
				floatParam(KeyBoatSize, "Boat size", c.BoatSize),
				boolParam(TriggerPause, "Paused", r.paused),
			},
		},
		{
			Name: "Features",
			Params: []core.Parameter{
				intParam("islands", "Islands", counts[KindIsland]),
				intParam("reefs", "Reefs", counts[KindReef]),
				intParam("rocks", "Rocks", counts[KindRock]),
				intParam("seaweed", "Seaweed", counts[KindSeaweed]),
				intParam("kelp", "Kelp", counts[KindKelp]),
				intParam("fish", "Fish", counts[KindFish]),
				intParam("dolphins", "Dolphins", counts[KindDolphin]),
				intParam("jellyfish", "Jellyfish", counts[KindJellyfish]),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (r *Renderer) ParameterControls() []core.ParameterControl {
	speed := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		speed(KeyAnimationSpeed, "Animation"),
		speed(KeyWaveSpeed, "Waves"),
		speed(KeyFishSpeed, "Fish"),
		speed(KeyDolphinSpeed, "Dolphins"),
		speed(KeyBoatSpeed, "Boat speed"),
		{
			Key: KeyBoatSize, Label: "Boat size", Type: core.ParamTypeFloat,
			Step: 0.25, Min: minBoatSize, Max: 4, HasMin: true, HasMax: true,
		},
		{
			Key: KeyCellSize, Label: "Pixel size", Type: core.ParamTypeInt,
			Step: 1, Min: minCellSize, Max: maxCellSize, HasMin: true, HasMax: true,
		},
	}
}

// SetFloatParameter updates a multiplier. Values are clamped rather than
// rejected.
func (r *Renderer) SetFloatParameter(key string, value float64) bool {
	c := r.controls
	switch key {
	case KeyAnimationSpeed:
		c.AnimationSpeed = value
	case KeyWaveSpeed:
		c.WaveSpeed = value
	case KeyFishSpeed:
		c.FishSpeed = value
	case KeyDolphinSpeed:
		c.DolphinSpeed = value
	case KeyBoatSpeed:
		c.BoatSpeed = value
	case KeyBoatSize:
		c.BoatSize = value
	default:
		return false
	}
	r.SetControls(c)
	return true
}

// SetIntParameter updates the cell size or reseeds.
func (r *Renderer) SetIntParameter(key string, value int) bool {
	switch key {
	case KeyCellSize:
		c := r.controls
		c.CellSize = value
		r.SetControls(c)
		return true
	case KeySeed:
		r.Reset(int64(value))
		return true
	}
	return false
}

// Triggers lists the one-shot actions.
func (r *Renderer) Triggers() []core.Trigger {
	return []core.Trigger{
		{Key: TriggerRegenerate, Label: "Regenerate"},
		{Key: TriggerPause, Label: "Pause / resume"},
	}
}

// FireTrigger runs the action registered under key.
func (r *Renderer) FireTrigger(key string) bool {
	switch key {
	case TriggerRegenerate:
		r.Regenerate()
	case TriggerPause:
		r.TogglePause()
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
