package ocean

import (
	"math"
	"strconv"
)

// CountRange is an inclusive [Min, Max] range for randomly drawn counts.
type CountRange struct {
	Min int
	Max int
}

func (c CountRange) normalized() CountRange {
	if c.Min < 0 {
		c.Min = 0
	}
	if c.Max < c.Min {
		c.Max = c.Min
	}
	return c
}

// FieldParams tunes depth field generation.
type FieldParams struct {
	Seeds         CountRange
	Currents      CountRange
	CurrentPoints CountRange
	SeedRadiusMin float64
	// SeedRadiusSpan is the extra radius range as a fraction of max(cols, rows).
	SeedRadiusSpan  float64
	CurrentStepMin  float64
	CurrentStepMax  float64
	CurrentJitter   float64
	CurrentStrength [2]float64
	CaptureRadius   float64
	Noise           float64
}

// FeatureParams holds the per-kind count ranges.
type FeatureParams struct {
	Islands   CountRange
	Reefs     CountRange
	Rocks     CountRange
	Seaweed   CountRange
	Kelp      CountRange
	Fish      CountRange
	Dolphins  CountRange
	Jellyfish CountRange
}

// MotionParams tunes the simulation step.
type MotionParams struct {
	// BaseRate is the clock advance per frame at unit wave speed.
	BaseRate float64
	// MaxFrameDelta bounds dt, in frames, before multipliers apply.
	MaxFrameDelta float64

	FishTurnChance      float64
	DolphinTurnChance   float64
	JellyfishTurnChance float64
	TurnJitter          float64
	WrapMargin          float64

	// BoatSpeed is in pixels per frame.
	BoatSpeed     float64
	StopThreshold float64
}

// Config controls the ocean renderer.
type Config struct {
	Width  int
	Height int

	Seed int64

	Field    FieldParams
	Features FeatureParams
	Motion   MotionParams
	Controls Controls
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Seed:   1337,
		Field: FieldParams{
			Seeds:           CountRange{Min: 20, Max: 50},
			Currents:        CountRange{Min: 5, Max: 15},
			CurrentPoints:   CountRange{Min: 10, Max: 30},
			SeedRadiusMin:   8,
			SeedRadiusSpan:  0.35,
			CurrentStepMin:  2,
			CurrentStepMax:  4,
			CurrentJitter:   0.35,
			CurrentStrength: [2]float64{0.3, 0.8},
			CaptureRadius:   15,
			Noise:           0.075,
		},
		Features: FeatureParams{
			Islands:   CountRange{Min: 2, Max: 5},
			Reefs:     CountRange{Min: 5, Max: 12},
			Rocks:     CountRange{Min: 6, Max: 14},
			Seaweed:   CountRange{Min: 15, Max: 35},
			Kelp:      CountRange{Min: 6, Max: 16},
			Fish:      CountRange{Min: 20, Max: 50},
			Dolphins:  CountRange{Min: 2, Max: 6},
			Jellyfish: CountRange{Min: 5, Max: 12},
		},
		Motion: MotionParams{
			BaseRate:            0.016,
			MaxFrameDelta:       6,
			FishTurnChance:      0.02,
			DolphinTurnChance:   0.03,
			JellyfishTurnChance: 0.03,
			TurnJitter:          0.6,
			WrapMargin:          5,
			BoatSpeed:           3,
			StopThreshold:       5,
		},
		Controls: DefaultControls(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Controls.CellSize = parsed
		}
	}

	floats := map[string]*float64{
		"animation_speed":       &c.Controls.AnimationSpeed,
		"wave_speed":            &c.Controls.WaveSpeed,
		"fish_speed":            &c.Controls.FishSpeed,
		"dolphin_speed":         &c.Controls.DolphinSpeed,
		"boat_speed":            &c.Controls.BoatSpeed,
		"boat_size":             &c.Controls.BoatSize,
		"capture_radius":        &c.Field.CaptureRadius,
		"field_noise":           &c.Field.Noise,
		"fish_turn_chance":      &c.Motion.FishTurnChance,
		"dolphin_turn_chance":   &c.Motion.DolphinTurnChance,
		"jellyfish_turn_chance": &c.Motion.JellyfishTurnChance,
		"wrap_margin":           &c.Motion.WrapMargin,
		"boat_base_speed":       &c.Motion.BoatSpeed,
		"stop_threshold":        &c.Motion.StopThreshold,
		"max_frame_delta":       &c.Motion.MaxFrameDelta,
	}
	// A zero frame delta would disable the clamp.
	positiveOnly := map[string]bool{"max_frame_delta": true}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
			continue
		}
		if parsed == 0 && positiveOnly[key] {
			continue
		}
		*dst = parsed
	}

	counts := map[string]*CountRange{
		"seeds":          &c.Field.Seeds,
		"currents":       &c.Field.Currents,
		"current_points": &c.Field.CurrentPoints,
		"islands":        &c.Features.Islands,
		"reefs":          &c.Features.Reefs,
		"rocks":          &c.Features.Rocks,
		"seaweed":        &c.Features.Seaweed,
		"kelp":           &c.Features.Kelp,
		"fish":           &c.Features.Fish,
		"dolphins":       &c.Features.Dolphins,
		"jellyfish":      &c.Features.Jellyfish,
	}
	for key, dst := range counts {
		if v, ok := cfg[key+"_min"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				dst.Min = parsed
			}
		}
		if v, ok := cfg[key+"_max"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				dst.Max = parsed
			}
		}
		*dst = dst.normalized()
	}

	c.Controls = c.Controls.Sanitize()
	return c
}
