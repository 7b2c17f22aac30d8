package ocean

import (
	"math"
	"math/rand/v2"

	"pixel-ocean/internal/core"
	rng "pixel-ocean/pkg/core"
)

// Clock is the global animation time.
type Clock struct {
	Time float64
}

// State is everything the compositor reads: the static field, the feature
// collection, the boat and the clock.
type State struct {
	Cols, Rows int
	Field      *core.FloatGrid
	Features   []Feature
	Boat       Boat
	Clock      Clock
}

// Step advances the state by dt frames (dt = 1 is one 60 Hz frame).
// target is the pointer position in pixels.
func Step(s *State, dt float64, target Vec, c Controls, p MotionParams, r *rand.Rand) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	if p.MaxFrameDelta > 0 && dt > p.MaxFrameDelta {
		dt = p.MaxFrameDelta
	}
	dt *= c.AnimationSpeed

	s.Clock.Time += p.BaseRate * c.WaveSpeed * dt

	cols, rows := float64(s.Cols), float64(s.Rows)
	for _, f := range s.Features {
		switch ft := f.(type) {
		case *Fish:
			ft.advance(dt*c.FishSpeed, p.FishTurnChance, p.TurnJitter, r)
			ft.wrap(cols, rows, p.WrapMargin)
		case *Dolphin:
			ft.advance(dt*c.DolphinSpeed, p.DolphinTurnChance, p.TurnJitter, r)
			ft.wrap(cols, rows, p.WrapMargin)
		case *Jellyfish:
			ft.advance(dt*c.DolphinSpeed, p.JellyfishTurnChance, p.TurnJitter, r)
			ft.wrap(cols, rows, p.WrapMargin)
		case *Island, *Reef, *Rock, *Seaweed, *Kelp:
			// static; appearance animates from the clock
		}
	}

	s.Boat.pursue(target, dt*c.BoatSpeed*p.BoatSpeed, p.StopThreshold)
}

func (m *Motion) advance(scale, turnChance, jitter float64, r *rand.Rand) {
	m.Position.X += math.Cos(m.Heading) * m.Speed * scale
	m.Position.Y += math.Sin(m.Heading) * m.Speed * scale
	if r != nil && rng.Chance(r, turnChance) {
		m.Heading += rng.Signed(r, jitter)
	}
}

// wrap moves a creature that left the margin band to the opposite side,
// independently per axis.
func (m *Motion) wrap(cols, rows, margin float64) {
	m.Position.X = wrapAxis(m.Position.X, cols, margin)
	m.Position.Y = wrapAxis(m.Position.Y, rows, margin)
}

func wrapAxis(v, dim, margin float64) float64 {
	if v < -margin {
		return dim + margin
	}
	if v > dim+margin {
		return -margin
	}
	return v
}

func velocity(heading, speed float64) Vec {
	return Vec{X: math.Cos(heading) * speed, Y: math.Sin(heading) * speed}
}
