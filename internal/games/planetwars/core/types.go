// Package core provides the simulation engine for Planet Wars.
// This package is UI-agnostic and deterministic for a given random source.
package core

import "math"

// Faction identifies the owner of a planet or fleet.
type Faction uint8

const (
	Neutral Faction = iota
	Player
	Opponent
)

// String returns the faction name.
func (f Faction) String() string {
	switch f {
	case Neutral:
		return "Neutral"
	case Player:
		return "Player"
	case Opponent:
		return "Opponent"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the three known factions.
func (f Faction) Valid() bool {
	return f <= Opponent
}

// PlanetType is the size class of a planet. It fixes radius and capacity.
type PlanetType uint8

const (
	PlanetBig PlanetType = iota
	PlanetMedium
	PlanetSmall
)

// String returns the lowercase type name used in config files.
func (t PlanetType) String() string {
	switch t {
	case PlanetBig:
		return "big"
	case PlanetMedium:
		return "medium"
	case PlanetSmall:
		return "small"
	default:
		return "unknown"
	}
}

// ParsePlanetType converts a config name into a PlanetType.
func ParsePlanetType(s string) (PlanetType, bool) {
	switch s {
	case "big":
		return PlanetBig, true
	case "medium":
		return PlanetMedium, true
	case "small":
		return PlanetSmall, true
	default:
		return 0, false
	}
}

// Vec is a point or offset in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Toward moves v by step along the bearing to target.
// The step never carries v past target.
func (v Vec) Toward(target Vec, step float64) Vec {
	d := v.Dist(target)
	if d <= step || d == 0 {
		return target
	}
	angle := math.Atan2(target.Y-v.Y, target.X-v.X)
	return Vec{
		X: v.X + math.Cos(angle)*step,
		Y: v.Y + math.Sin(angle)*step,
	}
}

// Phase is the lifecycle state of a simulation.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseOver {
		return "Over"
	}
	return "Running"
}

// Result is the outcome of a finished game, seen from the player's side.
type Result uint8

const (
	ResultNone Result = iota
	ResultVictory
	ResultDefeat
)

// String returns VICTORY, DEFEAT or an empty string.
func (r Result) String() string {
	switch r {
	case ResultVictory:
		return "VICTORY"
	case ResultDefeat:
		return "DEFEAT"
	default:
		return ""
	}
}

// Status combines the phase and the result.
type Status struct {
	Phase  Phase
	Result Result
}

// Over reports whether the game has reached its terminal state.
func (s Status) Over() bool {
	return s.Phase == PhaseOver
}
