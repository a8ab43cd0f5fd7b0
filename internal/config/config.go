// Package config provides YAML-based rules configuration for Planet Wars.
package config

import (
	"fmt"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// PlanetWarsConfig contains every tunable rule of the simulation.
type PlanetWarsConfig struct {
	Fleet      FleetConfig      `yaml:"fleet"`
	Production ProductionConfig `yaml:"production"`
	AI         AIConfig         `yaml:"ai"`
	GameOver   GameOverConfig   `yaml:"game_over"`
	Selection  SelectionConfig  `yaml:"selection"`
	Layout     LayoutConfig     `yaml:"layout"`
	Planets    []PlanetConfig   `yaml:"planets"`
}

// FleetConfig defines fleet movement.
type FleetConfig struct {
	Speed         float64 `yaml:"speed"`
	ArrivalRadius float64 `yaml:"arrival_radius"`
}

// ProductionConfig defines ship production on owned planets.
type ProductionConfig struct {
	IntervalMs float64 `yaml:"interval_ms"`
	Amount     float64 `yaml:"amount"`
}

// AIConfig defines the scripted opponent.
type AIConfig struct {
	IntervalMs  float64 `yaml:"interval_ms"`
	Threshold   float64 `yaml:"threshold"`
	NeutralBias float64 `yaml:"neutral_bias"`
}

// GameOverConfig defines how often the end condition is checked.
type GameOverConfig struct {
	IntervalMs float64 `yaml:"interval_ms"`
}

// SelectionConfig defines pointer hit testing.
type SelectionConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// LayoutConfig defines random planet placement.
type LayoutConfig struct {
	Margin     int     `yaml:"margin"`
	Spacing    float64 `yaml:"spacing"`
	BigPadding float64 `yaml:"big_padding"`
	Padding    float64 `yaml:"padding"`
	Attempts   int     `yaml:"attempts"`
	StartShips float64 `yaml:"start_ships"`
}

// PlanetConfig defines one planet size class.
type PlanetConfig struct {
	Type     string  `yaml:"type"` // "big", "medium" or "small"
	Radius   float64 `yaml:"radius"`
	Capacity float64 `yaml:"capacity"`
	Count    int     `yaml:"count"`
}

// Rules converts the configuration to engine rules. World size keeps the
// engine default; the game sizes it to the screen.
func (c PlanetWarsConfig) Rules() (core.Rules, error) {
	r := core.DefaultRules()
	r.FleetSpeed = c.Fleet.Speed
	r.ArrivalRadius = c.Fleet.ArrivalRadius
	r.ProductionIntervalMs = c.Production.IntervalMs
	r.ProductionAmount = c.Production.Amount
	r.AIIntervalMs = c.AI.IntervalMs
	r.AIThreshold = c.AI.Threshold
	r.AINeutralBias = c.AI.NeutralBias
	r.GameOverIntervalMs = c.GameOver.IntervalMs
	r.SelectTolerance = c.Selection.Tolerance
	r.LayoutMargin = c.Layout.Margin
	r.LayoutSpacing = c.Layout.Spacing
	r.LayoutBigPad = c.Layout.BigPadding
	r.LayoutDefaultPad = c.Layout.Padding
	r.LayoutAttempts = c.Layout.Attempts
	r.StartShips = c.Layout.StartShips

	r.Classes = make([]core.PlanetClass, 0, len(c.Planets))
	seen := make(map[core.PlanetType]bool)
	for _, p := range c.Planets {
		t, ok := core.ParsePlanetType(p.Type)
		if !ok {
			return core.Rules{}, fmt.Errorf("config: unknown planet type %q", p.Type)
		}
		if seen[t] {
			return core.Rules{}, fmt.Errorf("config: planet type %q listed twice", p.Type)
		}
		seen[t] = true
		r.Classes = append(r.Classes, core.PlanetClass{
			Type:     t,
			Radius:   p.Radius,
			Capacity: p.Capacity,
			Count:    p.Count,
		})
	}
	return r, nil
}

// Validate reports the first value that would break the simulation.
func (c PlanetWarsConfig) Validate() error {
	r, err := c.Rules()
	if err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
