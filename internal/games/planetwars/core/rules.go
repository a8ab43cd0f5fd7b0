package core

import "fmt"

// PlanetClass describes one size class of planet and how many to create.
type PlanetClass struct {
	Type     PlanetType
	Radius   float64
	Capacity float64
	Count    int
}

// Rules holds every tunable constant of the simulation.
type Rules struct {
	// World dimensions used for layout.
	Width  float64
	Height float64

	FleetSpeed    float64 // Distance units per second
	ArrivalRadius float64 // Fleets closer than this have arrived

	ProductionIntervalMs float64
	ProductionAmount     float64

	AIIntervalMs  float64
	AIThreshold   float64 // Opponent planets attack only above this garrison
	AINeutralBias float64 // Probability of preferring a neutral target

	GameOverIntervalMs float64

	SelectTolerance float64 // Click radius as a multiple of planet radius

	LayoutMargin     int
	LayoutSpacing    float64
	LayoutBigPad     float64
	LayoutDefaultPad float64
	LayoutAttempts   int
	StartShips       float64

	// Classes are created in order; the first two small planets become
	// the player and opponent start planets.
	Classes []PlanetClass
}

// DefaultRules returns the standard rule set on an 800x600 world.
func DefaultRules() Rules {
	return Rules{
		Width:                800,
		Height:               600,
		FleetSpeed:           100,
		ArrivalRadius:        5,
		ProductionIntervalMs: 1000,
		ProductionAmount:     2,
		AIIntervalMs:         2000,
		AIThreshold:          10,
		AINeutralBias:        0.7,
		GameOverIntervalMs:   1000,
		SelectTolerance:      2.5,
		LayoutMargin:         50,
		LayoutSpacing:        50,
		LayoutBigPad:         40,
		LayoutDefaultPad:     20,
		LayoutAttempts:       100,
		StartShips:           10,
		Classes: []PlanetClass{
			{Type: PlanetBig, Radius: 40, Capacity: 200, Count: 3},
			{Type: PlanetMedium, Radius: 25, Capacity: 50, Count: 4},
			{Type: PlanetSmall, Radius: 15, Capacity: 20, Count: 4},
		},
	}
}

// Class returns the class definition for a planet type.
func (r Rules) Class(t PlanetType) (PlanetClass, bool) {
	for _, c := range r.Classes {
		if c.Type == t {
			return c, true
		}
	}
	return PlanetClass{}, false
}

// Validate reports the first rule that would make the simulation misbehave.
func (r Rules) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("rules: world size must be positive, got %gx%g", r.Width, r.Height)
	case r.FleetSpeed <= 0:
		return fmt.Errorf("rules: fleet speed must be positive, got %g", r.FleetSpeed)
	case r.ArrivalRadius <= 0:
		return fmt.Errorf("rules: arrival radius must be positive, got %g", r.ArrivalRadius)
	case r.ProductionIntervalMs <= 0 || r.AIIntervalMs <= 0 || r.GameOverIntervalMs <= 0:
		return fmt.Errorf("rules: tick intervals must be positive")
	case r.ProductionAmount < 0:
		return fmt.Errorf("rules: production amount must not be negative, got %g", r.ProductionAmount)
	case r.AINeutralBias < 0 || r.AINeutralBias > 1:
		return fmt.Errorf("rules: ai neutral bias must be within [0,1], got %g", r.AINeutralBias)
	case r.SelectTolerance <= 0:
		return fmt.Errorf("rules: selection tolerance must be positive, got %g", r.SelectTolerance)
	case r.LayoutAttempts < 1:
		return fmt.Errorf("rules: layout attempts must be at least 1, got %d", r.LayoutAttempts)
	case r.StartShips < 0:
		return fmt.Errorf("rules: start ships must not be negative, got %g", r.StartShips)
	}

	smalls := 0
	for _, c := range r.Classes {
		if c.Radius <= 0 || c.Capacity <= 0 {
			return fmt.Errorf("rules: planet class %s needs positive radius and capacity", c.Type)
		}
		if c.Count < 0 {
			return fmt.Errorf("rules: planet class %s has negative count", c.Type)
		}
		if c.Type == PlanetSmall {
			smalls += c.Count
			if r.StartShips > c.Capacity {
				return fmt.Errorf("rules: start ships %g exceed small planet capacity %g", r.StartShips, c.Capacity)
			}
		}
	}
	if smalls < 2 {
		return fmt.Errorf("rules: at least two small planets are needed for start positions, got %d", smalls)
	}
	return nil
}
