package config

import (
	_ "embed"
)

//go:embed defaults/planetwars.yaml
var defaultPlanetWarsYAML []byte

// DefaultPlanetWarsConfig returns the built-in rules.
func DefaultPlanetWarsConfig() PlanetWarsConfig {
	return PlanetWarsConfig{
		Fleet: FleetConfig{
			Speed:         100,
			ArrivalRadius: 5,
		},
		Production: ProductionConfig{
			IntervalMs: 1000,
			Amount:     2,
		},
		AI: AIConfig{
			IntervalMs:  2000,
			Threshold:   10,
			NeutralBias: 0.7,
		},
		GameOver: GameOverConfig{
			IntervalMs: 1000,
		},
		Selection: SelectionConfig{
			Tolerance: 2.5,
		},
		Layout: LayoutConfig{
			Margin:     50,
			Spacing:    50,
			BigPadding: 40,
			Padding:    20,
			Attempts:   100,
			StartShips: 10,
		},
		Planets: []PlanetConfig{
			{Type: "big", Radius: 40, Capacity: 200, Count: 3},
			{Type: "medium", Radius: 25, Capacity: 50, Count: 4},
			{Type: "small", Radius: 15, Capacity: 20, Count: 4},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlanetWarsYAML
}
