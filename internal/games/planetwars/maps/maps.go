// Package maps loads hand-made Planet Wars maps from YAML files.
// This package depends on core but core does not depend on maps.
package maps

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// Map is a fixed starting layout authored for a Width x Height world.
type Map struct {
	ID       string
	Name     string
	Width    float64
	Height   float64
	Planets  []core.PlanetSpec
	Metadata map[string]string
	FilePath string
}

// Layout scales the planet positions to a world of the given size.
// Positions are rounded to whole units.
func (m *Map) Layout(width, height float64) []core.PlanetSpec {
	sx := width / m.Width
	sy := height / m.Height

	specs := make([]core.PlanetSpec, len(m.Planets))
	for i, p := range m.Planets {
		p.Pos = core.V(math.Round(p.Pos.X*sx), math.Round(p.Pos.Y*sy))
		specs[i] = p
	}
	return specs
}

// Validate checks that the map describes a playable game.
func (m *Map) Validate() error {
	if m.ID == "" {
		return errors.New("maps: missing id")
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("maps: %s: size must be positive, got %gx%g", m.ID, m.Width, m.Height)
	}

	var owners [3]int
	for i, p := range m.Planets {
		if p.Pos.X < 0 || p.Pos.X > m.Width || p.Pos.Y < 0 || p.Pos.Y > m.Height {
			return fmt.Errorf("maps: %s: planet %d at (%g, %g) is outside the map", m.ID, i, p.Pos.X, p.Pos.Y)
		}
		if !p.Owner.Valid() {
			return fmt.Errorf("maps: %s: planet %d has invalid owner %d", m.ID, i, p.Owner)
		}
		if p.Ships < 0 {
			return fmt.Errorf("maps: %s: planet %d has negative ships", m.ID, i)
		}
		owners[p.Owner]++
	}
	if owners[core.Player] == 0 || owners[core.Opponent] == 0 {
		return fmt.Errorf("maps: %s: needs at least one player and one opponent planet", m.ID)
	}
	return nil
}
