package maps

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Planets  []YAMLPlanet      `yaml:"planets"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents the authored world size.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLPlanet represents a single planet in YAML format.
type YAMLPlanet struct {
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Owner string  `yaml:"owner,omitempty"` // player, opponent or neutral (default)
	Ships float64 `yaml:"ships,omitempty"`
}

// defaultSize is used when a file leaves out its size.
var defaultSize = YAMLSize{W: 800, H: 600}

// ParseYAML parses and validates a YAML map file.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.Size.W == 0 && ym.Size.H == 0 {
		ym.Size = defaultSize
	}

	m := Map{
		ID:       ym.ID,
		Name:     ym.Name,
		Width:    ym.Size.W,
		Height:   ym.Size.H,
		Planets:  make([]core.PlanetSpec, 0, len(ym.Planets)),
		Metadata: ym.Metadata,
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	for i, p := range ym.Planets {
		typ, ok := core.ParsePlanetType(p.Type)
		if !ok {
			return Map{}, fmt.Errorf("planet %d: unknown type %q", i, p.Type)
		}
		owner, ok := parseOwner(p.Owner)
		if !ok {
			return Map{}, fmt.Errorf("planet %d: unknown owner %q", i, p.Owner)
		}
		m.Planets = append(m.Planets, core.PlanetSpec{
			Type:  typ,
			Pos:   core.V(p.X, p.Y),
			Owner: owner,
			Ships: p.Ships,
		})
	}

	if err := m.Validate(); err != nil {
		return Map{}, err
	}
	return m, nil
}

func parseOwner(s string) (core.Faction, bool) {
	switch s {
	case "", "neutral":
		return core.Neutral, true
	case "player":
		return core.Player, true
	case "opponent":
		return core.Opponent, true
	default:
		return 0, false
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
