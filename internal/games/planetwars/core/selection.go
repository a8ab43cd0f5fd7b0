package core

// ClickAction is what a click means for the current selection.
type ClickAction uint8

const (
	ClickIgnore   ClickAction = iota // Nothing selected and nothing selectable hit
	ClickSelect                      // A player planet became selected
	ClickDeselect                    // The selection was cleared
	ClickDispatch                    // Send a fleet from Source to Target, then clear
)

// String returns the action name.
func (a ClickAction) String() string {
	switch a {
	case ClickIgnore:
		return "ignore"
	case ClickSelect:
		return "select"
	case ClickDeselect:
		return "deselect"
	case ClickDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a click on the selection state machine.
type Decision struct {
	Action ClickAction
	Source *Planet
	Target *Planet
}

// Selection tracks at most one selected planet, which is always
// owned by the player while selected.
type Selection struct {
	selected *Planet
}

// Selected returns the selected planet, or nil.
func (s *Selection) Selected() *Planet {
	return s.selected
}

// Click advances the state machine with a click on hit, where nil means
// empty space. Any click while a planet is selected clears the selection.
func (s *Selection) Click(hit *Planet) Decision {
	if s.selected == nil {
		if hit != nil && hit.Owner() == Player {
			s.selected = hit
			return Decision{Action: ClickSelect, Target: hit}
		}
		return Decision{Action: ClickIgnore, Target: hit}
	}

	src := s.selected
	s.selected = nil

	if hit == nil || hit == src {
		return Decision{Action: ClickDeselect, Source: src, Target: hit}
	}
	return Decision{Action: ClickDispatch, Source: src, Target: hit}
}

// Clear drops the selection. It reports whether anything was selected.
func (s *Selection) Clear() bool {
	had := s.selected != nil
	s.selected = nil
	return had
}

// PlanetAt resolves a pointer position to the nearest planet within
// tolerance radii of its center. It returns nil for empty space.
func PlanetAt(planets []*Planet, pos Vec, tolerance float64) *Planet {
	var closest *Planet
	best := 0.0
	for _, p := range planets {
		d, ok := p.contains(pos, tolerance)
		if !ok {
			continue
		}
		if closest == nil || d < best {
			closest = p
			best = d
		}
	}
	return closest
}
