package core_test

import (
	"testing"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

func TestSelectionClick(t *testing.T) {
	class := core.PlanetClass{Type: core.PlanetSmall, Radius: 15, Capacity: 20}
	mine := core.NewPlanet(0, class, core.V(0, 0))
	mine.SetOwner(core.Player)
	other := core.NewPlanet(1, class, core.V(100, 0))
	other.SetOwner(core.Player)
	enemy := core.NewPlanet(2, class, core.V(200, 0))
	enemy.SetOwner(core.Opponent)
	neutral := core.NewPlanet(3, class, core.V(300, 0))

	tests := []struct {
		name         string
		selected     *core.Planet
		hit          *core.Planet
		expectAction core.ClickAction
		expectSource *core.Planet
		expectTarget *core.Planet
	}{
		{"empty space with nothing selected", nil, nil, core.ClickIgnore, nil, nil},
		{"enemy with nothing selected", nil, enemy, core.ClickIgnore, nil, enemy},
		{"neutral with nothing selected", nil, neutral, core.ClickIgnore, nil, neutral},
		{"own planet selects", nil, mine, core.ClickSelect, nil, mine},
		{"same planet deselects", mine, mine, core.ClickDeselect, mine, mine},
		{"empty space deselects", mine, nil, core.ClickDeselect, mine, nil},
		{"enemy dispatches", mine, enemy, core.ClickDispatch, mine, enemy},
		{"neutral dispatches", mine, neutral, core.ClickDispatch, mine, neutral},
		{"other own planet dispatches", mine, other, core.ClickDispatch, mine, other},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sel core.Selection
			if tc.selected != nil {
				sel.Click(tc.selected)
			}

			d := sel.Click(tc.hit)
			if d.Action != tc.expectAction {
				t.Errorf("Action = %v, expected %v", d.Action, tc.expectAction)
			}
			if d.Source != tc.expectSource {
				t.Errorf("Source = %v, expected %v", d.Source, tc.expectSource)
			}
			if d.Target != tc.expectTarget {
				t.Errorf("Target = %v, expected %v", d.Target, tc.expectTarget)
			}

			expectSelected := (*core.Planet)(nil)
			if tc.expectAction == core.ClickSelect {
				expectSelected = tc.hit
			}
			if sel.Selected() != expectSelected {
				t.Errorf("Selected() = %v, expected %v", sel.Selected(), expectSelected)
			}
		})
	}
}

func TestSelectionClear(t *testing.T) {
	p := smallPlanet()
	p.SetOwner(core.Player)

	var sel core.Selection
	if sel.Clear() {
		t.Error("Clear() on empty selection reported true")
	}
	sel.Click(p)
	if !sel.Clear() {
		t.Error("Clear() with a selection reported false")
	}
	if sel.Selected() != nil {
		t.Error("selection survived Clear()")
	}
}

func TestPlanetAt(t *testing.T) {
	big := core.NewPlanet(0, core.PlanetClass{Type: core.PlanetBig, Radius: 40, Capacity: 200}, core.V(100, 100))
	small := core.NewPlanet(1, core.PlanetClass{Type: core.PlanetSmall, Radius: 15, Capacity: 20}, core.V(200, 100))
	planets := []*core.Planet{big, small}

	tests := []struct {
		name     string
		pos      core.Vec
		expected *core.Planet
	}{
		{"center of big", core.V(100, 100), big},
		{"inside tolerance of small", core.V(200, 137), small},
		{"outside tolerance of small", core.V(200, 138), nil},
		{"overlap picks nearest", core.V(175, 100), small},
		{"far away", core.V(700, 500), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.PlanetAt(planets, tc.pos, 2.5)
			if got != tc.expected {
				t.Errorf("PlanetAt(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}
