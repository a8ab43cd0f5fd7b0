package core_test

import (
	"testing"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

func smallPlanet() *core.Planet {
	return core.NewPlanet(0, core.PlanetClass{Type: core.PlanetSmall, Radius: 15, Capacity: 20}, core.V(0, 0))
}

func TestPlanetAddShipsClampsToCapacity(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		add      float64
		expected float64
	}{
		{"below capacity", 0, 5, 5},
		{"exactly capacity", 15, 5, 20},
		{"overflow clamps", 18, 5, 20},
		{"fractional", 1.5, 0.25, 1.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := smallPlanet()
			p.AddShips(tc.start)
			p.AddShips(tc.add)
			if p.Ships() != tc.expected {
				t.Errorf("Ships() = %g, expected %g", p.Ships(), tc.expected)
			}
		})
	}
}

func TestPlanetRemoveShipsClampsAtZero(t *testing.T) {
	p := smallPlanet()
	p.AddShips(7)

	p.RemoveShips(3)
	if p.Ships() != 4 {
		t.Errorf("Ships() = %g, expected 4", p.Ships())
	}

	p.RemoveShips(10)
	if p.Ships() != 0 {
		t.Errorf("Ships() = %g, expected 0 after over-removal", p.Ships())
	}
}

func TestPlanetGarrisonIsFloored(t *testing.T) {
	p := smallPlanet()
	p.AddShips(3.9)
	if p.Garrison() != 3 {
		t.Errorf("Garrison() = %d, expected 3", p.Garrison())
	}
}

func TestPlanetZeroMutationsAreIdempotent(t *testing.T) {
	sim := newSim(t, duel())
	rec := &recorder{}
	rec.attach(sim.Bus())

	p := sim.Planet(0)
	before := p.Ships()

	p.AddShips(0)
	p.RemoveShips(0)

	if p.Ships() != before {
		t.Errorf("Ships() changed from %g to %g", before, p.Ships())
	}
	if n := rec.count(core.EventPlanetShipsChanged); n != 0 {
		t.Errorf("expected no ship notifications, got %d", n)
	}
}

func TestPlanetShipNotificationOnlyOnFloorChange(t *testing.T) {
	sim := newSim(t, duel())
	rec := &recorder{}
	rec.attach(sim.Bus())

	p := sim.Planet(0) // 10 ships
	p.AddShips(0.5)
	if n := rec.count(core.EventPlanetShipsChanged); n != 0 {
		t.Errorf("10 -> 10.5 should not notify, got %d events", n)
	}

	p.AddShips(0.5)
	if n := rec.count(core.EventPlanetShipsChanged); n != 1 {
		t.Fatalf("10.5 -> 11 should notify once, got %d events", n)
	}
	if rec.events[0].Ships != 11 || rec.events[0].PlanetID != 0 {
		t.Errorf("unexpected event %+v", rec.events[0])
	}
}

func TestPlanetSetOwnerKeepsShips(t *testing.T) {
	sim := newSim(t, duel())
	rec := &recorder{}
	rec.attach(sim.Bus())

	p := sim.Planet(1)
	p.SetOwner(core.Player)

	if p.Owner() != core.Player {
		t.Errorf("Owner() = %v, expected Player", p.Owner())
	}
	if p.Ships() != 10 {
		t.Errorf("Ships() = %g, expected 10", p.Ships())
	}
	if n := rec.count(core.EventPlanetOwnerChanged); n != 1 {
		t.Fatalf("expected one owner notification, got %d", n)
	}
	e := rec.events[0]
	if e.Owner != core.Player || e.PrevOwner != core.Opponent {
		t.Errorf("owner event = %v <- %v, expected Player <- Opponent", e.Owner, e.PrevOwner)
	}
}
