package core

import "math"

// Planet is a fixed body that holds a garrison and an owner.
type Planet struct {
	ID       int
	Type     PlanetType
	Pos      Vec
	Radius   float64
	Capacity float64

	owner Faction
	ships float64
	bus   *Bus
}

// NewPlanet creates a neutral, empty planet of the given class.
func NewPlanet(id int, class PlanetClass, pos Vec) *Planet {
	return &Planet{
		ID:       id,
		Type:     class.Type,
		Pos:      pos,
		Radius:   class.Radius,
		Capacity: class.Capacity,
	}
}

// Owner returns the faction that holds the planet.
func (p *Planet) Owner() Faction {
	return p.owner
}

// Ships returns the exact garrison, which may be fractional.
func (p *Planet) Ships() float64 {
	return p.ships
}

// Garrison returns the floored ship count shown to players and used for dispatch.
func (p *Planet) Garrison() int {
	return int(math.Floor(p.ships))
}

// SetOwner changes the owner without touching the garrison.
func (p *Planet) SetOwner(owner Faction) {
	assertf(owner.Valid(), "planet %d: invalid owner %d", p.ID, owner)
	prev := p.owner
	p.owner = owner
	p.bus.Publish(Event{
		Kind:      EventPlanetOwnerChanged,
		PlanetID:  p.ID,
		Owner:     owner,
		PrevOwner: prev,
		Ships:     p.Garrison(),
		Pos:       p.Pos,
	})
}

// AddShips grows the garrison, clamped to capacity.
func (p *Planet) AddShips(amount float64) {
	p.setShips(math.Min(p.ships+amount, p.Capacity))
}

// RemoveShips shrinks the garrison, clamped at zero.
func (p *Planet) RemoveShips(amount float64) {
	p.setShips(math.Max(0, p.ships-amount))
}

// setGarrison replaces the garrison without the capacity clamp.
// Only a successful attack uses it.
func (p *Planet) setGarrison(ships float64) {
	p.setShips(ships)
}

func (p *Planet) setShips(ships float64) {
	assertf(ships >= 0, "planet %d: negative garrison %g", p.ID, ships)
	before := p.Garrison()
	p.ships = ships
	if after := p.Garrison(); after != before {
		p.bus.Publish(Event{
			Kind:     EventPlanetShipsChanged,
			PlanetID: p.ID,
			Owner:    p.owner,
			Ships:    after,
			Pos:      p.Pos,
		})
	}
}

// contains reports whether a pointer at pos is within tolerance radii.
// It returns the distance for nearest-match comparison.
func (p *Planet) contains(pos Vec, tolerance float64) (float64, bool) {
	d := pos.Dist(p.Pos)
	return d, d < p.Radius*tolerance
}
