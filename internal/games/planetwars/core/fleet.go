package core

// Fleet is a group of ships in transit between two planets.
// Owner and ShipCount are fixed at launch.
type Fleet struct {
	Owner     Faction
	ShipCount int
	Source    *Planet
	Target    *Planet
	Pos       Vec
	Speed     float64
}

// newFleet places a fleet at its source, owned by the source's current owner.
func newFleet(source, target *Planet, ships int, speed float64) *Fleet {
	return &Fleet{
		Owner:     source.Owner(),
		ShipCount: ships,
		Source:    source,
		Target:    target,
		Pos:       source.Pos,
		Speed:     speed,
	}
}

// Distance returns the straight-line distance to the target's current position.
func (f *Fleet) Distance() float64 {
	return f.Pos.Dist(f.Target.Pos)
}

// Advance moves the fleet for dt seconds. It reports true without moving
// when the fleet is already within arrivalRadius of its target.
// The bearing is recomputed on every call so a moving target is tracked.
func (f *Fleet) Advance(dt, arrivalRadius float64) bool {
	if f.Distance() < arrivalRadius {
		return true
	}
	f.Pos = f.Pos.Toward(f.Target.Pos, f.Speed*dt)
	return false
}
