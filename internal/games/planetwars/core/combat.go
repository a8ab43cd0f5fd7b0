package core

// Resolve applies an arriving fleet to its target planet.
//
// Resolution rules:
//  1. Same owner: the fleet reinforces the garrison (capacity clamped)
//  2. Neutral target: the fleet conquers it and lands its ships (capacity clamped)
//  3. Hostile target, fleet larger than garrison: the attacker takes the planet
//     and the remainder becomes the garrison, even above capacity
//  4. Hostile target otherwise: the defender loses ships equal to the fleet;
//     ties go to the defender
func Resolve(f *Fleet, target *Planet) Outcome {
	ships := float64(f.ShipCount)

	switch target.Owner() {
	case f.Owner:
		target.AddShips(ships)
		return OutcomeReinforced

	case Neutral:
		target.SetOwner(f.Owner)
		target.AddShips(ships)
		return OutcomeConquered
	}

	if ships > target.Ships() {
		remaining := ships - target.Ships()
		target.SetOwner(f.Owner)
		target.setGarrison(remaining)
		return OutcomeCaptured
	}

	target.RemoveShips(ships)
	return OutcomeRepelled
}
