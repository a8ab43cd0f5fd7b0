package core

// PlanetSpec describes one planet of a starting layout.
type PlanetSpec struct {
	Type  PlanetType
	Pos   Vec
	Owner Faction
	Ships float64
}

// GenerateLayout places every planet class of the rules at random,
// non-overlapping positions and assigns the two start planets.
//
// Placement rules:
//  1. Candidates are uniform integers within the margin-bounded world
//  2. A candidate closer than other.Radius + spacing + pad to any placed
//     planet is rejected, where pad is larger for big planets
//  3. After LayoutAttempts rejections the last candidate is kept anyway
//  4. The first small planet starts with the player, the second with the
//     opponent, each holding StartShips
func GenerateLayout(rules Rules, rng Random) []PlanetSpec {
	specs := make([]PlanetSpec, 0, 11)
	placed := make([]placedBody, 0, 11)

	maxX := int(rules.Width) - rules.LayoutMargin
	maxY := int(rules.Height) - rules.LayoutMargin

	for _, class := range rules.Classes {
		pad := rules.LayoutDefaultPad
		if class.Type == PlanetBig {
			pad = rules.LayoutBigPad
		}

		for range class.Count {
			var pos Vec
			for attempt := 0; attempt < rules.LayoutAttempts; attempt++ {
				pos = V(
					float64(between(rng, rules.LayoutMargin, maxX)),
					float64(between(rng, rules.LayoutMargin, maxY)),
				)
				if clearOf(placed, pos, rules.LayoutSpacing+pad) {
					break
				}
			}
			placed = append(placed, placedBody{pos: pos, radius: class.Radius})
			specs = append(specs, PlanetSpec{Type: class.Type, Pos: pos})
		}
	}

	assignStarts(specs, rules.StartShips)
	return specs
}

type placedBody struct {
	pos    Vec
	radius float64
}

// clearOf reports whether pos keeps at least body.radius+gap from every body.
func clearOf(bodies []placedBody, pos Vec, gap float64) bool {
	for _, b := range bodies {
		if pos.Dist(b.pos) < b.radius+gap {
			return false
		}
	}
	return true
}

// assignStarts gives the first two small planets to the player and opponent.
func assignStarts(specs []PlanetSpec, ships float64) {
	next := Player
	for i := range specs {
		if specs[i].Type != PlanetSmall {
			continue
		}
		specs[i].Owner = next
		specs[i].Ships = ships
		if next == Opponent {
			return
		}
		next = Opponent
	}
}
