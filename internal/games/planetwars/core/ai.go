package core

// chooseTarget picks the attack target for one opponent planet.
//
// Decision order:
//  1. With probability bias, a random neutral planet, if any exist
//  2. Otherwise a random player planet, if any exist
//  3. Otherwise a random neutral planet, if any remain
//
// The probability is only drawn when neutral planets exist.
func chooseTarget(rng Random, bias float64, neutral, player []*Planet) *Planet {
	if len(neutral) > 0 && rng.Float64() < bias {
		return pick(rng, neutral)
	}
	if len(player) > 0 {
		return pick(rng, player)
	}
	return pick(rng, neutral)
}

// runOpponent lets every sufficiently strong opponent planet commit its
// whole garrison against a target. Decisions are independent per planet.
func (s *Simulation) runOpponent() {
	if s.status.Over() {
		return
	}

	for _, src := range s.PlanetsOwnedBy(Opponent) {
		if src.Ships() <= s.rules.AIThreshold {
			continue
		}
		neutral := s.PlanetsOwnedBy(Neutral)
		player := s.PlanetsOwnedBy(Player)

		target := chooseTarget(s.rng, s.rules.AINeutralBias, neutral, player)
		if target == nil {
			continue
		}
		s.logger.Debug("opponent attacks",
			"source", src.ID,
			"target", target.ID,
			"target_owner", target.Owner(),
			"ships", src.Garrison(),
		)
		s.Dispatch(Opponent, src, target)
	}
}
