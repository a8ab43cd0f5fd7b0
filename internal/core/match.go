package core

// MatchSummary describes a finished or running match from the player's side.
// The platform records it in match history when a game ends.
type MatchSummary struct {
	Game           string
	Result         string // "VICTORY", "DEFEAT" or "" while running
	Seed           int64
	Round          int // Games played since the seed was applied, starting at 1
	DurationMs     float64
	FleetsLaunched int
	ShipsLaunched  int
	Captures       int
	PlanetsHeld    int
}
