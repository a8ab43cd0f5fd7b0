package core_test

import (
	"testing"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// scriptedRandom replays fixed draws and then returns zero.
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// duel is a two-planet layout with the start planets 90 units apart.
func duel() []core.PlanetSpec {
	return []core.PlanetSpec{
		{Type: core.PlanetSmall, Pos: core.V(100, 100), Owner: core.Player, Ships: 10},
		{Type: core.PlanetSmall, Pos: core.V(190, 100), Owner: core.Opponent, Ships: 10},
	}
}

func newSim(t *testing.T, specs []core.PlanetSpec, opts ...core.Option) *core.Simulation {
	t.Helper()
	opts = append(opts, core.WithLayout(specs))
	sim, err := core.New(core.DefaultRules(), &scriptedRandom{}, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return sim
}

// recorder collects every event published on a bus.
type recorder struct {
	events []core.Event
}

func (r *recorder) attach(b *core.Bus) {
	b.SubscribeAll(func(e core.Event) {
		r.events = append(r.events, e)
	})
}

func (r *recorder) count(kind core.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

// runFrames advances the simulation in fixed 16ms frames.
func runFrames(sim *core.Simulation, frames int) {
	for i := 0; i < frames; i++ {
		sim.Advance(16)
	}
}
