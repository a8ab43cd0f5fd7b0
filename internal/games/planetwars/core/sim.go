package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Stats counts what happened during the current game.
type Stats struct {
	ElapsedMs      float64
	FleetsLaunched [3]int // Indexed by Faction
	ShipsLaunched  [3]int
	Captures       [3]int // Planets taken from neutral or the rival
}

// Simulation owns the planets and fleets of one game and advances them
// on a virtual clock. It must be driven from a single goroutine.
type Simulation struct {
	rules  Rules
	rng    Random
	bus    *Bus
	logger *log.Logger

	clock     *Scheduler
	planets   []*Planet
	fleets    []*Fleet
	selection Selection
	status    Status
	stats     Stats

	layout []PlanetSpec // Used once by New instead of a generated layout
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBus sets the event bus that receives notifications.
func WithBus(b *Bus) Option {
	return func(s *Simulation) {
		if b != nil {
			s.bus = b
		}
	}
}

// WithLayout starts the first game from a fixed layout instead of a
// generated one. Restart always generates a fresh layout.
func WithLayout(specs []PlanetSpec) Option {
	return func(s *Simulation) {
		s.layout = specs
	}
}

// New creates a running simulation.
func New(rules Rules, rng Random, opts ...Option) (*Simulation, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: random source is required")
	}

	s := &Simulation{
		rules:  rules,
		rng:    rng,
		bus:    NewBus(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	specs := s.layout
	s.layout = nil
	if specs == nil {
		specs = GenerateLayout(rules, rng)
	}
	if err := s.start(specs); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards all state and begins a new game on a fresh layout.
// Bus subscriptions survive the restart.
func (s *Simulation) Restart() {
	// Generated layouts only use classes from the rules, so start cannot fail.
	_ = s.start(GenerateLayout(s.rules, s.rng))
}

// start builds planets from specs and resets the clock, fleets and selection.
func (s *Simulation) start(specs []PlanetSpec) error {
	planets := make([]*Planet, 0, len(specs))
	for i, spec := range specs {
		class, ok := s.rules.Class(spec.Type)
		if !ok {
			return fmt.Errorf("sim: planet %d has unknown type %s", i, spec.Type)
		}
		if !spec.Owner.Valid() {
			return fmt.Errorf("sim: planet %d has invalid owner %d", i, spec.Owner)
		}
		if spec.Ships < 0 || spec.Ships > class.Capacity {
			return fmt.Errorf("sim: planet %d starts with %g ships, %s capacity is %g", i, spec.Ships, spec.Type, class.Capacity)
		}
		p := NewPlanet(i, class, spec.Pos)
		p.owner = spec.Owner
		p.ships = spec.Ships
		planets = append(planets, p)
	}
	for _, p := range planets {
		p.bus = s.bus
	}

	s.planets = planets
	s.fleets = nil
	s.selection = Selection{}
	s.status = Status{Phase: PhaseRunning}
	s.stats = Stats{}

	s.clock = NewScheduler()
	s.clock.Every("production", s.rules.ProductionIntervalMs, s.produce)
	s.clock.Every("opponent", s.rules.AIIntervalMs, s.runOpponent)
	s.clock.Every("game-over", s.rules.GameOverIntervalMs, s.checkGameOver)

	s.logger.Debug("game started", "planets", len(planets))
	return nil
}

// Rules returns the rule set in use.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Bus returns the event bus for subscriptions.
func (s *Simulation) Bus() *Bus {
	return s.bus
}

// Status returns the phase and result.
func (s *Simulation) Status() Status {
	return s.status
}

// Stats returns counters for the current game.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Now returns the virtual time of the current game in milliseconds.
func (s *Simulation) Now() float64 {
	return s.clock.Now()
}

// Planets returns all planets in id order. Callers must not modify the slice.
func (s *Simulation) Planets() []*Planet {
	return s.planets
}

// Planet returns the planet with the given id, or nil.
func (s *Simulation) Planet(id int) *Planet {
	if id < 0 || id >= len(s.planets) {
		return nil
	}
	return s.planets[id]
}

// Fleets returns the fleets in flight in launch order. Callers must not
// modify the slice.
func (s *Simulation) Fleets() []*Fleet {
	return s.fleets
}

// Selected returns the selected planet, or nil.
func (s *Simulation) Selected() *Planet {
	return s.selection.Selected()
}

// PlanetsOwnedBy lists the planets held by a faction in id order.
func (s *Simulation) PlanetsOwnedBy(f Faction) []*Planet {
	var out []*Planet
	for _, p := range s.planets {
		if p.Owner() == f {
			out = append(out, p)
		}
	}
	return out
}

// FleetsOwnedBy counts the fleets in flight for a faction.
func (s *Simulation) FleetsOwnedBy(f Faction) int {
	n := 0
	for _, fl := range s.fleets {
		if fl.Owner == f {
			n++
		}
	}
	return n
}

// PointerDown handles a click at world position (x, y).
// Clicks after the game is over are ignored.
func (s *Simulation) PointerDown(x, y float64) Decision {
	if s.status.Over() {
		return Decision{Action: ClickIgnore}
	}

	hit := PlanetAt(s.planets, V(x, y), s.rules.SelectTolerance)
	d := s.selection.Click(hit)

	if hit != nil {
		s.logger.Debug("planet clicked", "id", hit.ID, "owner", hit.Owner(), "ships", hit.Garrison(), "action", d.Action)
	}

	switch d.Action {
	case ClickSelect:
		s.publishSelection(d.Target)
	case ClickDeselect:
		s.publishSelection(nil)
	case ClickDispatch:
		s.Dispatch(Player, d.Source, d.Target)
		s.publishSelection(nil)
	}
	return d
}

// ClearSelection drops the selection, as a click on empty space would.
func (s *Simulation) ClearSelection() {
	if s.status.Over() {
		return
	}
	if s.selection.Clear() {
		s.publishSelection(nil)
	}
}

// Dispatch sends a fleet on behalf of a faction. It is a no-op unless the
// faction owns source and the game is running.
func (s *Simulation) Dispatch(by Faction, source, target *Planet) *Fleet {
	if s.status.Over() || source == nil || target == nil {
		return nil
	}
	if by == Neutral || source.Owner() != by {
		return nil
	}
	return s.sendFleet(source, target)
}

// sendFleet launches every whole ship on source toward target.
// Sources with less than one ship are ignored.
func (s *Simulation) sendFleet(source, target *Planet) *Fleet {
	if source.Ships() < 1 {
		return nil
	}

	ships := source.Garrison()
	source.RemoveShips(float64(ships))

	f := newFleet(source, target, ships, s.rules.FleetSpeed)
	s.fleets = append(s.fleets, f)

	s.stats.FleetsLaunched[f.Owner]++
	s.stats.ShipsLaunched[f.Owner] += ships

	s.logger.Debug("fleet launched", "source", source.ID, "target", target.ID, "ships", ships, "owner", f.Owner)
	s.bus.Publish(Event{
		Kind:     EventFleetLaunched,
		PlanetID: source.ID,
		Owner:    f.Owner,
		Ships:    ships,
		Fleet:    f,
		Pos:      f.Pos,
	})
	return f
}

// Advance runs one frame of dtMs milliseconds: due timers fire first,
// then every fleet moves or arrives.
func (s *Simulation) Advance(dtMs float64) {
	if s.status.Over() || dtMs <= 0 {
		return
	}

	s.clock.Advance(dtMs)
	s.stats.ElapsedMs = s.clock.Now()

	if s.status.Over() {
		return
	}
	s.advanceFleets(dtMs / 1000)
}

// advanceFleets moves fleets newest first and resolves arrivals in place,
// so no arrived fleet survives the frame.
func (s *Simulation) advanceFleets(dt float64) {
	for i := len(s.fleets) - 1; i >= 0; i-- {
		f := s.fleets[i]
		if !f.Advance(dt, s.rules.ArrivalRadius) {
			s.bus.Publish(Event{
				Kind:     EventFleetMoved,
				PlanetID: f.Target.ID,
				Owner:    f.Owner,
				Ships:    f.ShipCount,
				Fleet:    f,
				Pos:      f.Pos,
			})
			continue
		}
		s.fleets = append(s.fleets[:i], s.fleets[i+1:]...)
		s.arrive(f)
	}
}

// arrive resolves a fleet against its target and keeps the selection valid.
func (s *Simulation) arrive(f *Fleet) {
	target := f.Target
	prev := target.Owner()
	outcome := Resolve(f, target)

	if outcome == OutcomeConquered || outcome == OutcomeCaptured {
		s.stats.Captures[f.Owner]++
		s.logger.Debug("planet captured", "id", target.ID, "owner", f.Owner, "previous", prev, "ships", target.Garrison())
	}

	s.bus.Publish(Event{
		Kind:      EventFleetArrived,
		PlanetID:  target.ID,
		Owner:     f.Owner,
		PrevOwner: prev,
		Ships:     f.ShipCount,
		Fleet:     f,
		Pos:       target.Pos,
		Outcome:   outcome,
	})

	if sel := s.selection.Selected(); sel != nil && sel.Owner() != Player {
		s.selection.Clear()
		s.publishSelection(nil)
	}
}

// produce adds ships to every owned planet.
func (s *Simulation) produce() {
	if s.status.Over() {
		return
	}
	for _, p := range s.planets {
		if p.Owner() != Neutral {
			p.AddShips(s.rules.ProductionAmount)
		}
	}
}

// checkGameOver ends the game when a side holds no planets and has no
// fleets in flight. Defeat is checked before victory.
func (s *Simulation) checkGameOver() {
	if s.status.Over() {
		return
	}

	result := ResultNone
	switch {
	case len(s.PlanetsOwnedBy(Player)) == 0 && s.FleetsOwnedBy(Player) == 0:
		result = ResultDefeat
	case len(s.PlanetsOwnedBy(Opponent)) == 0 && s.FleetsOwnedBy(Opponent) == 0:
		result = ResultVictory
	}
	if result == ResultNone {
		return
	}

	s.status = Status{Phase: PhaseOver, Result: result}
	s.stats.ElapsedMs = s.clock.Now()
	s.logger.Info("game over", "result", result, "elapsed_ms", s.clock.Now())
	s.bus.Publish(Event{Kind: EventGameEnded, PlanetID: -1, Result: result})
}

func (s *Simulation) publishSelection(p *Planet) {
	e := Event{Kind: EventSelectionChanged, PlanetID: -1}
	if p != nil {
		e.PlanetID = p.ID
		e.Owner = p.Owner()
		e.Pos = p.Pos
	}
	s.logger.Debug("selection changed", "planet", e.PlanetID)
	s.bus.Publish(e)
}
