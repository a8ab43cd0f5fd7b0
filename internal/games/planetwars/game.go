// Package planetwars hosts the Planet Wars simulation on the terminal platform.
// It maps screen cells to world coordinates, feeds clicks and hotkeys into
// the engine and draws the result into a platform screen buffer.
package planetwars

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/planetwars/internal/core"
	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
	"github.com/vovakirdan/planetwars/internal/games/planetwars/maps"
)

// ID is the game identifier used for match history.
const ID = "planetwars"

const (
	unitsPerCol = 10.0 // World units per terminal column
	unitsPerRow = 20.0 // World units per terminal row
	hudHeight   = 1

	minCols = 40
	minRows = 12

	feedSize = 3
)

// hotkeys label planets in id order. p, q and r are bound to actions.
const hotkeys = "0123456789abcdefghijklmnostuvwxyz"

// Game adapts a core.Simulation to the platform game loop.
type Game struct {
	rules  core.Rules
	logger *log.Logger
	bus    *core.Bus
	layout []core.PlanetSpec
	board  *maps.Map

	world core.Rules // rules sized to the current screen
	sim   *core.Simulation
	err   error
	seed  int64
	round int

	screenW  int
	screenH  int
	frameMs  float64
	paused   bool
	tooSmall bool

	stars []platformcore.Point
	feed  []string
}

// Option configures a Game.
type Option func(*Game)

// WithRules replaces the default rules. World size is always derived from
// the screen.
func WithRules(r core.Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithLogger sets the logger handed to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLayout starts the first game of every Reset from fixed planets.
func WithLayout(specs []core.PlanetSpec) Option {
	return func(g *Game) {
		g.layout = specs
	}
}

// WithMap plays every round on a hand-made map scaled to the screen.
func WithMap(m *maps.Map) Option {
	return func(g *Game) {
		g.board = m
	}
}

// New creates a Planet Wars game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		rules:  core.DefaultRules(),
		logger: log.New(io.Discard),
		bus:    core.NewBus(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.bus.SubscribeAll(g.record)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Planet Wars"
}

// Reset sizes the world to the screen and starts a new game from cfg.Seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frameMs = cfg.FrameMs()
	g.seed = cfg.Seed
	g.round = 1
	g.paused = false
	g.feed = g.feed[:0]
	g.sim = nil
	g.err = nil

	g.tooSmall = cfg.ScreenW < minCols || cfg.ScreenH < minRows
	if g.tooSmall {
		return
	}

	g.world = g.rules
	g.world.Width = float64(cfg.ScreenW) * unitsPerCol
	g.world.Height = float64(cfg.ScreenH-hudHeight) * unitsPerRow

	layout := g.layout
	if g.board != nil {
		layout = g.board.Layout(g.world.Width, g.world.Height)
	}
	if !g.start(layout) {
		return
	}
	g.stars = starfield(cfg.Seed, cfg.ScreenW, cfg.ScreenH-hudHeight)
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.sim == nil {
		return platformcore.StepResult{State: g.State()}
	}

	over := g.sim.Status().Over()
	if over && in.Has(platformcore.ActionRestart) {
		g.round++
		if g.board != nil {
			g.start(g.board.Layout(g.world.Width, g.world.Height))
		} else {
			g.sim.Restart()
		}
		g.paused = false
		g.feed = g.feed[:0]
		g.logger.Info("new game", "round", g.round)
		return platformcore.StepResult{State: g.State()}
	}
	if !over && in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	for _, ptr := range in.Pointers {
		if pos, ok := g.pointerToWorld(ptr); ok {
			g.sim.PointerDown(pos.X, pos.Y)
		}
	}
	if in.Has(platformcore.ActionCancel) {
		g.sim.ClearSelection()
	}

	g.sim.Advance(g.frameMs)
	return platformcore.StepResult{State: g.State()}
}

// start creates the simulation for the current round, from a fixed layout
// when one is given. Map rounds after the first use a shifted seed so the
// opponent does not replay the same game.
func (g *Game) start(layout []core.PlanetSpec) bool {
	opts := []core.Option{core.WithLogger(g.logger), core.WithBus(g.bus)}
	if layout != nil {
		opts = append(opts, core.WithLayout(layout))
	}
	sim, err := core.New(g.world, core.NewRandom(g.seed+int64(g.round-1)), opts...)
	if err != nil {
		g.err = err
		g.sim = nil
		g.logger.Error("cannot start game", "err", err)
		return false
	}
	g.sim = sim
	return true
}

// State reports the player's planet count as the score.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	st := g.sim.Status()
	gs := platformcore.GameState{
		Score:    len(g.sim.PlanetsOwnedBy(core.Player)),
		GameOver: st.Over(),
		Paused:   g.paused,
	}
	if st.Over() {
		gs.Result = st.Result.String()
	}
	return gs
}

// Summary describes the current game for match history.
func (g *Game) Summary() platformcore.MatchSummary {
	m := platformcore.MatchSummary{Game: ID, Seed: g.seed, Round: g.round}
	if g.sim == nil {
		return m
	}
	st := g.sim.Stats()
	if g.sim.Status().Over() {
		m.Result = g.sim.Status().Result.String()
	}
	m.DurationMs = st.ElapsedMs
	m.FleetsLaunched = st.FleetsLaunched[core.Player]
	m.ShipsLaunched = st.ShipsLaunched[core.Player]
	m.Captures = st.Captures[core.Player]
	m.PlanetsHeld = len(g.sim.PlanetsOwnedBy(core.Player))
	return m
}

// Simulation exposes the running engine, or nil before Reset.
func (g *Game) Simulation() *core.Simulation {
	return g.sim
}

// cellToWorld maps a playfield cell to the world point at its center.
// Cells on the HUD or outside the screen are not part of the playfield.
func (g *Game) cellToWorld(c platformcore.Point) (core.Vec, bool) {
	if c.X < 0 || c.X >= g.screenW || c.Y < hudHeight || c.Y >= g.screenH {
		return core.Vec{}, false
	}
	return core.V(
		(float64(c.X)+0.5)*unitsPerCol,
		(float64(c.Y-hudHeight)+0.5)*unitsPerRow,
	), true
}

// pointerToWorld resolves a click to its cell center and a typed label to
// the center of the labelled planet.
func (g *Game) pointerToWorld(ptr platformcore.Pointer) (core.Vec, bool) {
	if !ptr.IsKey() {
		return g.cellToWorld(ptr.Cell)
	}
	p := g.planetForKey(ptr.Key)
	if p == nil {
		return core.Vec{}, false
	}
	return p.Pos, true
}

// worldToCell maps a world point to the screen cell containing it.
func worldToCell(v core.Vec) platformcore.Point {
	return platformcore.Point{
		X: int(math.Floor(v.X / unitsPerCol)),
		Y: int(math.Floor(v.Y/unitsPerRow)) + hudHeight,
	}
}

// keyFor returns the hotkey label of a planet id.
func keyFor(id int) rune {
	if id < 0 || id >= len(hotkeys) {
		return '?'
	}
	return rune(hotkeys[id])
}

func (g *Game) planetForKey(r rune) *core.Planet {
	i := strings.IndexRune(hotkeys, r)
	if i < 0 {
		return nil
	}
	return g.sim.Planet(i)
}

// record keeps a short log of notable events for the HUD.
func (g *Game) record(e core.Event) {
	var line string
	switch e.Kind {
	case core.EventFleetLaunched:
		line = fmt.Sprintf("%s sent %d to %c", who(e.Owner), e.Ships, keyFor(e.Fleet.Target.ID))
	case core.EventFleetArrived:
		switch e.Outcome {
		case core.OutcomeConquered, core.OutcomeCaptured:
			line = fmt.Sprintf("%s took %c", who(e.Owner), keyFor(e.PlanetID))
		case core.OutcomeRepelled:
			line = fmt.Sprintf("%c held against %s", keyFor(e.PlanetID), who(e.Owner))
		}
	case core.EventGameEnded:
		line = e.Result.String()
	}
	if line == "" {
		return
	}
	g.feed = append(g.feed, line)
	if len(g.feed) > feedSize {
		g.feed = g.feed[len(g.feed)-feedSize:]
	}
}

func who(f core.Faction) string {
	switch f {
	case core.Player:
		return "You"
	case core.Opponent:
		return "Enemy"
	default:
		return "Neutral"
	}
}
