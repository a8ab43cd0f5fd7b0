package planetwars

import (
	"fmt"
	"math"
	"math/rand"

	platformcore "github.com/vovakirdan/planetwars/internal/core"
	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// Stars per world area, as 200 stars on an 800x600 field.
const starDensity = 200.0 / (800 * 600)

// starfield places decoration stars in playfield cells. The same seed and
// size always give the same sky.
func starfield(seed int64, cols, rows int) []platformcore.Point {
	rng := rand.New(rand.NewSource(seed))
	area := float64(cols) * unitsPerCol * float64(rows) * unitsPerRow
	n := int(area * starDensity)

	stars := make([]platformcore.Point, n)
	for i := range stars {
		stars[i] = platformcore.Point{X: rng.Intn(cols), Y: rng.Intn(rows) + hudHeight}
	}
	return stars
}

func factionColor(f core.Faction) platformcore.Color {
	switch f {
	case core.Player:
		return platformcore.ColorBrightBlue
	case core.Opponent:
		return platformcore.ColorBrightRed
	default:
		return platformcore.ColorGray
	}
}

func planetFill(t core.PlanetType) rune {
	switch t {
	case core.PlanetBig:
		return '▓'
	case core.PlanetMedium:
		return '▒'
	default:
		return '░'
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", minCols, minRows), platformcore.ColorYellow)
		return
	}
	if g.sim == nil {
		msg := "Planet Wars could not start"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, platformcore.ColorRed)
		return
	}

	for _, s := range g.stars {
		dst.SetColored(s.X, s.Y, '.', platformcore.ColorDim)
	}
	g.renderFeed(dst)
	for _, p := range g.sim.Planets() {
		g.renderPlanet(dst, p)
	}
	for _, f := range g.sim.Fleets() {
		renderFleet(dst, f)
	}
	g.renderHUD(dst)

	switch {
	case g.sim.Status().Over():
		g.renderBanner(dst)
	case g.paused:
		renderBox(dst, []string{"PAUSED", "Press P to resume"}, platformcore.ColorYellow)
	}
}

// renderPlanet fills every cell whose center lies inside the planet and
// writes the hotkey and garrison over its center.
func (g *Game) renderPlanet(dst *platformcore.Screen, p *core.Planet) {
	color := factionColor(p.Owner())
	selected := g.sim.Selected() == p
	if selected {
		color = platformcore.ColorYellow
	}

	top := worldToCell(core.V(p.Pos.X-p.Radius, p.Pos.Y-p.Radius))
	bottom := worldToCell(core.V(p.Pos.X+p.Radius, p.Pos.Y+p.Radius))
	fill := planetFill(p.Type)
	for cy := top.Y; cy <= bottom.Y; cy++ {
		for cx := top.X; cx <= bottom.X; cx++ {
			center, ok := g.cellToWorld(platformcore.Point{X: cx, Y: cy})
			if ok && center.Dist(p.Pos) <= p.Radius {
				dst.SetColored(cx, cy, fill, color)
			}
		}
	}

	label := fmt.Sprintf("%c:%d", keyFor(p.ID), p.Garrison())
	if selected {
		label = "[" + label + "]"
	}
	c := worldToCell(p.Pos)
	dst.DrawTextColored(c.X-len(label)/2, c.Y, label, color)
}

func renderFleet(dst *platformcore.Screen, f *core.Fleet) {
	c := worldToCell(f.Pos)
	dst.SetColored(c.X, c.Y, arrow(angleOf(f.Target.Pos.Sub(f.Pos))), factionColor(f.Owner))
}

func angleOf(d core.Vec) float64 {
	return math.Atan2(d.Y, d.X)
}

// arrow picks the glyph closest to a bearing in radians, y pointing down.
func arrow(angle float64) rune {
	glyphs := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	i := int(math.Round(angle/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return glyphs[i]
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', platformcore.ColorDefault)

	mine := len(g.sim.PlanetsOwnedBy(core.Player))
	theirs := len(g.sim.PlanetsOwnedBy(core.Opponent))
	x := 0
	for _, part := range []struct {
		text  string
		color platformcore.Color
	}{
		{"PLANET WARS ", platformcore.ColorWhite},
		{fmt.Sprintf("You %d/%d ", mine, g.sim.FleetsOwnedBy(core.Player)), factionColor(core.Player)},
		{fmt.Sprintf("Enemy %d/%d ", theirs, g.sim.FleetsOwnedBy(core.Opponent)), factionColor(core.Opponent)},
		{fmt.Sprintf("%3.0fs", g.sim.Now()/1000), platformcore.ColorGray},
	} {
		dst.DrawTextColored(x, 0, part.text, part.color)
		x += len([]rune(part.text))
	}

	hint := "esc cancel  p pause  q quit"
	if sel := g.sim.Selected(); sel != nil {
		hint = fmt.Sprintf("%c selected, pick a target", keyFor(sel.ID))
	}
	if hx := dst.Width() - len([]rune(hint)); hx > x+1 {
		dst.DrawTextColored(hx, 0, hint, platformcore.ColorGray)
	}
}

func (g *Game) renderFeed(dst *platformcore.Screen) {
	y := dst.Height() - len(g.feed)
	for i, line := range g.feed {
		dst.DrawTextColored(1, y+i, line, platformcore.ColorGray)
	}
}

func (g *Game) renderBanner(dst *platformcore.Screen) {
	st := g.sim.Status()
	title, color := "GAME OVER", platformcore.ColorRed
	if st.Result == core.ResultVictory {
		title, color = "YOU WIN!", platformcore.ColorGreen
	}
	renderBox(dst, []string{title, "", "Press R to restart", "Press Q to quit"}, color)
}

// renderBox draws centered lines inside a bordered box over the playfield.
func renderBox(dst *platformcore.Screen, lines []string, color platformcore.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	field := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	box := field.Centered(w+6, len(lines)+2)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
