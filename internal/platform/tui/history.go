package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planetwars/internal/storage"
)

const maxHistory = 100

// HistorySource is the part of the store the history screen reads.
type HistorySource interface {
	RecentMatches(limit int) ([]storage.Match, error)
	Stats() (*storage.Stats, error)
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	matches  []storage.Match
	stats    storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads the history from src and builds the table.
func NewHistoryModel(src HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if src != nil {
		m.matches, m.loadErr = src.RecentMatches(maxHistory)
		if m.loadErr == nil {
			var st *storage.Stats
			if st, m.loadErr = src.Stats(); m.loadErr == nil {
				m.stats = *st
			}
		}
	}

	m.table = m.createTable()
	m.table.SetRows(HistoryRows(m.matches))
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Fleets", Width: 7},
		{Title: "Ships", Width: 7},
		{Title: "Caps", Width: 5},
		{Title: "Held", Width: 5},
		{Title: "Seed", Width: 12},
	}

	height := m.height - 9
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// HistoryRows formats matches as table rows, newest first as given.
func HistoryRows(matches []storage.Match) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, mt := range matches {
		rows[i] = table.Row{
			mt.CreatedAt.Format("Jan 02 15:04"),
			mt.Result,
			FormatDuration(time.Duration(mt.DurationMs) * time.Millisecond),
			fmt.Sprintf("%d", mt.FleetsLaunched),
			fmt.Sprintf("%d", mt.ShipsLaunched),
			fmt.Sprintf("%d", mt.Captures),
			fmt.Sprintf("%d", mt.PlanetsHeld),
			fmt.Sprintf("%d", mt.Seed),
		}
	}
	return rows
}

// FormatDuration renders a match length as m:ss.
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// StatsLine summarizes the whole history on one line.
func StatsLine(st storage.Stats) string {
	if st.Games == 0 {
		return "No matches recorded yet."
	}
	line := fmt.Sprintf("%d games  %d won  %d lost  %.0f%% wins  %.1f captures/game",
		st.Games, st.Wins, st.Losses, st.WinRate()*100, st.AvgCaptures)
	if st.FastestWin > 0 {
		line += "  fastest win " + FormatDuration(st.FastestWin)
	}
	return line
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.matches))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("PLANET WARS - MATCH HISTORY"))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.loadErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.loadErr.Error()))
	} else {
		b.WriteString(dimStyle.Render(StatsLine(m.stats)))
	}
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.matches) == 0 {
		empty := dimStyle.Italic(true).Padding(1, 2).
			Render("Finish a game to see it here.")
		b.WriteString(boxStyle.Render(empty))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunHistory shows the match history until the user quits.
func RunHistory(src HistorySource, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(src, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
