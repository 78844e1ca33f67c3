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

	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the track sidebar
	sidebarWidth       = 22  // Width of the track sidebar
	maxRuns            = 100 // Max runs to load
)

// runListing selects which runs the scoreboard shows.
type runListing int

const (
	listingBest runListing = iota
	listingRecent
)

func (l runListing) title() string {
	if l == listingRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Listing key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Listing, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Listing, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/l", "next track"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/h", "prev track"),
		),
		Listing: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	tracks    []registry.GameInfo
	cursor    int // Selected track
	listing   runListing
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard showing the best runs of the first track.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		tracks: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable builds an empty run table sized for the current window.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "HP", Width: 3},
		{Title: "End", Width: 9},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 12},
	}

	// Spare room goes to the date column
	room := m.width - 4
	if m.wide() {
		room -= sidebarWidth + 3
	}
	if extra := room - 54; extra > 0 {
		columns[5].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
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

// reload fetches runs and stats for the selected track and listing.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.stats = nil
	if m.store != nil && len(m.tracks) > 0 {
		id := m.tracks[m.cursor].ID

		var runs []storage.Run
		var err error
		if m.listing == listingRecent {
			runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.HealthLeft),
			r.EndReason,
			r.Duration.Round(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the track cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.tracks) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.tracks)) % len(m.tracks)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil

		case key.Matches(msg, m.keys.Listing):
			m.listing = 1 - m.listing
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.listing.title()
	var summary string
	if len(m.tracks) > 0 {
		track := m.tracks[m.cursor]
		title += " - " + track.Title
		summary = track.Summary
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(board, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// sidebar lists every track with the selected one highlighted.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Tracks\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, t := range m.tracks {
		sb.WriteString("\n")
		if i == m.cursor {
			sb.WriteString(boardActiveStyle.Render("> " + t.Title))
		} else {
			sb.WriteString("  " + t.Title)
		}
	}
	return boardFrameStyle.Width(sidebarWidth).Render(sb.String())
}

// tabs shows the selected track between arrows for narrow terminals.
func (m ScoreboardModel) tabs() string {
	if len(m.tracks) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s  %d/%d >",
		boardActiveStyle.Render(m.tracks[m.cursor].Title), m.cursor+1, len(m.tracks))
}

// statsLine summarises every run of the current track.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No races yet"
	}
	st := m.stats
	return fmt.Sprintf("Races: %d  Best: %d  Avg: %.0f  Avg time: %s  Crashed: %d  Off road: %d",
		st.GamesCount, st.HighScore, st.AvgScore, st.AvgRunTime.Round(time.Second),
		st.EndReasons["crashed"], st.EndReasons["off_road"])
}

// tableView renders the table or a hint when there is nothing to show.
func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No races recorded yet.\nFinish a race to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
