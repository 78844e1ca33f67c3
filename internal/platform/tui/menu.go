package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

// MenuItem represents a selectable track in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	Summary   string
	HighScore int
}

// MenuModel is the Bubble Tea model for the track picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a track
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates a new menu model. High scores are shown when a store is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Summary: g.Summary}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  R O A D   R A C E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a track", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-16s", item.Title)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-16s", item.Title))
		}
		best := menuDimStyle.Render(fmt.Sprintf("best %5d", item.HighScore))
		b.WriteString(centerText(line+"  "+best, m.width))
		b.WriteString("\n")
	}

	if m.cursor < len(m.items) {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Race  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
