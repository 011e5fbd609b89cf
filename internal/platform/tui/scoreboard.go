package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-fight/internal/highscore"
	"github.com/vovakirdan/sky-fight/internal/storage"
)

// Scoreboard layout constants
const (
	historyLimit = 20 // Rows loaded for the history views
	tableMaxRows = 12
)

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewTopScores scoreView = iota
	viewRecent
	viewBest
	viewCount
)

func (v scoreView) String() string {
	switch v {
	case viewTopScores:
		return "Top 5"
	case viewRecent:
		return "Recent"
	case viewBest:
		return "Best runs"
	default:
		return "?"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
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
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top-5 table and the session history.
type ScoreboardModel struct {
	scores    *highscore.Table
	store     *storage.Store // May be nil; the history views are then empty
	view      scoreView
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	loadErr   error
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the top-5 view.
func NewScoreboardModel(scores *highscore.Table, store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		scores: scores,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// columns returns the table columns of the current view.
func (m ScoreboardModel) columns() []table.Column {
	if m.view == viewTopScores {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 16},
			{Title: "Score", Width: 12},
		}
	}
	return []table.Column{
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 10},
		{Title: "Result", Width: 7},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 13},
	}
}

// rows builds the table rows of the current view.
func (m *ScoreboardModel) rows() []table.Row {
	m.loadErr = nil

	if m.view == viewTopScores {
		if m.scores == nil {
			return nil
		}
		entries := m.scores.Entries()
		rows := make([]table.Row, len(entries))
		for i, e := range entries {
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
		}
		return rows
	}

	if m.store == nil {
		return nil
	}
	var (
		records []storage.SessionRecord
		err     error
	)
	if m.view == viewRecent {
		records, err = m.store.RecentSessions(historyLimit)
	} else {
		records, err = m.store.TopSessions(historyLimit)
	}
	if err != nil {
		m.loadErr = err
		return nil
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			r.Player,
			fmt.Sprintf("%d", r.Score),
			result,
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// load rebuilds the table for the current view.
func (m *ScoreboardModel) load() {
	rows := m.rows()

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(rows), 1), tableMaxRows)+1),
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

	m.table = t
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SCORES"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return place(m.width, m.height, b.String())
}

func (m ScoreboardModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, viewCount)
	for v := range viewCount {
		if v == m.view {
			tabs[v] = activeTabStyle.Render(v.String())
		} else {
			tabs[v] = dimStyle.Render(" " + v.String() + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := dimStyle.Italic(true).Padding(1, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read history:\n" + m.loadErr.Error())
	case m.view != viewTopScores && m.store == nil:
		return emptyStyle.Render("Session history is unavailable.")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Reload refreshes the current view from the table and the store.
func (m *ScoreboardModel) Reload() {
	m.load()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
