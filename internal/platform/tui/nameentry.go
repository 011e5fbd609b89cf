package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-fight/internal/highscore"
)

// nameLimit bounds the length of a name in the top-5 table.
const nameLimit = 16

// NameEntry asks for the name to store with a qualifying score.
type NameEntry struct {
	input       textinput.Model
	defaultName string
	score       int
	done        bool
}

// NewNameEntry creates a focused name prompt prefilled with defaultName.
func NewNameEntry(defaultName string, score int) NameEntry {
	defaultName = strings.TrimSpace(defaultName)
	if defaultName == "" {
		defaultName = highscore.DefaultName
	}

	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.CharLimit = nameLimit
	ti.Width = nameLimit + 1
	ti.Prompt = "> "
	ti.SetValue(defaultName)
	ti.CursorEnd()
	ti.Focus()

	return NameEntry{input: ti, defaultName: defaultName, score: score}
}

// Update feeds a message to the prompt. Enter and Esc both finish the entry;
// Esc keeps the default name.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			n.done = true
			return n, nil
		case "esc":
			n.input.SetValue(n.defaultName)
			n.done = true
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Done reports whether the player finished typing.
func (n NameEntry) Done() bool {
	return n.done
}

// Name returns the entered name, or the default when left blank.
func (n NameEntry) Name() string {
	name := strings.TrimSpace(n.input.Value())
	if name == "" {
		return n.defaultName
	}
	return name
}

// Score returns the score being recorded.
func (n NameEntry) Score() int {
	return n.score
}

// View renders the prompt centered in a width x height area.
func (n NameEntry) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW HIGH SCORE"))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render(fmt.Sprintf("%d", n.score)))
	b.WriteString("\n\n")
	b.WriteString(itemStyle.Render("Enter your name:"))
	b.WriteString("\n")
	b.WriteString(n.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter: save  esc: use default"))
	return place(width, height, b.String())
}
