package tui

import (
	"strings"
)

// Menu is a vertical list of buttons with a cursor.
type Menu struct {
	title    string
	subtitle string
	items    []string
	cursor   int
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(title string, items ...string) Menu {
	return Menu{title: title, items: items}
}

// WithSubtitle returns a copy of the menu with a line under the title.
func (m Menu) WithSubtitle(s string) Menu {
	m.subtitle = s
	return m
}

// Handle applies a navigation action. It returns the chosen item index when
// the action selects, or -1.
func (m *Menu) Handle(action MenuAction) int {
	if len(m.items) == 0 {
		return -1
	}
	switch action {
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)
	case MenuActionSelect:
		return m.cursor
	}
	return -1
}

// Cursor returns the highlighted item index.
func (m Menu) Cursor() int {
	return m.cursor
}

// Reset moves the cursor back to the first item.
func (m *Menu) Reset() {
	m.cursor = 0
}

// View renders the menu centered in a width x height area.
func (m Menu) View(width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(dimStyle.Render(m.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		label := "  " + item + "  "
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(itemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down: move  enter: select  q: quit"))

	return place(width, height, b.String())
}
