// ABOUTME: Bubbletea model for the table preview TUI
// ABOUTME: Scrollable view of index, bit string, value and a level bar
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

// Rows taken by the header and help lines
const chromeRows = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model represents the TUI state
type Model struct {
	params sinetable.Params

	// First visible line
	offset int

	// Dimensions
	width  int
	height int

	quitting bool
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = m.clamp(m.offset)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Sine Table Preview"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Table: "))
	b.WriteString(valueStyle.Render(m.params.String()))
	b.WriteString(headerStyle.Render("  Lines: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, m.lastVisible()+1, m.params.Len())))
	b.WriteString("\n\n")

	for n := m.offset; n <= m.lastVisible(); n++ {
		b.WriteString(m.renderRow(n))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓:Scroll  PgUp/PgDn:Page  Home/End:Jump  q:Quit"))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders one table line
func (m Model) renderRow(n int) string {
	value := m.params.At(n)
	bits, _ := sinetable.Encode(value, m.params.BitWidth)

	bitsWidth := m.width / 3
	if bitsWidth < 8 {
		bitsWidth = 8
	}

	row := fmt.Sprintf("%6d  %-*s  %20d  ", n, bitsWidth, truncate(bits, bitsWidth), value)
	barWidth := m.width - len(row)
	if barWidth < 0 {
		barWidth = 0
	}
	return valueStyle.Render(row) + barStyle.Render(renderBar(value, m.params.MaxValue(), barWidth))
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.offset = m.clamp(m.offset - 1)
	case "down", "j":
		m.offset = m.clamp(m.offset + 1)
	case "pgup", "b":
		m.offset = m.clamp(m.offset - m.pageSize())
	case "pgdown", " ", "f":
		m.offset = m.clamp(m.offset + m.pageSize())
	case "home", "g":
		m.offset = 0
	case "end", "G":
		m.offset = m.clamp(m.params.Len())
	}

	return m, nil
}

func (m Model) pageSize() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) lastVisible() int {
	last := m.offset + m.pageSize() - 1
	if last >= m.params.Len() {
		last = m.params.Len() - 1
	}
	return last
}

func (m Model) clamp(offset int) int {
	maxOffset := m.params.Len() - m.pageSize()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Utility functions
func renderBar(value, max uint64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 {
		filled = int(float64(value) / float64(max) * float64(width))
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
