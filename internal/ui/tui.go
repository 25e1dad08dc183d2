// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the table preview
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Resonate-Protocol/sinegen/pkg/sinetable"
)

// NewModel creates a new preview model
func NewModel(params sinetable.Params) Model {
	return Model{
		params: params,
		width:  80,
		height: 24,
	}
}

// Run starts the preview and blocks until the user quits
func Run(params sinetable.Params) error {
	p := tea.NewProgram(NewModel(params), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
