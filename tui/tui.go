// Package tui provides the interactive player view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinyplay/tinyplay/session"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	ShowProgress bool
	ShowHelp     bool
}

// Run starts playback of s and hands the keyboard to the Bubble Tea loop until the user quits
// or the playlist runs out.
func Run(s *session.Session, options *Options) error {
	bubble := newBubble(s, options)

	if err := s.Start(); err != nil {
		bubble.raiseError(err)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
