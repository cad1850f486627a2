package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinyplay/tinyplay/player"
)

type busMsg player.Message

// busClosedMsg reports that the pipeline exited.
type busClosedMsg struct{}

type positionMsg struct {
	position, duration float64
}

func (b *statefulBubble) waitForBus() tea.Cmd {
	bus := b.session.Player().Bus()
	return func() tea.Msg {
		msg, ok := <-bus
		if !ok {
			return busClosedMsg{}
		}
		return busMsg(msg)
	}
}

// tickPosition polls the pipeline once per second.
func (b *statefulBubble) tickPosition() tea.Cmd {
	p := b.session.Player()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		// position is unavailable between tracks, keep the last known values then
		position, err := p.Position()
		if err != nil {
			return positionMsg{position: -1}
		}
		duration, _ := p.Duration()
		return positionMsg{position: position, duration: duration}
	})
}
