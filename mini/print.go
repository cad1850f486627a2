package mini

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/tinyplay/tinyplay/color"
	"github.com/tinyplay/tinyplay/icon"
	"github.com/tinyplay/tinyplay/style"
)

func (m *mini) println(s string) {
	_, _ = fmt.Fprintln(m.out, truncate.StringWithTail(s, uint(truncateAt), "…"))
}

func (m *mini) title(s string) {
	m.println(style.Title(s))
}

func (m *mini) usage() {
	m.println(style.Faint("p pause · m mute · n next · b previous · q quit · ? help"))
}

func (m *mini) status() {
	state := icon.Get(icon.Play) + " " + style.Fg(color.Green)("playing")
	if m.session.Paused() {
		state = icon.Get(icon.Pause) + " " + style.Fg(color.Yellow)("paused")
	}

	parts := []string{
		state,
		fmt.Sprintf("#%d", m.session.Index()),
		style.Fg(color.Purple)(m.session.Title()),
	}

	if m.session.Muted() {
		parts = append(parts, icon.Get(icon.Mute)+" muted")
	}

	m.println(strings.Join(parts, " "))
}

func (m *mini) info(s string) {
	m.println(style.Faint(s))
}

func (m *mini) success(s string) {
	m.println(icon.Get(icon.Success) + " " + style.Fg(color.Green)(s))
}

func (m *mini) fail(s string) {
	m.println(icon.Get(icon.Fail) + " " + style.Fg(color.Red)(s))
}
