package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinyplay/tinyplay/style"
)

// notifier shows a short lived message next to the last line of the view.
type notifier struct {
	notification string
}

// notification is a Bubbletea message displayed by the notifier.
type notification string

type clearNotificationMsg struct{}

func notify(s string) tea.Cmd {
	return func() tea.Msg {
		return notification(s)
	}
}

func clearNotification() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

func (n *notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notification:
		n.notification = string(msg)
		return clearNotification()
	case clearNotificationMsg:
		n.notification = ""
	}
	return nil
}

func (n *notifier) View(content string) string {
	if n.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(n.notification)
	return strings.Join(lines, "\n")
}
