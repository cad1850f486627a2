package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/tinyplay/tinyplay/color"
	"github.com/tinyplay/tinyplay/icon"
	"github.com/tinyplay/tinyplay/style"
	"github.com/tinyplay/tinyplay/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playingState:
		output = b.viewPlaying()
	case finishedState:
		output = b.viewFinished()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + style.Truncate(b.width)(b.session.Locator()),
		},
	)
}

func (b *statefulBubble) viewPlaying() string {
	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Entry), style.Fg(color.Purple)(b.session.Title()))),
		style.Truncate(b.width)(style.Faint(fmt.Sprintf("#%d %s", b.session.Index(), b.session.Locator()))),
		"",
		b.stateLine(),
	}

	if b.options.ShowProgress {
		lines = append(lines, "", b.progressLine())
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) stateLine() string {
	var parts []string

	if b.session.Paused() {
		parts = append(parts, icon.Get(icon.Pause)+" "+style.Fg(color.Yellow)("paused"))
	} else {
		parts = append(parts, icon.Get(icon.Play)+" "+style.Fg(color.Green)("playing"))
	}

	if b.session.Muted() {
		parts = append(parts, icon.Get(icon.Mute)+" "+style.Fg(color.Red)("muted"))
	}

	return strings.Join(parts, "  ")
}

func (b *statefulBubble) progressLine() string {
	var percent float64
	if b.duration > 0 {
		percent = util.Clamp(b.position/b.duration, 0, 1)
	}

	timing := fmt.Sprintf("%s / %s", util.FormatPosition(b.position), util.FormatPosition(b.duration))
	return b.progressC.ViewAs(percent) + "\n" + style.Faint(timing)
}

func (b *statefulBubble) viewFinished() string {
	return b.renderLines(
		false,
		[]string{
			style.Title("Finished"),
			"",
			icon.Get(icon.Success) + " Nothing left to play",
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := strings.Count(strings.Join(lines, "\n"), "\n") + 1
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
