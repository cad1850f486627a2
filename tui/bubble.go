package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinyplay/tinyplay/session"
	"github.com/tinyplay/tinyplay/style"
	"github.com/tinyplay/tinyplay/util"
)

// statefulBubble is the player view. It owns the session: every call into it happens on the Update goroutine.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	session *session.Session

	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model
	notifier  *notifier

	position, duration float64
	lastError          error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.progressC.Width = b.width
	b.helpC.Width = b.width
}

func newBubble(s *session.Session, options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:   newStatefulKeymap(),
		session:  s,
		notifier: &notifier{},
		options:  options,
	}

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = options.ShowHelp

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)
	return &bubble
}
