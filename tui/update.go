package tui

import (
	"errors"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/session"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.waitForBus(), b.tickPosition())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if b.state == loadingState {
			var spinnerCmd tea.Cmd
			b.spinnerC, spinnerCmd = b.spinnerC.Update(msg)
			cmd = tea.Batch(cmd, spinnerCmd)
		}
	case positionMsg:
		if msg.position >= 0 {
			b.position, b.duration = msg.position, msg.duration
		}
		if b.state != finishedState {
			cmd = tea.Batch(cmd, b.tickPosition())
		}
	case busMsg:
		return b, tea.Batch(cmd, b.handleBus(player.Message(msg)))
	case busClosedMsg:
		if b.state != finishedState && b.state != errorState {
			b.raiseError(errors.New("playback pipeline exited"))
		}
	case error:
		b.raiseError(msg)
	case tea.KeyMsg:
		return b, tea.Batch(cmd, b.handleKey(msg))
	}

	return b, cmd
}

func (b *statefulBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.forceQuit), bubblesKey.Matches(msg, b.keymap.quit):
		return b.quit()
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	}

	if b.state != playingState && b.state != loadingState {
		return nil
	}

	var err error
	switch {
	case bubblesKey.Matches(msg, b.keymap.playPause):
		err = b.session.TogglePause()
	case bubblesKey.Matches(msg, b.keymap.mute):
		err = b.session.ToggleMute()
	case bubblesKey.Matches(msg, b.keymap.next):
		err = b.skipped(b.session.Next())
	case bubblesKey.Matches(msg, b.keymap.prev):
		err = b.skipped(b.session.Prev())
	default:
		return nil
	}

	if errors.Is(err, playlist.ErrNotFound) {
		return notify("nothing to skip to")
	}

	if err != nil {
		// the pipeline refusing one command is not fatal
		log.Warn(err)
		return notify(err.Error())
	}

	return nil
}

// skipped resets the progress display after a user skip.
func (b *statefulBubble) skipped(err error) error {
	if err == nil {
		b.position, b.duration = 0, 0
	}
	return err
}

func (b *statefulBubble) handleBus(msg player.Message) tea.Cmd {
	if msg.Type == player.MessageStarted && b.state == loadingState {
		b.setState(playingState)
	}

	if msg.Type == player.MessageEOS || msg.Type == player.MessageError {
		b.position, b.duration = 0, 0
	}

	err := b.session.Handle(msg)
	switch {
	case errors.Is(err, session.ErrFinished):
		b.setState(finishedState)
		return b.quit()
	case err != nil:
		b.raiseError(err)
	}

	return b.waitForBus()
}

func (b *statefulBubble) quit() tea.Cmd {
	if err := b.session.Quit(); err != nil {
		log.Warn("closing pipeline: ", err)
	}
	return tea.Quit
}
