// Package mini implements a line based control loop for terminals where the full view is unwanted.
package mini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/session"
	"github.com/tinyplay/tinyplay/util"
)

var truncateAt = 100

type Options struct {
	In  io.Reader
	Out io.Writer
}

type mini struct {
	session *session.Session
	out     io.Writer
}

// Run plays s and reads one command per line until q, the end of input or the end of the playlist.
func Run(s *session.Session, options *Options) error {
	in, out := options.In, options.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	m := &mini{session: s, out: out}

	if err := s.Start(); err != nil {
		_ = s.Quit()
		return err
	}

	m.title("tinyplay")
	m.usage()
	m.status()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	bus := s.Player().Bus()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return s.Quit()
			}

			quit, err := m.command(strings.TrimSpace(line))
			if err != nil {
				m.fail(err.Error())
			}
			if quit {
				return s.Quit()
			}
		case msg, ok := <-bus:
			if !ok {
				return errors.New("playback pipeline exited")
			}

			if done, err := m.handle(msg); done || err != nil {
				_ = s.Quit()
				return err
			}
		}
	}
}

// readLines feeds the lines of in to the returned channel until in ends or done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// command applies one input line and reports whether the user asked to quit.
func (m *mini) command(line string) (quit bool, err error) {
	switch strings.ToLower(line) {
	case "q", "quit":
		return true, nil
	case "p", "pause":
		err = m.session.TogglePause()
	case "m", "mute":
		err = m.session.ToggleMute()
	case "n", "next":
		err = m.session.Next()
	case "b", "back", "prev":
		err = m.session.Prev()
	case "?", "h", "help":
		m.usage()
		return false, nil
	case "":
	default:
		return false, fmt.Errorf("unknown command %q", line)
	}

	if errors.Is(err, playlist.ErrNotFound) {
		m.info("nothing to skip to")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	m.status()
	return false, nil
}

// handle applies a pipeline notification and reports whether playback is over.
func (m *mini) handle(msg player.Message) (done bool, err error) {
	before := m.session.Locator()

	err = m.session.Handle(msg)
	if errors.Is(err, session.ErrFinished) {
		m.success("finished")
		return true, nil
	}
	if err != nil {
		return true, err
	}

	switch msg.Type {
	case player.MessageError:
		log.Warn(msg.Err)
		m.fail(msg.Err.Error())
	case player.MessageStateChanged, player.MessageMute:
		m.status()
	}

	if m.session.Locator() != before {
		m.status()
	}

	return false, nil
}
