package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/session"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakePlayer struct {
	played []string
	paused bool
	closed bool
	bus    chan player.Message
}

func (f *fakePlayer) Play(uri string) error {
	f.played = append(f.played, uri)
	return nil
}

func (f *fakePlayer) Append(string) error { return nil }

func (f *fakePlayer) TogglePause() error {
	f.paused = !f.paused
	return nil
}

func (f *fakePlayer) ToggleMute() error          { return nil }
func (f *fakePlayer) Position() (float64, error) { return 30, nil }
func (f *fakePlayer) Duration() (float64, error) { return 120, nil }
func (f *fakePlayer) Bus() <-chan player.Message { return f.bus }

func (f *fakePlayer) Close() error {
	f.closed = true
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBubble(t *testing.T) {
	Convey("Given a player view over two entries", t, func() {
		So(filesystem.API().MkdirAll("/music", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("/music/list.txt", []byte("a.mp3\nb.mp3\n"), 0o644), ShouldBeNil)

		list, err := playlist.Open("/music/list.txt")
		So(err, ShouldBeNil)

		fp := &fakePlayer{bus: make(chan player.Message)}
		s := session.New(fp, list, session.Options{})
		So(s.Start(), ShouldBeNil)

		b := newBubble(s, &Options{ShowProgress: true})
		b.resize(80, 24)
		So(b.state, ShouldEqual, loadingState)
		So(b.View(), ShouldContainSubstring, "Loading")

		b.Update(busMsg(player.Message{Type: player.MessageStarted}))
		So(b.state, ShouldEqual, playingState)
		So(b.View(), ShouldContainSubstring, "Now Playing")

		Convey("n skips forward and b skips back", func() {
			b.Update(runes("n"))
			So(s.Index(), ShouldEqual, 1)
			So(fp.played[len(fp.played)-1], ShouldEqual, "file:///music/b.mp3")

			b.Update(runes("b"))
			So(s.Index(), ShouldEqual, 0)
		})

		Convey("Skipping past the end keeps playing and notifies", func() {
			b.Update(runes("n"))
			_, cmd := b.Update(runes("n"))
			So(cmd, ShouldNotBeNil)
			So(s.Index(), ShouldEqual, 1)
			So(len(fp.played), ShouldEqual, 2)

			b.Update(notification("nothing to skip to"))
			So(b.View(), ShouldContainSubstring, "nothing to skip to")
		})

		Convey("p pauses", func() {
			b.Update(runes("p"))
			So(fp.paused, ShouldBeTrue)
			So(s.Paused(), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "paused")
		})

		Convey("Position ticks feed the progress line", func() {
			b.Update(positionMsg{position: 65, duration: 130})
			So(b.View(), ShouldContainSubstring, "1:05 / 2:10")
		})

		Convey("The end of the last track quits", func() {
			b.Update(runes("n"))
			_, cmd := b.Update(busMsg(player.Message{Type: player.MessageEOS}))
			So(cmd, ShouldNotBeNil)
			So(b.state, ShouldEqual, finishedState)
			So(fp.closed, ShouldBeTrue)
		})

		Convey("q quits", func() {
			b.Update(runes("q"))
			So(fp.closed, ShouldBeTrue)
		})

		Convey("A closed bus is an error", func() {
			b.Update(busClosedMsg{})
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "pipeline exited")
		})

		Convey("Errors are shown", func() {
			b.Update(errors.New("boom"))
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "boom")
		})
	})
}
