package mini

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

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
func (f *fakePlayer) Position() (float64, error) { return 0, nil }
func (f *fakePlayer) Duration() (float64, error) { return 0, nil }
func (f *fakePlayer) Bus() <-chan player.Message { return f.bus }

func (f *fakePlayer) Close() error {
	f.closed = true
	return nil
}

func newSession(fp *fakePlayer) *session.Session {
	So(filesystem.API().MkdirAll("/music", 0o755), ShouldBeNil)
	So(filesystem.API().WriteFile("/music/list.txt", []byte("a.mp3\nb.mp3\n"), 0o644), ShouldBeNil)

	list, err := playlist.Open("/music/list.txt")
	So(err, ShouldBeNil)
	return session.New(fp, list, session.Options{})
}

func TestRun(t *testing.T) {
	Convey("Given commands on input", t, func() {
		fp := &fakePlayer{bus: make(chan player.Message)}
		s := newSession(fp)
		out := &bytes.Buffer{}

		err := Run(s, &Options{In: strings.NewReader("n\np\nn\nx\nq\nn\n"), Out: out})
		So(err, ShouldBeNil)

		Convey("They drive the session until q", func() {
			So(fp.played, ShouldResemble, []string{"file:///music/a.mp3", "file:///music/b.mp3"})
			So(fp.paused, ShouldBeTrue)
			So(fp.closed, ShouldBeTrue)
		})

		Convey("And the outcome is printed", func() {
			So(out.String(), ShouldContainSubstring, "#1 b")
			So(out.String(), ShouldContainSubstring, "paused")
			So(out.String(), ShouldContainSubstring, "nothing to skip to")
			So(out.String(), ShouldContainSubstring, `unknown command "x"`)
		})
	})

	Convey("The end of input quits", t, func() {
		fp := &fakePlayer{bus: make(chan player.Message)}
		So(Run(newSession(fp), &Options{In: strings.NewReader(""), Out: io.Discard}), ShouldBeNil)
		So(fp.closed, ShouldBeTrue)
	})

	Convey("The end of the playlist quits", t, func() {
		fp := &fakePlayer{bus: make(chan player.Message, 2)}
		fp.bus <- player.Message{Type: player.MessageEOS}
		fp.bus <- player.Message{Type: player.MessageEOS}

		// input that never ends
		r, w := io.Pipe()
		defer func() { _ = w.Close() }()

		out := &bytes.Buffer{}
		So(Run(newSession(fp), &Options{In: r, Out: out}), ShouldBeNil)
		So(fp.played, ShouldHaveLength, 2)
		So(out.String(), ShouldContainSubstring, "finished")
		So(fp.closed, ShouldBeTrue)
	})
}

// endless never runs out of input.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = "n\n"[i%2]
	}
	return len(p), nil
}

func TestReadLines(t *testing.T) {
	Convey("Given input that keeps coming", t, func() {
		done := make(chan struct{})
		lines := readLines(endless{}, done)

		Convey("Closing done stops the reader", func() {
			So(<-lines, ShouldEqual, "n")
			close(done)

			closed := make(chan struct{})
			go func() {
				for range lines {
				}
				close(closed)
			}()

			stopped := true
			select {
			case <-closed:
			case <-time.After(2 * time.Second):
				stopped = false
			}
			So(stopped, ShouldBeTrue)
		})
	})

	Convey("Given finite input", t, func() {
		done := make(chan struct{})
		lines := readLines(strings.NewReader("n\nn\nq\n"), done)

		Convey("Every line is delivered", func() {
			var got []string
			for line := range lines {
				got = append(got, line)
			}
			So(got, ShouldResemble, []string{"n", "n", "q"})
			close(done)
		})
	})
}
