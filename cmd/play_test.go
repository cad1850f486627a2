package cmd

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/history"
	"github.com/tinyplay/tinyplay/playlist"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestOpenPlaylist(t *testing.T) {
	Convey("Given a playlist file", t, func() {
		So(filesystem.API().MkdirAll("/music", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("/music/list.txt", []byte("a.mp3\nb.mp3\nc.mp3\n"), 0o644), ShouldBeNil)
		So(history.Clear(), ShouldBeNil)

		Convey("The cursor starts at the first entry", func() {
			list, err := openPlaylist(playOptions{Playlist: "/music/list.txt"})
			So(err, ShouldBeNil)
			So(list.Index(), ShouldEqual, 0)
		})

		Convey("--index moves the cursor", func() {
			list, err := openPlaylist(playOptions{Playlist: "/music/list.txt", Index: 2})
			So(err, ShouldBeNil)
			So(list.Index(), ShouldEqual, 2)
		})

		Convey("An index past the end is an error", func() {
			_, err := openPlaylist(playOptions{Playlist: "/music/list.txt", Index: 7})
			So(errors.Is(err, playlist.ErrNotFound), ShouldBeTrue)
		})

		Convey("A negative index is rejected", func() {
			err := play(playOptions{Playlist: "/music/list.txt", Index: -3})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "--index")
			So(playOptions{Index: 2}.validate(), ShouldBeNil)
		})

		Convey("--continue resumes from history", func() {
			So(history.Save("/music/list.txt", 1, "file:///music/b.mp3"), ShouldBeNil)

			list, err := openPlaylist(playOptions{Playlist: "/music/list.txt", Continue: true})
			So(err, ShouldBeNil)
			So(list.Index(), ShouldEqual, 1)

			Convey("even without naming the playlist", func() {
				list, err := openPlaylist(playOptions{Continue: true})
				So(err, ShouldBeNil)
				So(list.Path(), ShouldEqual, "/music/list.txt")
				So(list.Index(), ShouldEqual, 1)
			})
		})

		Convey("A stale history entry starts over", func() {
			So(history.Save("/music/list.txt", 9, "file:///music/z.mp3"), ShouldBeNil)

			list, err := openPlaylist(playOptions{Playlist: "/music/list.txt", Continue: true})
			So(err, ShouldBeNil)
			So(list.Index(), ShouldEqual, 0)
		})

		Convey("Continuing with an empty history is an error", func() {
			_, err := openPlaylist(playOptions{Continue: true})
			So(err, ShouldNotBeNil)
		})
	})
}
