package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Versions are found in pipeline banners", t, func() {
		v, err := Extract("mpv 0.35.1 Copyright © 2000-2023 mpv/MPlayer/mplayer2 projects")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "0.35.1")

		v, err = Extract("mpv v0.38.0-12-gabcdef Copyright")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "0.38.0")

		_, err = Extract("mpv git-master")
		So(err, ShouldNotBeNil)
	})
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("Newer is greater", func() {
			c, err := Compare("0.36.0", "0.33.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("Older is smaller", func() {
			c, err := Compare("0.32.9", "0.33.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Equal is zero", func() {
			c, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Garbage is an error", func() {
			_, err := Compare("x", "1.2.3")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Supported gates on the minimum", t, func() {
		ok, err := Supported("0.33.0")
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)

		ok, err = Supported("0.29.1")
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)
	})
}
