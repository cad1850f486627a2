package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinyplay/tinyplay/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(2, "entry", "entries"), ShouldEqual, "2 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(-1, 0, 100), ShouldEqual, 0)
		So(Clamp(150, 0, 100), ShouldEqual, 100)
		So(Clamp(42, 0, 100), ShouldEqual, 42)
	})
}

func TestFormatPosition(t *testing.T) {
	Convey("FormatPosition", t, func() {
		So(FormatPosition(0), ShouldEqual, "0:00")
		So(FormatPosition(75.9), ShouldEqual, "1:15")
		So(FormatPosition(3723), ShouldEqual, "1:02:03")
		So(FormatPosition(-5), ShouldEqual, "0:00")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/sub", 0o755), ShouldBeNil)
		So(fs.WriteFile("/cache/sub/a", []byte("a"), 0o644), ShouldBeNil)

		So(Delete("/cache"), ShouldBeNil)
		exists, _ := fs.Exists("/cache/sub/a")
		So(exists, ShouldBeFalse)

		So(Delete("/missing"), ShouldNotBeNil)
	})
}
