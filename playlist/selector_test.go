package playlist

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelect(t *testing.T) {
	Convey("Given a playlist with three entries", t, func() {
		const content = "a.mp3\nb.mp3\nc.mp3\n"
		entry := NewEntry()

		Convey("Selecting index 1 yields the second line", func() {
			So(Select(strings.NewReader(content), 1, entry), ShouldBeTrue)
			So(entry.String(), ShouldEqual, "b.mp3")
			So(string(entry.Terminated()), ShouldEqual, "b.mp3\n")
			So(entry.Len(), ShouldEqual, 5)
		})

		Convey("Selecting index 0 yields the first line", func() {
			So(Select(strings.NewReader(content), 0, entry), ShouldBeTrue)
			So(entry.String(), ShouldEqual, "a.mp3")
		})

		Convey("Selecting past the end reports failure and leaves the buffer unchanged", func() {
			So(Select(strings.NewReader(content), 0, entry), ShouldBeTrue)
			before := entry.String()
			capBefore := entry.Cap()

			So(Select(strings.NewReader(content), 5, entry), ShouldBeFalse)
			So(entry.String(), ShouldEqual, before)
			So(entry.Cap(), ShouldEqual, capBefore)
		})

		Convey("A negative index selects nothing", func() {
			So(Select(strings.NewReader(content), -1, entry), ShouldBeFalse)
			So(entry.IsEmpty(), ShouldBeTrue)
		})

		Convey("Selection is repeatable on a rewound stream", func() {
			r := strings.NewReader(content)
			So(Select(r, 2, entry), ShouldBeTrue)
			first := entry.String()

			_, err := r.Seek(0, io.SeekStart)
			So(err, ShouldBeNil)
			So(Select(r, 2, entry), ShouldBeTrue)
			So(entry.String(), ShouldEqual, first)
		})

		Convey("A nil buffer selects nothing", func() {
			So(Select(strings.NewReader(content), 0, nil), ShouldBeFalse)
		})
	})

	Convey("Given an empty file", t, func() {
		entry := NewEntry()
		So(Select(strings.NewReader(""), 0, entry), ShouldBeFalse)
		So(entry.IsEmpty(), ShouldBeTrue)
	})

	Convey("Given a last line without a trailing newline", t, func() {
		entry := NewEntry()
		So(Select(strings.NewReader("a.mp3\nb.mp3"), 1, entry), ShouldBeTrue)
		So(entry.String(), ShouldEqual, "b.mp3")

		Convey("The index after it is still out of range", func() {
			So(Select(strings.NewReader("a.mp3\nb.mp3"), 2, entry), ShouldBeFalse)
		})
	})

	Convey("Given an empty line", t, func() {
		entry := NewEntry()
		So(Select(strings.NewReader("a.mp3\n\nc.mp3\n"), 1, entry), ShouldBeTrue)
		So(entry.String(), ShouldEqual, "")
		So(string(entry.Terminated()), ShouldEqual, "\n")
	})

	Convey("Given a line longer than the increment", t, func() {
		long := strings.Repeat("x", 300)
		entry := NewEntry()
		So(entry.Cap(), ShouldEqual, Increment)

		So(Select(strings.NewReader("short\n"+long+"\n"), 1, entry), ShouldBeTrue)

		Convey("The buffer grows in increments without truncating", func() {
			So(entry.String(), ShouldEqual, long)
			So(entry.Cap(), ShouldBeGreaterThanOrEqualTo, len(long)+1)
			So(entry.Cap()%Increment, ShouldEqual, 0)
		})

		Convey("A shorter selection never shrinks it", func() {
			grown := entry.Cap()
			So(Select(strings.NewReader("short\n"+long+"\n"), 0, entry), ShouldBeTrue)
			So(entry.String(), ShouldEqual, "short")
			So(entry.Cap(), ShouldEqual, grown)
		})
	})

	Convey("Given a line of exactly Increment-1 bytes", t, func() {
		line := strings.Repeat("y", Increment-1)
		entry := NewEntry()
		So(Select(strings.NewReader(line+"\n"), 0, entry), ShouldBeTrue)
		So(entry.Cap(), ShouldEqual, Increment)
		So(len(entry.Terminated()), ShouldEqual, Increment)
	})

	Convey("Given a zero Entry", t, func() {
		var entry Entry
		So(Select(strings.NewReader("a.mp3\n"), 0, &entry), ShouldBeTrue)
		So(entry.String(), ShouldEqual, "a.mp3")
		So(entry.Cap(), ShouldEqual, Increment)
	})

	Convey("Given a stream failing mid-way", t, func() {
		boom := errors.New("boom")
		entry := NewEntry()
		r := io.MultiReader(strings.NewReader("a.mp3\n"), iotest.ErrReader(boom))

		So(Select(r, 1, entry), ShouldBeFalse)
		So(entry.IsEmpty(), ShouldBeTrue)
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Finds a line", func() {
			s, err := Lookup(strings.NewReader("a\nb\n"), 1)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "b")
		})

		Convey("Reports a short stream as ErrNotFound", func() {
			_, err := Lookup(strings.NewReader("a\nb\n"), 2)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Reports read failures distinctly", func() {
			boom := errors.New("boom")
			_, err := Lookup(iotest.ErrReader(boom), 0)
			So(errors.Is(err, boom), ShouldBeTrue)
			So(errors.Is(err, ErrNotFound), ShouldBeFalse)
		})
	})
}

func TestEntries(t *testing.T) {
	Convey("Entries", t, func() {
		Convey("Splits on newlines and keeps the unterminated tail", func() {
			entries, err := Entries(strings.NewReader("a\n\nc"))
			So(err, ShouldBeNil)
			So(entries, ShouldResemble, []string{"a", "", "c"})
		})

		Convey("An empty stream has no entries", func() {
			n, err := Count(strings.NewReader(""))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})

		Convey("Count agrees with Select", func() {
			const content = "a\nb\nc\n"
			n, err := Count(strings.NewReader(content))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)
			So(Select(strings.NewReader(content), n-1, NewEntry()), ShouldBeTrue)
			So(Select(strings.NewReader(content), n, NewEntry()), ShouldBeFalse)
		})
	})
}
