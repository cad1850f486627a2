package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/tinyplay/tinyplay/key"
)

func TestConfigKey(t *testing.T) {
	Convey("Given a command with a --key flag", t, func() {
		cmd := &cobra.Command{}
		cmd.Flags().String("key", "", "")

		Convey("The argument wins over the flag", func() {
			So(cmd.Flags().Set("key", key.PlayerBinary), ShouldBeNil)
			k, err := configKey(cmd, []string{key.PlayerVolume})
			So(err, ShouldBeNil)
			So(k, ShouldEqual, key.PlayerVolume)
		})

		Convey("The flag is used without an argument", func() {
			So(cmd.Flags().Set("key", key.PlayerBinary), ShouldBeNil)
			k, err := configKey(cmd, nil)
			So(err, ShouldBeNil)
			So(k, ShouldEqual, key.PlayerBinary)
		})

		Convey("A missing key is an error", func() {
			_, err := configKey(cmd, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown key suggests the closest one", func() {
			_, err := configKey(cmd, []string{"player.volum"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.PlayerVolume)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Values take the type of their default", t, func() {
		v, err := parseValue(key.PlayerVolume, []string{"80"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 80)

		v, err = parseValue(key.PlayerAboutToFinish, []string{"1.5"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 1.5)

		v, err = parseValue(key.HistorySave, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(key.PlayerBinary, []string{"/usr/bin/mpv"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "/usr/bin/mpv")

		v, err = parseValue(key.PlayerExtraArgs, []string{"--ao=pulse", "--gapless-audio=yes"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"--ao=pulse", "--gapless-audio=yes"})
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parseValue(key.PlayerVolume, []string{"loud"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.PlayerVolume)

		_, err = parseValue(key.PlayerVolume, nil)
		So(err, ShouldNotBeNil)
	})
}
