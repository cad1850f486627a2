package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinyplay/tinyplay/color"
	"github.com/tinyplay/tinyplay/constant"
	"github.com/tinyplay/tinyplay/icon"
	"github.com/tinyplay/tinyplay/key"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/style"
	"github.com/tinyplay/tinyplay/version"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd verifies the playback pipeline is installed and recent enough.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the playback pipeline is available",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.PlayerBinary)

		path, err := player.LookPath(binary)
		if err != nil {
			printMissingDependencyError(binary)
			handleErr(err)
		}

		v, err := version.Pipeline(path)
		handleErr(err)

		supported, err := version.Supported(v)
		handleErr(err)

		if !supported {
			handleErr(fmt.Errorf("%s %s is older than the required %s", binary, v, version.MinimumPipeline))
		}

		fmt.Printf(
			"%s %s %s at %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(binary),
			style.Fg(color.Yellow)(v),
			path,
		)
	},
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mpv"
	case constant.Linux:
		installCmd = "sudo apt install mpv"
	case constant.Windows:
		installCmd = "scoop install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The playback pipeline '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
