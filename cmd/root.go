// Package cmd implements the command-line interface for tinyplay.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinyplay/tinyplay/color"
	"github.com/tinyplay/tinyplay/constant"
	"github.com/tinyplay/tinyplay/icon"
	"github.com/tinyplay/tinyplay/key"
	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember the last played entry of the playlist")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().BoolP("loop", "l", false, "Wrap around to the first entry after the last one")
	lo.Must0(viper.BindPFlag(key.PlaylistLoop, rootCmd.PersistentFlags().Lookup("loop")))

	rootCmd.PersistentFlags().BoolP("mini", "m", false, "Control playback with line commands instead of the full view")

	rootCmd.Flags().StringP("uri", "u", "", "Play a single locator instead of a playlist")
	rootCmd.Flags().IntP("index", "i", 0, "Start from this zero based playlist entry")
	rootCmd.Flags().BoolP("continue", "c", false, "Resume from the last played entry")
	rootCmd.MarkFlagsMutuallyExclusive("uri", "index")
	rootCmd.MarkFlagsMutuallyExclusive("uri", "continue")
	rootCmd.MarkFlagsMutuallyExclusive("index", "continue")
}

// rootCmd defines the entry point for the tinyplay application.
var rootCmd = &cobra.Command{
	Use:   constant.Tinyplay + " [playlist]",
	Short: "A tiny terminal audio player for playlist files",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - A tiny terminal audio player for playlist files"),
	Example: "  tinyplay ~/music/evening.txt\n  tinyplay -u https://radio.example/stream\n  tinyplay -c",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := playOptions{
			URI:      lo.Must(cmd.Flags().GetString("uri")),
			Index:    lo.Must(cmd.Flags().GetInt("index")),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
			Mini:     lo.Must(cmd.Flags().GetBool("mini")),
		}

		if len(args) > 0 {
			options.Playlist = args[0]
		}

		if options.URI == "" && options.Playlist == "" && !options.Continue {
			handleErr(cmd.Help())
			return
		}

		handleErr(play(options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
