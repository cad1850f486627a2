package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/util"
)

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().IntP("page-size", "p", 15, "Number of entries shown at once")
}

// pickCmd lets the user choose the starting entry interactively.
var pickCmd = &cobra.Command{
	Use:   "pick [playlist]",
	Short: "Choose the entry to start from",
	Long:  "List the playlist entries with a filterable prompt and start playback from the chosen one.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list, err := playlist.Open(args[0])
		handleErr(err)

		entries, err := list.Entries()
		handleErr(err)

		if len(entries) == 0 {
			handleErr(fmt.Errorf("%s: %w", list.Path(), playlist.ErrNotFound))
		}

		options := lo.Map(entries, func(entry string, i int) string {
			return fmt.Sprintf("%d. %s", i, playlist.Title(entry))
		})

		var index int
		err = survey.AskOne(&survey.Select{
			Message:  fmt.Sprintf("Start from (%s)", util.Quantify(len(entries), "entry", "entries")),
			Options:  options,
			PageSize: lo.Must(cmd.Flags().GetInt("page-size")),
			Description: func(_ string, i int) string {
				return entries[i]
			},
		}, &index)
		handleErr(err)

		handleErr(play(playOptions{
			Playlist: list.Path(),
			Index:    index,
			Mini:     lo.Must(cmd.Flags().GetBool("mini")),
		}))
	},
}
