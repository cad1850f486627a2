package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinyplay/tinyplay/color"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/icon"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/style"
	"github.com/tinyplay/tinyplay/util"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
}

// playlistCmd groups read-only playlist inspection commands.
var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Inspect playlist files",
}

// withPlaylist opens path through the active filesystem and hands the reader to fn.
func withPlaylist(path string, fn func(r io.Reader) error) error {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return fmt.Errorf("open playlist: %w", err)
	}
	defer util.Ignore(f.Close)

	return fn(f)
}

func init() {
	playlistCmd.AddCommand(playlistLsCmd)
	playlistLsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	playlistLsCmd.SetOut(os.Stdout)
}

var playlistLsCmd = &cobra.Command{
	Use:   "ls [playlist]",
	Short: "List every entry with its index",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withPlaylist(args[0], func(r io.Reader) error {
			entries, err := playlist.Entries(r)
			if err != nil {
				return err
			}

			if lo.Must(cmd.Flags().GetBool("json")) {
				matches := lo.Map(entries, func(entry string, i int) playlist.Match {
					return playlist.Match{Index: i, Locator: entry}
				})
				return json.NewEncoder(cmd.OutOrStdout()).Encode(matches)
			}

			width := len(strconv.Itoa(len(entries)))
			for i, entry := range entries {
				cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%*d", width, i)), entry)
			}
			return nil
		}))
	},
}

func init() {
	playlistCmd.AddCommand(playlistGetCmd)
	playlistGetCmd.Flags().BoolP("resolve", "r", false, "Print the URI handed to the pipeline instead of the raw line")
	playlistGetCmd.SetOut(os.Stdout)
}

var playlistGetCmd = &cobra.Command{
	Use:   "get [playlist] [index]",
	Short: "Print the entry at a zero based index",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			handleErr(fmt.Errorf("invalid index %q", args[1]))
		}

		list, err := playlist.Open(args[0])
		handleErr(err)

		handleErr(withPlaylist(list.Path(), func(r io.Reader) error {
			line, err := playlist.Lookup(r, index)
			if errors.Is(err, playlist.ErrNotFound) {
				return fmt.Errorf("entry #%d: %w", index, err)
			}
			if err != nil {
				return err
			}

			if lo.Must(cmd.Flags().GetBool("resolve")) {
				if line, err = playlist.Resolve(line, list.Dir()); err != nil {
					return err
				}
			}

			cmd.Println(line)
			return nil
		}))
	},
}

func init() {
	playlistCmd.AddCommand(playlistFindCmd)
	playlistFindCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	playlistFindCmd.Flags().IntP("limit", "n", 10, "Maximum number of matches")
	playlistFindCmd.SetOut(os.Stdout)
}

var playlistFindCmd = &cobra.Command{
	Use:   "find [playlist] [query]",
	Short: "Fuzzy search the entries by title",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withPlaylist(args[0], func(r io.Reader) error {
			matches, err := playlist.Find(r, args[1])
			if err != nil {
				return err
			}

			if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			if lo.Must(cmd.Flags().GetBool("json")) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(matches)
			}

			if len(matches) == 0 {
				return fmt.Errorf("no entry matches %q", args[1])
			}

			for _, m := range matches {
				cmd.Printf(
					"%s %s %s\n",
					style.Fg(color.Yellow)(strconv.Itoa(m.Index)),
					style.Fg(color.Purple)(playlist.Title(m.Locator)),
					style.Faint(m.Locator),
				)
			}
			return nil
		}))
	},
}

func init() {
	playlistCmd.AddCommand(playlistCountCmd)
	playlistCountCmd.SetOut(os.Stdout)
}

var playlistCountCmd = &cobra.Command{
	Use:   "count [playlist]",
	Short: "Print the number of entries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withPlaylist(args[0], func(r io.Reader) error {
			n, err := playlist.Count(r)
			if err != nil {
				return err
			}

			cmd.Println(n)
			return nil
		}))
	},
}

func init() {
	playlistCmd.AddCommand(playlistSchemaCmd)
	playlistSchemaCmd.SetOut(os.Stdout)
}

var playlistSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output of ls and find",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&[]playlist.Match{})
		data, err := json.MarshalIndent(schema, "", "  ")
		handleErr(err)

		cmd.Println(string(data))
		_, _ = fmt.Fprintf(os.Stderr, "%s schema of %s\n", icon.Get(icon.Success), style.Fg(color.Purple)("[]playlist.Match"))
	},
}
