package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/tinyplay/tinyplay/history"
	"github.com/tinyplay/tinyplay/key"
	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/mini"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/playlist"
	"github.com/tinyplay/tinyplay/session"
	"github.com/tinyplay/tinyplay/tui"
)

type playOptions struct {
	Playlist string
	URI      string
	Index    int
	Continue bool
	Mini     bool
}

func (o playOptions) validate() error {
	if o.Index < 0 {
		return fmt.Errorf("invalid argument %d for \"-i, --index\" flag: must not be negative", o.Index)
	}
	return nil
}

// play builds a session from options and runs it in the chosen interface.
func play(options playOptions) error {
	if err := options.validate(); err != nil {
		return err
	}

	binary := viper.GetString(key.PlayerBinary)
	if _, err := player.LookPath(binary); err != nil {
		printMissingDependencyError(binary)
		return err
	}

	mpv := player.NewMPV(player.Options{
		Binary:        binary,
		Volume:        viper.GetInt(key.PlayerVolume),
		AboutToFinish: viper.GetFloat64(key.PlayerAboutToFinish),
		ExtraArgs:     viper.GetStringSlice(key.PlayerExtraArgs),
	})

	sessionOptions := session.Options{
		SkipUnplayable: viper.GetBool(key.PlaylistSkipUnplayable),
		SaveHistory:    viper.GetBool(key.HistorySave),
	}

	var s *session.Session
	if options.URI != "" {
		s = session.NewSingle(mpv, options.URI, sessionOptions)
	} else {
		list, err := openPlaylist(options)
		if err != nil {
			return err
		}
		s = session.New(mpv, list, sessionOptions)
	}

	log.WithField("mini", options.Mini).Info("starting session")

	if options.Mini {
		return mini.Run(s, &mini.Options{})
	}

	return tui.Run(s, &tui.Options{
		ShowProgress: viper.GetBool(key.TUIShowProgress),
		ShowHelp:     viper.GetBool(key.TUIShowHelp),
	})
}

// openPlaylist opens the playlist and places the cursor where playback should begin.
func openPlaylist(options playOptions) (*playlist.Playlist, error) {
	path := options.Playlist
	if path == "" {
		record, ok := history.Latest().Get()
		if !ok {
			return nil, errors.New("nothing to continue, no playlist was played yet")
		}
		path = record.Playlist
	}

	list, err := playlist.Open(path)
	if err != nil {
		return nil, err
	}
	list.SetLoop(viper.GetBool(key.PlaylistLoop))

	if options.Continue {
		// the playlist may have been shortened since, then start over
		if record, ok := history.Last(list.Path()).Get(); ok {
			if _, ok := list.Seek(record.Index); !ok {
				log.Warnf("saved entry #%d of %s is gone", record.Index, list.Path())
			}
		}
		return list, nil
	}

	if options.Index != 0 {
		if _, ok := list.Seek(options.Index); !ok {
			return nil, fmt.Errorf("entry #%d: %w", options.Index, playlist.ErrNotFound)
		}
	}

	return list, nil
}
