// Package session ties a playlist to a playing pipeline and reacts to its notifications.
// A Session is owned by a single control loop and is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/tinyplay/tinyplay/history"
	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/player"
	"github.com/tinyplay/tinyplay/playlist"
)

// ErrFinished is returned when there is nothing left to play.
var ErrFinished = errors.New("nothing left to play")

// Options tune how a session moves through its playlist.
type Options struct {
	// SkipUnplayable moves on to the next entry when a line cannot be resolved.
	SkipUnplayable bool

	// SaveHistory persists the cursor after every track change.
	SaveHistory bool
}

// Session is the playback state of one run.
type Session struct {
	player   player.Player
	playlist *playlist.Playlist
	single   string
	options  Options

	// locator is the URI of the track that is playing
	locator string
	// queued is the URI appended to the pipeline ahead of the end of the current track
	queued string

	paused   bool
	muted    bool
	finished bool
}

// New creates a session walking list.
func New(p player.Player, list *playlist.Playlist, options Options) *Session {
	return &Session{
		player:   p,
		playlist: list,
		options:  options,
	}
}

// NewSingle creates a session that plays one locator.
func NewSingle(p player.Player, locator string, options Options) *Session {
	return &Session{
		player:  p,
		single:  locator,
		options: options,
	}
}

// Playlist returns the playlist, nil for single locator sessions.
func (s *Session) Playlist() *playlist.Playlist {
	return s.playlist
}

// Index is the cursor position, always 0 for single locator sessions.
func (s *Session) Index() int {
	if s.playlist == nil {
		return 0
	}
	return s.playlist.Index()
}

// Locator is the URI of the track that is playing.
func (s *Session) Locator() string {
	return s.locator
}

// Title is a short name of the track that is playing.
func (s *Session) Title() string {
	if s.locator == "" {
		return ""
	}
	return playlist.Title(s.locator)
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) Muted() bool {
	return s.muted
}

// Finished reports whether the end of the playlist was reached.
func (s *Session) Finished() bool {
	return s.finished
}

// Player exposes the pipeline for position queries.
func (s *Session) Player() player.Player {
	return s.player
}

// Start plays the entry under the cursor.
func (s *Session) Start() error {
	if s.playlist == nil {
		return s.play(s.single, false)
	}

	line, ok := s.playlist.Current()
	if !ok {
		return fmt.Errorf("entry #%d: %w", s.playlist.Index(), playlist.ErrNotFound)
	}

	return s.play(line, s.options.SkipUnplayable)
}

// Next skips to the following entry. When there is none the current track keeps playing
// and an error wrapping playlist.ErrNotFound is returned.
func (s *Session) Next() error {
	if s.playlist == nil {
		return playlist.ErrNotFound
	}

	line, ok := s.playlist.Next()
	if !ok {
		return fmt.Errorf("after #%d: %w", s.playlist.Index(), playlist.ErrNotFound)
	}

	return s.play(line, s.options.SkipUnplayable)
}

// Prev skips to the preceding entry. On the first entry it restarts it.
func (s *Session) Prev() error {
	if s.playlist == nil {
		return s.play(s.single, false)
	}

	line, ok := s.playlist.Prev()
	if !ok {
		return fmt.Errorf("before #%d: %w", s.playlist.Index(), playlist.ErrNotFound)
	}

	return s.play(line, false)
}

// TogglePause pauses or resumes playback.
func (s *Session) TogglePause() error {
	if err := s.player.TogglePause(); err != nil {
		return err
	}

	s.paused = !s.paused
	return nil
}

// ToggleMute mutes or unmutes the output.
func (s *Session) ToggleMute() error {
	if err := s.player.ToggleMute(); err != nil {
		return err
	}

	s.muted = !s.muted
	return nil
}

// Quit stops playback and shuts the pipeline down.
func (s *Session) Quit() error {
	s.save()
	return s.player.Close()
}

// Handle reacts to a pipeline notification. It returns ErrFinished once the last
// entry has played out.
func (s *Session) Handle(msg player.Message) error {
	switch msg.Type {
	case player.MessageStarted:
		log.WithField("locator", s.locator).Info("track started")
	case player.MessageAboutToFinish:
		return s.enqueue()
	case player.MessageEOS:
		return s.advance()
	case player.MessageError:
		log.WithField("locator", s.locator).Error(msg.Err)
		return s.advance()
	case player.MessageStateChanged:
		s.paused = msg.Paused
	case player.MessageMute:
		s.muted = msg.Muted
	}

	return nil
}

// enqueue hands the next entry to the pipeline ahead of time so the transition is gapless.
func (s *Session) enqueue() error {
	if s.playlist == nil || s.queued != "" {
		return nil
	}

	line, ok := s.playlist.Peek()
	if !ok {
		return nil
	}

	uri, err := s.resolve(line)
	if err != nil {
		// advance deals with it once the current track ends
		log.Warnf("not queueing %q: %v", line, err)
		return nil
	}

	if err := s.player.Append(uri); err != nil {
		return err
	}

	s.queued = uri
	return nil
}

// advance moves past the track that just ended.
func (s *Session) advance() error {
	if s.playlist == nil {
		s.finished = true
		return ErrFinished
	}

	if s.queued != "" {
		queued := s.queued
		s.queued = ""

		// the pipeline already moved on by itself
		if _, ok := s.playlist.Next(); ok {
			s.locator = queued
			s.save()
			return nil
		}
	}

	line, ok := s.playlist.Next()
	if !ok {
		s.finished = true
		return ErrFinished
	}

	err := s.play(line, s.options.SkipUnplayable)
	if errors.Is(err, playlist.ErrNotFound) {
		s.finished = true
		return ErrFinished
	}
	return err
}

// play resolves line and starts it. With skip set, unresolvable lines are passed over
// until a playable one is found or the playlist runs out.
func (s *Session) play(line string, skip bool) error {
	start := s.Index()

	for {
		uri, err := s.resolve(line)
		if err == nil {
			s.queued = ""
			if err := s.player.Play(uri); err != nil {
				return err
			}

			s.locator = uri
			s.paused = false
			s.save()
			return nil
		}

		if !skip || s.playlist == nil {
			return err
		}

		log.Warnf("skipping #%d: %v", s.playlist.Index(), err)

		next, ok := s.playlist.Next()
		if !ok || s.playlist.Index() == start {
			return fmt.Errorf("no playable entry: %w", playlist.ErrNotFound)
		}
		line = next
	}
}

func (s *Session) resolve(line string) (string, error) {
	if s.playlist != nil {
		return playlist.Resolve(line, s.playlist.Dir())
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return playlist.Resolve(line, wd)
}

func (s *Session) save() {
	if !s.options.SaveHistory || s.playlist == nil || s.locator == "" {
		return
	}

	if err := history.Save(s.playlist.Path(), s.playlist.Index(), s.locator); err != nil {
		log.Warn("saving history: ", err)
	}
}
