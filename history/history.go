// Package history persists the last played entry of every playlist so playback can resume.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/where"
)

// cacher is keyed by the absolute playlist path.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved record.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save remembers that index of playlist was reached with locator.
func Save(playlist string, index int, locator string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[playlist] = &Record{
		Playlist:  playlist,
		Index:     index,
		Locator:   locator,
		UpdatedAt: time.Now(),
	}

	return cacher.Set(saved)
}

// Last returns the record of playlist, if any.
func Last(playlist string) mo.Option[Record] {
	saved, err := Get()
	if err != nil {
		return mo.None[Record]()
	}

	record, ok := saved[playlist]
	if !ok || record == nil {
		return mo.None[Record]()
	}

	return mo.Some(*record)
}

// Latest returns the most recently updated record across all playlists.
func Latest() mo.Option[Record] {
	saved, err := Get()
	if err != nil || len(saved) == 0 {
		return mo.None[Record]()
	}

	latest := lo.MaxBy(lo.Values(saved), func(a, b *Record) bool {
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	return mo.Some(*latest)
}

// Remove forgets playlist.
func Remove(playlist string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, playlist)
	return cacher.Set(saved)
}

// Clear forgets every playlist.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
