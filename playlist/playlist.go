package playlist

import (
	"fmt"
	"path/filepath"

	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/util"
)

// Playlist walks a playlist file with a Cursor, keeping the current line in an Entry.
// The file is reopened for every selection, so edits made while playing are picked up.
type Playlist struct {
	path   string
	cursor Cursor
	entry  *Entry
	loop   bool
}

// Open prepares a playlist for navigation. It fails only when path is not a readable regular file.
func Open(path string) (*Playlist, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve playlist path: %w", err)
	}

	info, err := filesystem.API().Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("open playlist: %s is a directory", abs)
	}

	return &Playlist{
		path:  abs,
		entry: NewEntry(),
	}, nil
}

// SetLoop makes Next wrap around to the first entry after the last one.
func (p *Playlist) SetLoop(loop bool) {
	p.loop = loop
}

// Path is the absolute path of the playlist file.
func (p *Playlist) Path() string {
	return p.path
}

// Dir is the directory relative locators are resolved against.
func (p *Playlist) Dir() string {
	return filepath.Dir(p.path)
}

// Index is the cursor position.
func (p *Playlist) Index() int {
	return p.cursor.Index()
}

// Entry exposes the selection buffer.
func (p *Playlist) Entry() *Entry {
	return p.entry
}

// Current selects the entry under the cursor.
func (p *Playlist) Current() (string, bool) {
	if !p.selectAt(p.cursor.Index()) {
		return "", false
	}
	return p.entry.String(), true
}

// Next advances the cursor. When nothing follows, the cursor is restored
// (or wrapped to the first entry when looping) so the caller can keep playing what it has.
func (p *Playlist) Next() (string, bool) {
	from := p.cursor.Index()
	if p.selectAt(p.cursor.Next()) {
		return p.entry.String(), true
	}

	if p.loop && p.selectAt(p.cursor.Set(0)) {
		return p.entry.String(), true
	}

	p.cursor.Set(from)
	return "", false
}

// Prev moves the cursor back, stopping at the first entry.
func (p *Playlist) Prev() (string, bool) {
	if !p.selectAt(p.cursor.Prev()) {
		return "", false
	}
	return p.entry.String(), true
}

// Seek moves the cursor to i and selects it; on failure the cursor is restored.
func (p *Playlist) Seek(i int) (string, bool) {
	from := p.cursor.Index()
	if p.selectAt(p.cursor.Set(i)) {
		return p.entry.String(), true
	}

	p.cursor.Set(from)
	return "", false
}

// Peek returns the entry that Next would select, without moving the cursor or touching the buffer.
func (p *Playlist) Peek() (string, bool) {
	if s, ok := p.lookup(p.cursor.Index() + 1); ok {
		return s, true
	}

	if p.loop {
		return p.lookup(0)
	}

	return "", false
}

// Entries reads every line of the playlist.
func (p *Playlist) Entries() ([]string, error) {
	f, err := filesystem.API().Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer util.Ignore(f.Close)

	return Entries(f)
}

func (p *Playlist) selectAt(i int) bool {
	f, err := filesystem.API().Open(p.path)
	if err != nil {
		log.Warnf("open playlist %s: %v", p.path, err)
		return false
	}
	defer util.Ignore(f.Close)

	ok := Select(f, i, p.entry)
	log.WithField("playlist", p.path).WithField("index", i).Debug("select: ", ok)
	return ok
}

func (p *Playlist) lookup(i int) (string, bool) {
	f, err := filesystem.API().Open(p.path)
	if err != nil {
		log.Warnf("open playlist %s: %v", p.path, err)
		return "", false
	}
	defer util.Ignore(f.Close)

	s, err := Lookup(f, i)
	return s, err == nil
}
