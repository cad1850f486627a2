package history

import (
	"fmt"
	"time"
)

// Record is the last position reached in a playlist.
type Record struct {
	Playlist  string    `json:"playlist"`
	Index     int       `json:"index"`
	Locator   string    `json:"locator"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Record) String() string {
	return fmt.Sprintf("%s : #%d %s", r.Playlist, r.Index, r.Locator)
}
