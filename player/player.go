// Package player drives the external decoding pipeline that produces audio.
// The pipeline is an mpv process controlled over its JSON IPC socket with video disabled.
package player

import (
	"fmt"
	"os/exec"
)

// Player is the playback surface the session controls.
type Player interface {
	// Play replaces whatever is playing with uri, starting the pipeline if needed.
	Play(uri string) error

	// Append queues uri after the current track for a gapless transition.
	Append(uri string) error

	TogglePause() error
	ToggleMute() error

	// Position is the playback position of the current track in seconds.
	Position() (float64, error)

	// Duration is the length of the current track in seconds.
	Duration() (float64, error)

	// Close terminates the pipeline and releases its resources.
	Close() error

	// Bus delivers pipeline notifications. It is closed when the pipeline exits.
	Bus() <-chan Message
}

// LookPath verifies the pipeline executable is installed.
func LookPath(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("pipeline executable %q: %w", binary, err)
	}
	return path, nil
}
