package player

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tinyplay/tinyplay/log"
)

// MessageType classifies bus messages.
type MessageType int

const (
	// MessageStarted is posted when a track has been opened.
	MessageStarted MessageType = iota + 1
	// MessageEOS is posted when a track played to its end.
	MessageEOS
	// MessageError is posted when a track could not be played.
	MessageError
	// MessageAboutToFinish is posted once per track shortly before its end.
	MessageAboutToFinish
	// MessageStateChanged is posted when playback is paused or resumed.
	MessageStateChanged
	// MessageMute is posted when the mute switch flips.
	MessageMute
)

func (t MessageType) String() string {
	switch t {
	case MessageStarted:
		return "started"
	case MessageEOS:
		return "eos"
	case MessageError:
		return "error"
	case MessageAboutToFinish:
		return "about-to-finish"
	case MessageStateChanged:
		return "state-changed"
	case MessageMute:
		return "mute"
	default:
		return "unknown"
	}
}

// Message is a pipeline notification.
type Message struct {
	Type MessageType

	// Err is set for MessageError.
	Err error

	// Paused is set for MessageStateChanged.
	Paused bool

	// Muted is set for MessageMute.
	Muted bool
}

// ErrPlayback is wrapped by every MessageError error.
var ErrPlayback = errors.New("playback failed")

const busCapacity = 32

// Bus translates raw pipeline events into Messages.
type Bus struct {
	ch        chan Message
	threshold float64

	mu     sync.Mutex
	armed  bool
	closed bool
}

// NewBus creates a bus posting MessageAboutToFinish when fewer than threshold seconds remain.
// A non-positive threshold disables the notification.
func NewBus(threshold float64) *Bus {
	return &Bus{
		ch:        make(chan Message, busCapacity),
		threshold: threshold,
	}
}

// C returns the receive side of the bus.
func (b *Bus) C() <-chan Message {
	return b.ch
}

// Handle consumes one raw event. It matches the EventCallback signature.
func (b *Bus) Handle(name string, data any) {
	switch name {
	case "file-loaded":
		b.mu.Lock()
		b.armed = true
		b.mu.Unlock()
		b.post(Message{Type: MessageStarted})
	case "time-remaining":
		remaining, ok := data.(float64)
		if !ok || b.threshold <= 0 || remaining > b.threshold {
			return
		}

		b.mu.Lock()
		fire := b.armed
		b.armed = false
		b.mu.Unlock()

		if fire {
			b.post(Message{Type: MessageAboutToFinish})
		}
	case "pause":
		if paused, ok := data.(bool); ok {
			b.post(Message{Type: MessageStateChanged, Paused: paused})
		}
	case "mute":
		if muted, ok := data.(bool); ok {
			b.post(Message{Type: MessageMute, Muted: muted})
		}
	case "end-file":
		event, _ := data.(map[string]any)
		reason, _ := event["reason"].(string)

		switch reason {
		case "eof":
			b.post(Message{Type: MessageEOS})
		case "error":
			cause, _ := event["file_error"].(string)
			if cause == "" {
				cause = "unknown error"
			}
			b.post(Message{Type: MessageError, Err: fmt.Errorf("%w: %s", ErrPlayback, cause)})
		default:
			// stop, quit and redirect come from our own commands
			log.Debugf("end-file: %s", reason)
		}
	}
}

func (b *Bus) post(m Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	select {
	case b.ch <- m:
	default:
		log.Warnf("bus full, dropping %s message", m.Type)
	}
}

// Close closes the receive side. Later events are dropped.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}
