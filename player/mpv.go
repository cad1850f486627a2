package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/tinyplay/tinyplay/log"
	"github.com/tinyplay/tinyplay/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	closeTimeout      = 3 * time.Second
)

// Options configure the pipeline process.
type Options struct {
	// Binary is the mpv-compatible executable.
	Binary string

	// Volume is the initial volume, 0-100.
	Volume int

	// AboutToFinish is the remaining time in seconds at which MessageAboutToFinish is posted.
	AboutToFinish float64

	// ExtraArgs are appended to the command line.
	ExtraArgs []string
}

// MPV implements Player on top of mpv's JSON IPC.
type MPV struct {
	options    Options
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	bus        *Bus
	listener   *EventListener
	mu         sync.Mutex // serializes IPC requests
	startMu    sync.Mutex
}

// NewMPV creates a player; the process is spawned by the first Play.
func NewMPV(options Options) *MPV {
	if options.Binary == "" {
		options.Binary = "mpv"
	}

	return &MPV{
		options: options,
		exited:  make(chan struct{}),
		bus:     NewBus(options.AboutToFinish),
	}
}

// args builds the command line: audio only, idle between tracks, controlled over socketPath.
func (m *MPV) args() []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--idle=yes",
		"--no-video",
		"--sub=no",
		"--gapless-audio=weak",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--volume=" + strconv.Itoa(m.options.Volume),
	}

	return append(args, m.options.ExtraArgs...)
}

// start spawns the pipeline and attaches the event listener, once.
func (m *MPV) start() error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.cmd != nil {
		select {
		case <-m.exited:
			return fmt.Errorf("pipeline has exited")
		default:
			return nil
		}
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", randomBytes))

	cmd := exec.Command(m.options.Binary, m.args()...)
	// detached so a terminal signal to us does not reach the pipeline first
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.options.Binary, err)
	}
	m.cmd = cmd

	go func() {
		_ = cmd.Wait()
		close(m.exited)
		m.bus.Close()
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing %s: socket never became ready", m.options.Binary)
			_ = killProcess(cmd)
		}
		return fmt.Errorf("pipeline socket not ready: %w", err)
	}

	m.listener = NewEventListener(m.socketPath, m.bus.Handle)
	if err := m.listener.Start(); err != nil {
		return err
	}

	log.Infof("%s started on socket %s", m.options.Binary, m.socketPath)
	return nil
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("%s exited before socket was ready", m.options.Binary)
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Play loads uri in place of the current track.
func (m *MPV) Play(uri string) error {
	if err := m.start(); err != nil {
		return err
	}

	// drop a track queued by Append, it belongs to the old position
	if _, err := m.sendCommand("playlist-clear"); err != nil {
		return err
	}

	log.Infof("loading %s", uri)
	if _, err := m.sendCommand("loadfile", uri, "replace"); err != nil {
		return err
	}

	// a paused pipeline stays paused across loadfile
	return m.set("pause", false)
}

// Append queues uri after the current track.
func (m *MPV) Append(uri string) error {
	if err := m.start(); err != nil {
		return err
	}

	log.Infof("queueing %s", uri)
	_, err := m.sendCommand("loadfile", uri, "append")
	return err
}

func (m *MPV) TogglePause() error {
	_, err := m.sendCommand("cycle", "pause")
	return err
}

func (m *MPV) ToggleMute() error {
	_, err := m.sendCommand("cycle", "mute")
	return err
}

func (m *MPV) Position() (float64, error) {
	return m.getFloat("time-pos")
}

func (m *MPV) Duration() (float64, error) {
	return m.getFloat("duration")
}

// Bus delivers pipeline notifications.
func (m *MPV) Bus() <-chan Message {
	return m.bus.C()
}

// Close asks the pipeline to quit, kills it after closeTimeout and removes the socket.
func (m *MPV) Close() error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.cmd == nil {
		m.bus.Close()
		return nil
	}

	if m.listener != nil {
		m.listener.Stop()
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(closeTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) set(property string, value any) error {
	_, err := m.sendCommand("set_property", property, value)
	return err
}

func (m *MPV) getFloat(name string) (float64, error) {
	data, err := m.sendCommand("get_property", name)
	if err != nil {
		return 0, err
	}

	v, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}
	return v, nil
}
