package player

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fakeMPV is a minimal JSON IPC server speaking enough of mpv's protocol for tests.
type fakeMPV struct {
	dir  string
	path string
	ln   net.Listener

	mu       sync.Mutex
	props    map[string]any
	commands [][]any
	conns    []net.Conn
	noisy    bool
}

func newFakeMPV() (*fakeMPV, error) {
	// unix socket paths are length limited, so stay out of deep test directories
	dir, err := os.MkdirTemp("", "tp")
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "mpv.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	f := &fakeMPV{
		dir:   dir,
		path:  path,
		ln:    ln,
		props: map[string]any{"pause": false, "mute": false, "time-pos": 12.5, "duration": 180.0},
	}

	go f.accept()
	return f, nil
}

func (f *fakeMPV) accept() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}

		f.mu.Lock()
		f.conns = append(f.conns, conn)
		f.mu.Unlock()

		go f.serve(conn)
	}
}

func (f *fakeMPV) serve(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd ipcCommand
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			continue
		}

		f.mu.Lock()
		f.commands = append(f.commands, cmd.Command)
		reply := ipcResponse{RequestID: cmd.RequestID, Error: "success"}

		name, _ := cmd.Command[0].(string)
		switch name {
		case "get_property":
			prop, _ := cmd.Command[1].(string)
			if v, ok := f.props[prop]; ok {
				reply.Data = v
			} else {
				reply.Error = "property unavailable"
			}
		case "set_property":
			prop, _ := cmd.Command[1].(string)
			f.props[prop] = cmd.Command[2]
		case "cycle":
			prop, _ := cmd.Command[1].(string)
			v, _ := f.props[prop].(bool)
			f.props[prop] = !v
		case "bogus":
			reply.Error = "invalid parameter"
		}
		noisy := f.noisy
		f.mu.Unlock()

		if noisy {
			_, _ = conn.Write([]byte(`{"event":"idle"}` + "\n"))
		}

		data, _ := json.Marshal(reply)
		_, _ = conn.Write(append(data, '\n'))
	}
}

// broadcast sends an event line to every connected client.
func (f *fakeMPV) broadcast(event map[string]any) {
	data, _ := json.Marshal(event)

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, conn := range f.conns {
		_, _ = conn.Write(append(data, '\n'))
	}
}

// count returns how many commands named name were received.
func (f *fakeMPV) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int
	for _, c := range f.commands {
		if c[0] == name {
			n++
		}
	}
	return n
}

func (f *fakeMPV) prop(name string) any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.props[name]
}

func (f *fakeMPV) waitFor(name string, n int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.count(name) >= n {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func (f *fakeMPV) close() {
	_ = f.ln.Close()

	f.mu.Lock()
	for _, conn := range f.conns {
		_ = conn.Close()
	}
	f.mu.Unlock()

	_ = os.RemoveAll(f.dir)
}

// attached returns an MPV talking to the fake without spawning a process.
func (f *fakeMPV) attached() *MPV {
	m := NewMPV(Options{AboutToFinish: 2})
	m.socketPath = f.path
	return m
}
