// Package ipc streams classified stream elements to companion
// processes over a Unix domain socket, one JSON object per line.
//
// Grounded on the teacher's internal/ipc/ipc.go: a net.Listener on a
// Unix socket, JSON framing, TempSocketPath helper. Generalized from
// request/response to push-only broadcast, since there's nothing here
// for a subscriber to request — every connected client just wants
// every element_added notification as it happens.
package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

const clientSendTimeout = 2 * time.Second

// clientQueueDepth bounds how many pending events a slow subscriber can
// fall behind by before its oldest events start getting dropped.
const clientQueueDepth = 256

type wireElement struct {
	Kind        string   `json:"kind"`
	Text        string   `json:"text,omitempty"`
	RawText     string   `json:"raw_text,omitempty"`
	ControlKind string   `json:"control_kind,omitempty"`
	Parameters  []string `json:"parameters,omitempty"`
}

func toWire(el vtparse.StreamElement) wireElement {
	w := wireElement{Parameters: el.Parameters}
	switch el.Kind {
	case vtparse.ElementText:
		w.Kind = "text"
		w.Text = el.Text
	case vtparse.ElementControl:
		w.Kind = "control"
		w.RawText = el.RawText
		w.ControlKind = string(el.ControlKind)
	}
	return w
}

// Server broadcasts element_added notifications to every connected
// Unix-socket client.
type Server struct {
	listener net.Listener

	mu       sync.Mutex
	clients  map[net.Conn]chan []byte
	lastText []byte
}

// StartServer starts a Unix socket broadcaster at path.
func StartServer(path string) (*Server, error) {
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = listener.Close()
		return nil, err
	}
	s := &Server{listener: listener, clients: make(map[net.Conn]chan []byte)}
	go s.acceptLoop()
	return s, nil
}

// Broadcast encodes el and enqueues it for every connected client. A
// client whose queue is full has its oldest pending event dropped
// rather than blocking the parser.
func (s *Server) Broadcast(el vtparse.StreamElement) {
	line, err := json.Marshal(toWire(el))
	if err != nil {
		return
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if el.Kind == vtparse.ElementText {
		s.lastText = line
	}
	for _, ch := range s.clients {
		select {
		case ch <- line:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- line:
			default:
			}
		}
	}
}

// Close shuts down the listener and every client connection.
func (s *Server) Close() error {
	if s == nil || s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	s.mu.Lock()
	for conn, ch := range s.clients {
		close(ch)
		_ = conn.Close()
	}
	s.clients = nil
	s.mu.Unlock()
	return err
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		ch := make(chan []byte, clientQueueDepth)
		s.mu.Lock()
		if s.lastText != nil {
			ch <- s.lastText
		}
		s.clients[conn] = ch
		s.mu.Unlock()
		go s.serveClient(conn, ch)
	}
}

func (s *Server) serveClient(conn net.Conn, ch chan []byte) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		_ = conn.Close()
	}()
	for line := range ch {
		if err := conn.SetWriteDeadline(time.Now().Add(clientSendTimeout)); err != nil {
			return
		}
		if _, err := conn.Write(line); err != nil {
			return
		}
	}
}

// TempSocketPath creates a unique socket path under the OS temp dir.
func TempSocketPath() (string, error) {
	dir := os.TempDir()
	if len(dir) > 60 {
		dir = "/tmp"
	}
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("vtstream-%d-%d.sock", os.Getpid(), time.Now().UnixNano()+int64(i))
		path := filepath.Join(dir, name)
		if len(path) >= 100 {
			if dir != "/tmp" {
				dir = "/tmp"
				continue
			}
			return "", fmt.Errorf("socket path too long")
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
	}
	return "", errors.New("unable to allocate socket path")
}

// Element is a decoded notification received by a Subscribe client.
type Element struct {
	Kind        string
	Text        string
	RawText     string
	ControlKind string
	Parameters  []string
}

// Subscribe dials socketPath and invokes fn for every element_added
// notification until ctx is canceled or the connection closes.
func Subscribe(ctx context.Context, socketPath string, fn func(Element)) error {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		var w wireElement
		if err := json.Unmarshal(scanner.Bytes(), &w); err != nil {
			continue
		}
		fn(Element{
			Kind:        w.Kind,
			Text:        w.Text,
			RawText:     w.RawText,
			ControlKind: w.ControlKind,
			Parameters:  w.Parameters,
		})
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
