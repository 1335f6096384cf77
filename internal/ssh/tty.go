// Package ssh adapts a gliderlabs SSH session into a tcell Tty so a
// landscape viewer can run over the wire exactly as it does locally.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty backed by one SSH session. Each connected
// client gets its own SessionTty → tcell.Screen → viewer chain.
type SessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
}

// NewSessionTty wraps a session as a tcell Tty. pty carries the initial
// window size; winCh delivers resize events for the session's lifetime.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read pulls keyboard input from the session's stdin.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered frames to the session's stdout.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH channel, which also unblocks a viewer waiting in
// PollEvent.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the SSH channel is already open when the Tty is built.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the server handler goroutine owns the channel lifecycle.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered on our side.
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers tcell's resize callback and starts a goroutine that
// follows the window-change channel until the session ends. Every resize
// triggers a full re-render, so the scene always fills the client terminal.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
