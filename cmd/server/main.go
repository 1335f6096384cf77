// landscape-server serves interactive landscapes over SSH. Build:
//
//	go build -o landscape-server ./cmd/server
//
// Usage:
//
//	./landscape-server [--port 2222] [--key server_host_key]
//
// Every connection gets its own freshly seeded scene:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	mrand "math/rand"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	internalssh "landscape/internal/ssh"
	"landscape/internal/signature"
	"landscape/internal/view"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("landscape SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation. tcell reads the
// process environment, so concurrent connections must take turns there.
var termMu sync.Mutex

// allowedTerms lists the TERM values passed through to terminfo lookup.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// handleSession runs one viewer for the lifetime of one SSH connection.
func handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A PTY is required. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}
	// The client controls TERM; only pass through values terminfo knows.
	if !allowedTerms[term] {
		term = "xterm-256color"
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := mrand.Intn(signature.MaxSeed + 1)
	cfg, err := signature.FromRuntimeArgs(signature.Overrides{Seed: &seed})
	if err != nil {
		fmt.Fprintf(s, "Scene setup failed: %v\n", err)
		return
	}

	viewer, err := view.NewViewer(screen, cfg)
	if err != nil {
		fmt.Fprintf(s, "Scene setup failed: %v\n", err)
		return
	}
	log.Printf("session %s viewing %s", s.RemoteAddr(), cfg.Encode())
	viewer.Run()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "landscape server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
