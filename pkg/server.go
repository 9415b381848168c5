//go:build !windows
// +build !windows

package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sort"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SSHPort           = ":2222"
)

// Session is a player connected over SSH.
type Session struct {
	ID      string
	User    string
	Nick    string
	Started time.Time
}

// Server hosts the client binary over SSH. Every session gets its own
// client process attached to a pseudo-terminal, so every player runs an
// independent game.
type Server struct {
	*ssh.Server

	Binary string

	sessions map[string]*Session

	*sync.Mutex
}

// NewServer creates a server listening on addr that runs binary for every
// session. When hostKey is empty a key is generated on startup.
func NewServer(addr, binary, hostKey string, idle time.Duration) (*Server, error) {
	if binary == "" {
		return nil, errors.New("server: client binary must be specified")
	}
	if _, err := os.Stat(binary); err != nil {
		return nil, fmt.Errorf("server: client binary: %w", err)
	}

	s := &Server{
		Binary:   binary,
		sessions: make(map[string]*Session),
		Mutex:    new(sync.Mutex),
	}

	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: idle,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if hostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return nil, fmt.Errorf("server: host key: %w", err)
		}
	}

	return s, nil
}

// Sessions lists the connected players, oldest first.
func (s *Server) Sessions() []Session {
	s.Lock()
	defer s.Unlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, *sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Started.Before(sessions[j].Started)
	})

	return sessions
}

func (s *Server) addSession(user string) *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		User:    user,
		Nick:    Nickname(user),
		Started: time.Now(),
	}

	s.Lock()
	s.sessions[sess.ID] = sess
	s.Unlock()

	return sess
}

func (s *Server) removeSession(id string) {
	s.Lock()
	delete(s.sessions, id)
	s.Unlock()
}

func (s *Server) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	sess := s.addSession(sshSession.User())
	defer s.removeSession(sess.ID)

	log.Printf("Session %s: %s connected from %s as %s", sess.ID, sess.User, sshSession.RemoteAddr(), sess.Nick)

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, "-nick", sess.Nick, "-log", os.DevNull)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		log.Printf("Session %s: failed to start client: %s", sess.ID, err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))

		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	log.Printf("Session %s: %s disconnected after %s", sess.ID, sess.Nick, time.Since(sess.Started).Round(time.Second))
}
