//go:build windows
// +build windows

package pkg

import (
	"context"
	"errors"
	"net"
	"time"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SSHPort           = ":2222"
)

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("server: ssh hosting is unsupported on windows")

type Session struct {
	ID      string
	User    string
	Nick    string
	Started time.Time
}

type Server struct {
	Binary string
}

func NewServer(addr, binary, hostKey string, idle time.Duration) (*Server, error) {
	return nil, ErrUnsupported
}

func (s *Server) Sessions() []Session {
	return nil
}

func (s *Server) ListenAndServe() error {
	return ErrUnsupported
}

func (s *Server) Serve(l net.Listener) error {
	return ErrUnsupported
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Close() error {
	return nil
}
