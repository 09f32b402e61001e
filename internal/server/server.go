// Package server exposes the guard daemon's control interface: a JSON-RPC
// 2.0 endpoint on a unix socket, used by `salahbar stop` and for status
// queries. One jrpc2 server is run per accepted connection.
package server

import (
	"context"
	"net"
	"os"
	"sync"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/pkg/logger"
)

// Controller is the guard surface the RPC methods drive.
type Controller interface {
	// Status reports the guard's current evaluation and debounce state.
	Status() common.GuardStatus

	// Stop asks the guard loop to shut down.
	Stop()
}

// Server accepts control connections on a unix socket.
type Server struct {
	log   logger.Logger
	guard Controller
	build common.VersionResult

	mu       sync.Mutex
	listener net.Listener
}

// New creates a control server for the given guard.
func New(log logger.Logger, guard Controller, build common.VersionResult) *Server {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Server{log: log, guard: guard, build: build}
}

// Start listens on socketPath and serves until ctx is cancelled. A stale
// socket from a previous run is removed first.
func (s *Server) Start(ctx context.Context, socketPath string) error {
	_ = os.Remove(socketPath)
	l, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}
	_ = os.Chmod(socketPath, 0600)

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.Shutdown(socketPath)
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.Error("accept failed: %v", err)
			continue
		}
		go s.serveConn(conn)
	}
}

// Shutdown closes the listener and removes the socket file.
func (s *Server) Shutdown(socketPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Error("listener close failed: %v", err)
		}
		s.listener = nil
	}
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		s.log.Error("socket cleanup failed: %v", err)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	srv := jrpc2.NewServer(s.methods(), nil)
	srv.Start(channel.Line(conn, conn))
	if err := srv.Wait(); err != nil {
		s.log.Warning("control connection ended: %v", err)
	}
}

func (s *Server) methods() handler.Map {
	return handler.Map{
		common.MethodGuardStatus: handler.New(s.guardStatus),
		common.MethodGuardStop:   handler.New(s.guardStop),
		common.MethodVersion:     handler.New(s.getVersion),
	}
}

func (s *Server) guardStatus(ctx context.Context) (common.GuardStatus, error) {
	return s.guard.Status(), nil
}

func (s *Server) guardStop(ctx context.Context) (common.EmptyResult, error) {
	s.log.Info("stop requested over control socket")
	s.guard.Stop()
	return common.EmptyResult{}, nil
}

func (s *Server) getVersion(ctx context.Context) (common.VersionResult, error) {
	return s.build, nil
}
