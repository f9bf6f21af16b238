package push

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// DefaultAddr is the default listen address of the push server
const DefaultAddr = "127.0.0.1:5849"

const readHeaderTimeout = 5 * time.Second

// Server serves the push endpoint
type Server struct {
	addr     string
	srv      *http.Server
	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a push server delivering events to sink. An empty addr
// uses DefaultAddr.
func NewServer(addr string, sink Sink) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	mux := http.NewServeMux()
	mux.HandleFunc(PathDownloadEvent, NewProgressHandler(sink))

	return &Server{
		addr: addr,
		srv: &http.Server{
			Handler:           WithCORS(mux),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Start binds the listen address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	log.Printf("Push server listening on %s", ln.Addr())
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Push server error: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// URL returns the full push URL the backend should post to
func (s *Server) URL() string {
	return "http://" + s.Addr() + PathDownloadEvent
}

// Shutdown stops accepting pushes and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
