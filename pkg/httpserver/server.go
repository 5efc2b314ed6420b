package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
)

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	cfg *config

	mu    sync.Mutex
	srv   *http.Server
	ln    net.Listener
	ready chan struct{}
	once  sync.Once
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}
	return &Server{cfg: cfg, ready: make(chan struct{})}
}

// Run listens and serves handler until ctx is done or the server fails.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       s.cfg.readTimeout,
		ReadHeaderTimeout: s.cfg.readTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		IdleTimeout:       s.cfg.idleTimeout,
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	log := s.cfg.logger.With(logger.Component("httpserver"))
	log.InfoContext(ctx, "http server started", "addr", ln.Addr().String())
	close(s.ready)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownErr := s.Shutdown(context.WithoutCancel(ctx))
		<-errCh
		log.InfoContext(ctx, "http server stopped")
		return shutdownErr
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	}
}

// Ready is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or the configured one before Run.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.addr
}

// Shutdown stops the server gracefully. Repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
