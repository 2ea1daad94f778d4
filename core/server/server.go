package server

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// Server wraps http.Server with graceful shutdown and configuration options.
// Safe for concurrent use.
type Server struct {
	mu                sync.RWMutex
	addr              string
	server            *http.Server
	listener          net.Listener
	logger            *slog.Logger
	shutdown          time.Duration
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	maxHeaderBytes    int
	tlsConfig         *tls.Config
	running           bool
}

// New creates a new Server with the given address and options.
// Defaults to 30-second graceful shutdown timeout and a no-op logger.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:              addr,
		logger:            slog.New(slog.DiscardHandler),
		shutdown:          DefaultShutdownTimeout,
		readTimeout:       DefaultReadTimeout,
		readHeaderTimeout: DefaultReadHeaderTimeout,
		writeTimeout:      DefaultWriteTimeout,
		idleTimeout:       DefaultIdleTimeout,
		maxHeaderBytes:    DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Addr returns the bound address once the server is listening, or the configured one.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Start listens on the configured address and serves until ctx is canceled or
// the listener fails. Returns ctx.Err() on cancellation; use Stop to drain.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, handler)
}

// Serve is Start with a caller-provided listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrServerAlreadyRunning
	}
	s.running = true
	s.listener = ln
	s.server = &http.Server{
		Handler:           handler,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readHeaderTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       s.idleTimeout,
		MaxHeaderBytes:    s.maxHeaderBytes,
		TLSConfig:         s.tlsConfig,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	srv := s.server
	hasTLS := s.tlsConfig != nil
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting server",
			logger.Component("server"), slog.String("addr", ln.Addr().String()), slog.Bool("tls", hasTLS))

		var err error
		if hasTLS {
			err = srv.ServeTLS(ln, "", "")
		} else {
			err = srv.Serve(ln)
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop gracefully shuts down the server using the configured timeout.
// Returns immediately if the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	s.logger.Info("shutting down server gracefully",
		logger.Component("server"), slog.Duration("timeout", s.shutdown))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false

	if err != nil {
		s.logger.Error("server shutdown error", logger.Component("server"), logger.Error(err))
		return err
	}

	s.logger.Info("server shutdown complete", logger.Component("server"))
	return nil
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// The returned function serves until ctx is canceled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		err := s.Start(ctx, handler)
		if ctx.Err() == nil {
			return err
		}
		if stopErr := s.Stop(); stopErr != nil {
			s.logger.Error("failed to stop server during context cancellation",
				logger.Component("server"), logger.Error(stopErr))
			return stopErr
		}
		return nil
	}
}
