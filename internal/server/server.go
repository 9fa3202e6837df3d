// Package server exposes an engine over HTTP: POST /summarize and GET /health.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/medsum/medsum/internal/engine"
	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

// DefaultMaxBodyBytes limits a /summarize request body.
const DefaultMaxBodyBytes int64 = 1 << 20

const shutdownTimeout = 10 * time.Second

// Backend is what the server needs from the summarization engine.
type Backend interface {
	Summarize(ctx context.Context, text string) (string, error)
	Info() engine.Info
}

// Options configures a Server.
type Options struct {
	Addr         string
	MaxBodyBytes int64
}

// Server is the summarization HTTP service.
type Server struct {
	backend Backend
	opts    Options
	log     *slog.Logger
	handler http.Handler
}

// New builds a server around backend.
func New(backend Backend, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		backend: backend,
		opts:    opts,
		log:     logger.WithComponent("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withRequestID(s.withLogging(withCORS(mux)))
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on opts.Addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.E(errors.Op("server.ListenAndServe"), errors.KindNetwork, "listen on "+s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled. Requests already running when
// ctx ends are allowed to finish within shutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	baseCtx := context.WithoutCancel(ctx)
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.E(errors.Op("server.Serve"), errors.KindNetwork, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.E(errors.Op("server.Serve"), errors.KindNetwork, "shutdown", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
