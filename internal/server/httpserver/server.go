package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// Options holds tunables for New.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New creates a new HTTP server.
func New(addr string, handler http.Handler, opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: opts.ReadTimeout,
			WriteTimeout:      opts.WriteTimeout,
		},
		handler: handler,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe starts the HTTP server. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	return ignoreClosed(s.httpServer.ListenAndServe())
}

// ListenAndServeTLS starts the HTTPS server. It returns nil after Shutdown.
func (s *Server) ListenAndServeTLS(certFile, keyFile string) error {
	return ignoreClosed(s.httpServer.ListenAndServeTLS(certFile, keyFile))
}

// Serve accepts connections on ln. It returns nil after Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return ignoreClosed(s.httpServer.Serve(ln))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
