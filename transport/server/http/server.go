package http

import (
	"context"
	"net/http"
)

// Server represents an HTTP server with a handler and address
type Server struct {
	server  http.Server
	handler http.Handler
	addr    string
}

// Start listens on the configured address; it blocks until the server stops
func (s *Server) Start() error {
	s.server.Addr = s.addr
	s.server.Handler = s.handler
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// NewServer creates a server
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
	}
}
