package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avator7/todoapi/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

type Server struct {
	Port        string
	Host        string
	server      *http.Server
	mux         *http.ServeMux
	middlewares []func(http.Handler) http.Handler
	Logger      interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
func NewServer(host, port string, logger interfaces.Logger) *Server {
	mux := http.NewServeMux()
	server := &http.Server{
		Addr:         host + ":" + port,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: server,
		mux:    mux,
		Logger: logger,
	}
}

// AddRoute adds a new route to the server. The pattern may carry a method
// prefix ("GET /todos/{id}") per net/http ServeMux matching rules.
func (s *Server) AddRoute(pattern string, handler func(w http.ResponseWriter, r *http.Request)) error {
	s.mux.HandleFunc(pattern, handler)
	s.Logger.Info("Route added", "route", pattern)
	return nil
}

// Use appends a middleware wrapping the whole mux. Middlewares run in the
// order they were added.
func (s *Server) Use(middleware func(http.Handler) http.Handler) {
	s.middlewares = append(s.middlewares, middleware)
}

// Handler returns the mux wrapped in the registered middlewares.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	return handler
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
func (s *Server) ListenAndServe() error {
	s.server.Handler = s.Handler()
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
