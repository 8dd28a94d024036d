package interfaces

import (
	"net/http"
)

// Server interface defines the methods for a server implementation.
type Server interface {
	AddRoute(pattern string, handler func(w http.ResponseWriter, r *http.Request)) error
	Use(middleware func(http.Handler) http.Handler)
	ListenAndServe() error
}
