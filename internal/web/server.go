// Package web provides the JSON API server over the marketplace services.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/calabashre/calabash/internal/auth"
	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/describe"
	"github.com/calabashre/calabash/internal/favorites"
	"github.com/calabashre/calabash/internal/listing"
	"github.com/calabashre/calabash/internal/logging"
)

// Server is the marketplace API server.
type Server struct {
	auth      *auth.Service
	catalog   *catalog.Catalog
	favorites *favorites.Tracker
	listings  *listing.Manager
	describer *describe.Generator // nil when no API key is configured

	mux     *http.ServeMux
	handler http.Handler
}

// NewServer wires the API routes over the given services. describer may be
// nil; the describe endpoint then reports the service as unavailable.
func NewServer(a *auth.Service, c *catalog.Catalog, f *favorites.Tracker, m *listing.Manager, g *describe.Generator) *Server {
	s := &Server{
		auth:      a,
		catalog:   c,
		favorites: f,
		listings:  m,
		describer: g,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/properties", s.handleProperties)
	s.mux.HandleFunc("/api/properties/", s.handlePropertyByID)
	s.mux.HandleFunc("/api/favorites", s.handleFavorites)
	s.mux.HandleFunc("/api/favorites/", s.handleFavoriteToggle)
	s.mux.HandleFunc("/api/auth/register", s.handleRegister)
	s.mux.HandleFunc("/api/auth/login", s.handleLogin)
	s.mux.HandleFunc("/api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("/api/auth/session", s.handleSession)
	s.mux.HandleFunc("/api/blog", s.handleBlog)
	s.mux.HandleFunc("/api/blog/", s.handleBlogPost)
	s.mux.HandleFunc("/api/describe", s.handleDescribe)

	s.handler = logging.RequestLogger(s.mux)
	return s
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the API server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting calabash API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}
