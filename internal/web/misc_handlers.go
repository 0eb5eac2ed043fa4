package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/calabashre/calabash/internal/blog"
	"github.com/calabashre/calabash/internal/describe"
)

// handleFavorites returns the favorited listings in catalog order.
func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, s.toDTOs(s.favorites.List(s.catalog.Properties())), http.StatusOK)
}

// handleFavoriteToggle routes POST /api/favorites/{id}/toggle.
func (s *Server) handleFavoriteToggle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/favorites/")
	id := strings.TrimSuffix(path, "/toggle")
	if id == "" || id == path {
		apiError(w, "invalid favorites path", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := s.catalog.Get(id); !ok {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	if err := s.favorites.Toggle(id); err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]bool{"favorite": s.favorites.Contains(id)}, http.StatusOK)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, blog.All(), http.StatusOK)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/blog/")
	post, ok := blog.Get(id)
	if !ok {
		apiError(w, "post not found", http.StatusNotFound)
		return
	}
	apiJSON(w, post, http.StatusOK)
}

type describeRequest struct {
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Beds     int      `json:"beds"`
	Baths    int      `json:"baths"`
	Location string   `json:"location"`
	Features []string `json:"features"`
}

// handleDescribe generates a listing description with the AI collaborator.
func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.describer == nil {
		apiError(w, "description service not configured", http.StatusServiceUnavailable)
		return
	}

	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Location == "" {
		apiError(w, "title and location are required", http.StatusBadRequest)
		return
	}

	text := s.describer.Describe(r.Context(), describe.Details{
		Title:    req.Title,
		Price:    req.Price,
		Beds:     req.Beds,
		Baths:    req.Baths,
		Location: req.Location,
		Features: req.Features,
	})
	apiJSON(w, map[string]string{"description": text}, http.StatusOK)
}
