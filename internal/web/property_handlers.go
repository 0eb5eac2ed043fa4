package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/listing"
)

// handleProperties routes /api/properties: list (with filters) or publish.
func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.apiListProperties(w, r)
	case http.MethodPost:
		s.apiCreateProperty(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePropertyByID routes /api/properties/{id}: show, update or archive.
func (s *Server) handlePropertyByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/properties/")
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.apiGetProperty(w, id)
	case http.MethodPut:
		s.apiUpdateProperty(w, r, id)
	case http.MethodDelete:
		s.apiArchiveProperty(w, id)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListProperties returns listings matching the filter query parameters.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	cr, err := criteriaFromQuery(r)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	props := s.catalog.Filter(cr)
	apiJSON(w, s.toDTOs(props), http.StatusOK)
}

func (s *Server) apiGetProperty(w http.ResponseWriter, id string) {
	p, ok := s.catalog.Get(id)
	if !ok {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	apiJSON(w, s.toDTO(p), http.StatusOK)
}

func (s *Server) apiCreateProperty(w http.ResponseWriter, r *http.Request) {
	agent, ok := s.auth.Session()
	if !ok {
		apiError(w, "login required", http.StatusUnauthorized)
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.listings.Create(agent, draft)
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, s.toDTO(p), http.StatusCreated)
}

func (s *Server) apiUpdateProperty(w http.ResponseWriter, r *http.Request, id string) {
	agent, ok := s.auth.Session()
	if !ok {
		apiError(w, "login required", http.StatusUnauthorized)
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.listings.Update(agent, id, draft)
	if err != nil {
		s.writeListingError(w, err)
		return
	}
	apiJSON(w, s.toDTO(p), http.StatusOK)
}

func (s *Server) apiArchiveProperty(w http.ResponseWriter, id string) {
	agent, ok := s.auth.Session()
	if !ok {
		apiError(w, "login required", http.StatusUnauthorized)
		return
	}

	if err := s.listings.Archive(agent, id); err != nil {
		s.writeListingError(w, err)
		return
	}
	apiJSON(w, map[string]string{"status": "archived"}, http.StatusOK)
}

func (s *Server) writeListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		apiError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, listing.ErrNotAuthorized):
		apiError(w, err.Error(), http.StatusForbidden)
	default:
		apiError(w, err.Error(), http.StatusInternalServerError)
	}
}

// criteriaFromQuery parses the filter query parameters.
func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()
	cr := catalog.Criteria{
		Text: q.Get("q"),
		Type: q.Get("type"),
	}
	if cr.Type == "" {
		cr.Type = catalog.TypeAll
	}
	if cr.Type != catalog.TypeAll && !catalog.ValidListingType(cr.Type) {
		return catalog.Criteria{}, errors.New("unknown listing type: " + cr.Type)
	}

	var err error
	if cr.MinPrice, err = parsePriceParam(q.Get("min_price")); err != nil {
		return catalog.Criteria{}, err
	}
	if cr.MaxPrice, err = parsePriceParam(q.Get("max_price")); err != nil {
		return catalog.Criteria{}, err
	}
	if cr.MinBeds, err = parseIntParam(q.Get("min_beds")); err != nil {
		return catalog.Criteria{}, err
	}
	if cr.MinBaths, err = parseIntParam(q.Get("min_baths")); err != nil {
		return catalog.Criteria{}, err
	}
	return cr, nil
}

func parsePriceParam(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New("invalid price: " + v)
	}
	return &f, nil
}

func parseIntParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid number: " + v)
	}
	return n, nil
}
