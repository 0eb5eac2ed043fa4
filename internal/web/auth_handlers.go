package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calabashre/calabash/internal/auth"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Agency   string `json:"agency"`
	Password string `json:"password"`
	AuthCode string `json:"authCode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		apiError(w, "name, email and password are required", http.StatusBadRequest)
		return
	}

	agent, err := s.auth.Register(req.Name, req.Email, req.Agency, req.Password, req.AuthCode)
	if err != nil {
		s.writeAuthError(w, err)
		return
	}
	apiJSON(w, agent, http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	agent, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		s.writeAuthError(w, err)
		return
	}
	apiJSON(w, agent, http.StatusOK)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.auth.Logout(); err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "signed out"}, http.StatusOK)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	agent, ok := s.auth.Session()
	if !ok {
		apiError(w, "not signed in", http.StatusUnauthorized)
		return
	}
	apiJSON(w, agent, http.StatusOK)
}

func (s *Server) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidAuthorizationCode),
		errors.Is(err, auth.ErrInvalidCredentials):
		apiError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, auth.ErrEmailAlreadyRegistered):
		apiError(w, err.Error(), http.StatusConflict)
	default:
		apiError(w, err.Error(), http.StatusInternalServerError)
	}
}
