package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/calabashre/calabash/internal/store"
)

// DefaultAgency is used when registration leaves the agency blank.
const DefaultAgency = "Calabash Real Estate Company"

// Service manages registered agents and the current device session. Safe
// for concurrent use; the API server calls it from request goroutines.
type Service struct {
	store    *store.Store
	authCode string

	mu      sync.RWMutex
	session *Agent
}

// NewService creates the auth service with the configured authorization
// code and restores any persisted session.
func NewService(s *store.Store, authCode string) *Service {
	svc := &Service{store: s, authCode: authCode}
	svc.session = loadSession(s)
	return svc
}

// loadSession restores the session agent from its slot. A missing or
// unreadable slot means no session.
func loadSession(s *store.Store) *Agent {
	blob, ok, err := s.Load(store.SlotSession)
	if err != nil {
		slog.Warn("loading session slot", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var a Agent
	if err := json.Unmarshal(blob, &a); err != nil {
		slog.Warn("session slot is unreadable, starting signed out", "error", err)
		return nil
	}
	return &a
}

// Register creates a new agent. It fails with ErrInvalidAuthorizationCode
// when the supplied code does not match the configured secret, and with
// ErrEmailAlreadyRegistered on a case-insensitive email collision. On
// success the new agent becomes the session agent.
func (s *Service) Register(name, email, agency, password, authCode string) (Agent, error) {
	if authCode != s.authCode {
		return Agent{}, ErrInvalidAuthorizationCode
	}

	// Serializes the duplicate-email check against concurrent registrations.
	s.mu.Lock()
	defer s.mu.Unlock()

	agents, err := s.registeredAgents()
	if err != nil {
		return Agent{}, err
	}

	email = strings.TrimSpace(email)
	for _, a := range agents {
		if strings.EqualFold(a.Email, email) {
			return Agent{}, ErrEmailAlreadyRegistered
		}
	}

	if agency = strings.TrimSpace(agency); agency == "" {
		agency = DefaultAgency
	}

	rec := storedAgent{
		Agent: Agent{
			ID:         "agent-" + uuid.NewString(),
			Name:       strings.TrimSpace(name),
			Email:      email,
			Agency:     agency,
			Authorized: true,
		},
		Password: password,
	}

	agents = append(agents, rec)
	if err := s.saveAgents(agents); err != nil {
		return Agent{}, err
	}

	if err := s.establishSession(rec.Agent); err != nil {
		return Agent{}, err
	}
	return rec.Agent, nil
}

// Login matches email (case-insensitive) and password (exact) against the
// registered agents and establishes the session on success.
func (s *Service) Login(email, password string) (Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agents, err := s.registeredAgents()
	if err != nil {
		return Agent{}, err
	}

	for _, a := range agents {
		if strings.EqualFold(a.Email, strings.TrimSpace(email)) && a.Password == password {
			if err := s.establishSession(a.Agent); err != nil {
				return Agent{}, err
			}
			return a.Agent, nil
		}
	}

	return Agent{}, ErrInvalidCredentials
}

// Logout clears the session agent from memory and from the store.
func (s *Service) Logout() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Delete(store.SlotSession); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Session returns the current session agent, if any.
func (s *Service) Session() (Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return Agent{}, false
	}
	return *s.session, true
}

// establishSession records the agent as the device session and persists it
// so a later start restores it. Only the credential-free agent is written.
// Callers hold s.mu.
func (s *Service) establishSession(a Agent) error {
	blob, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.store.Save(store.SlotSession, blob); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.session = &a
	return nil
}

// registeredAgents loads the full agent record set. A missing or
// unreadable slot is an empty set.
func (s *Service) registeredAgents() ([]storedAgent, error) {
	blob, ok, err := s.store.Load(store.SlotAgents)
	if err != nil {
		return nil, fmt.Errorf("loading registered agents: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var agents []storedAgent
	if err := json.Unmarshal(blob, &agents); err != nil {
		slog.Warn("registered agents slot is unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return agents, nil
}

// saveAgents writes the full agent record set back to its slot.
func (s *Service) saveAgents(agents []storedAgent) error {
	blob, err := json.Marshal(agents)
	if err != nil {
		return fmt.Errorf("encoding registered agents: %w", err)
	}
	if err := s.store.Save(store.SlotAgents, blob); err != nil {
		return fmt.Errorf("persisting registered agents: %w", err)
	}
	return nil
}
