package auth

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/calabashre/calabash/internal/store"
)

const testCode = "TEST-CODE-2024"

func testStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func testService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s := testStore(t)
	return NewService(s, testCode), s
}

func TestRegisterWrongCode(t *testing.T) {
	svc, s := testService(t)

	_, err := svc.Register("Abu Bakarr", "abu@calabash.sl", "", "secret", "WRONG")
	if !errors.Is(err, ErrInvalidAuthorizationCode) {
		t.Fatalf("err = %v, want ErrInvalidAuthorizationCode", err)
	}

	// No agent may be persisted on a failed gate.
	if _, ok, _ := s.Load(store.SlotAgents); ok {
		t.Error("registered agents slot should be untouched")
	}
	if _, ok := svc.Session(); ok {
		t.Error("no session should be established")
	}
}

func TestRegister(t *testing.T) {
	svc, _ := testService(t)

	agent, err := svc.Register("Abu Bakarr", "abu@calabash.sl", "Freetown Homes", "secret", testCode)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if agent.ID == "" {
		t.Error("expected a generated id")
	}
	if !agent.Authorized {
		t.Error("registered agents are authorized")
	}
	if agent.Agency != "Freetown Homes" {
		t.Errorf("agency = %q", agent.Agency)
	}

	sess, ok := svc.Session()
	if !ok || sess.ID != agent.ID {
		t.Error("registration should establish the session")
	}
}

func TestRegisterDefaultAgency(t *testing.T) {
	svc, _ := testService(t)

	agent, err := svc.Register("Abu Bakarr", "abu@calabash.sl", "  ", "secret", testCode)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if agent.Agency != DefaultAgency {
		t.Errorf("agency = %q, want default", agent.Agency)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := testService(t)

	if _, err := svc.Register("A", "Agent@Calabash.SL", "", "pw1", testCode); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register("B", "agent@calabash.sl", "", "pw2", testCode)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := testService(t)

	reg, err := svc.Register("A", "agent@calabash.sl", "", "pw", testCode)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	agent, err := svc.Login("AGENT@calabash.sl", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if agent.ID != reg.ID {
		t.Errorf("id = %s, want %s", agent.ID, reg.ID)
	}

	if _, ok := svc.Session(); !ok {
		t.Error("login should establish the session")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Login("nobody@calabash.sl", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, ok := svc.Session(); ok {
		t.Error("no session should be established")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testService(t)

	if _, err := svc.Register("A", "agent@calabash.sl", "", "pw", testCode); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.Login("agent@calabash.sl", "other"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	s := testStore(t)
	svc := NewService(s, testCode)

	agent, err := svc.Register("A", "agent@calabash.sl", "", "pw", testCode)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// A fresh service over the same store restores the session.
	svc2 := NewService(s, testCode)
	sess, ok := svc2.Session()
	if !ok {
		t.Fatal("expected restored session")
	}
	if sess.ID != agent.ID {
		t.Errorf("id = %s, want %s", sess.ID, agent.ID)
	}
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	s := testStore(t)
	svc := NewService(s, testCode)

	if _, err := svc.Register("A", "agent@calabash.sl", "", "pw", testCode); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, ok := svc.Session(); ok {
		t.Error("session should be cleared")
	}
	if _, ok := NewService(s, testCode).Session(); ok {
		t.Error("session slot should be removed")
	}
}

func TestSessionSlotNeverHoldsCredential(t *testing.T) {
	svc, s := testService(t)

	if _, err := svc.Register("A", "agent@calabash.sl", "", "supersecret", testCode); err != nil {
		t.Fatalf("register: %v", err)
	}

	blob, ok, err := s.Load(store.SlotSession)
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}
	if _, exists := raw["password"]; exists {
		t.Error("session slot must not contain the credential")
	}
}

func TestCorruptSessionSlotStartsSignedOut(t *testing.T) {
	s := testStore(t)
	if err := s.Save(store.SlotSession, []byte("{broken")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, ok := NewService(s, testCode).Session(); ok {
		t.Error("corrupt session slot should mean no session")
	}
}
