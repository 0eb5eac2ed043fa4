// Package auth provides agent registration, login and the device session.
//
// Registration is gated by a shared authorization code standing in for an
// invitation system. Credentials are stored in the clear; this is a demo
// constraint, not a production design.
package auth

// Agent is a registered listing agent. The credential never appears here:
// it lives only in the stored record.
type Agent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Agency     string `json:"agency"`
	Authorized bool   `json:"authorized"`
}

// storedAgent is the registered_agents record: the public agent plus the
// login credential. It is never returned from Register or Login and never
// written to the session slot.
type storedAgent struct {
	Agent
	Password string `json:"password"`
}
