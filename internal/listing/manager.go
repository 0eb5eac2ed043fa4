// Package listing implements agent-scoped create/update/archive of
// marketplace listings.
package listing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calabashre/calabash/internal/auth"
	"github.com/calabashre/calabash/internal/catalog"
)

var (
	// ErrNotFound means the listing id is not in the working set.
	ErrNotFound = errors.New("listing not found")
	// ErrNotAuthorized means the acting agent does not own the listing.
	// An agent may mutate only listings they created.
	ErrNotAuthorized = errors.New("listing belongs to another agent")
)

// Draft carries the editable fields of a listing. Features is the raw
// comma-separated form input.
type Draft struct {
	Title       string
	Description string
	Price       float64
	Currency    catalog.Currency
	Type        catalog.ListingType
	Beds        int
	Baths       int
	Sqft        float64
	Location    string
	Image       string
	Features    string
}

// Manager performs listing mutations on behalf of the session agent.
type Manager struct {
	catalog *catalog.Catalog

	now func() time.Time
}

// NewManager creates a listing manager over the catalog.
func NewManager(c *catalog.Catalog) *Manager {
	return &Manager{catalog: c, now: time.Now}
}

// Create publishes a new listing owned by the agent. The id is freshly
// generated, CreatedAt is stamped now, and a blank cover image defaults to
// a placeholder derived from the title.
func (m *Manager) Create(agent auth.Agent, d Draft) (catalog.Property, error) {
	p := catalog.Property{
		ID:        uuid.NewString(),
		AgentID:   agent.ID,
		CreatedAt: m.now().UTC(),
	}
	applyDraft(&p, d)

	if err := m.catalog.Insert(p); err != nil {
		return catalog.Property{}, fmt.Errorf("publishing listing: %w", err)
	}
	return p, nil
}

// Update replaces the editable fields of the agent's own listing. ID and
// CreatedAt are preserved from the existing record.
func (m *Manager) Update(agent auth.Agent, id string, d Draft) (catalog.Property, error) {
	existing, ok := m.catalog.Get(id)
	if !ok {
		return catalog.Property{}, ErrNotFound
	}
	if existing.AgentID != agent.ID {
		return catalog.Property{}, ErrNotAuthorized
	}

	p := catalog.Property{
		ID:        existing.ID,
		AgentID:   existing.AgentID,
		CreatedAt: existing.CreatedAt,
	}
	applyDraft(&p, d)

	if err := m.catalog.Replace(p); err != nil {
		return catalog.Property{}, fmt.Errorf("updating listing: %w", err)
	}
	return p, nil
}

// Archive removes the agent's own listing from the working set. This is a
// hard delete, not a soft-delete flag.
func (m *Manager) Archive(agent auth.Agent, id string) error {
	existing, ok := m.catalog.Get(id)
	if !ok {
		return ErrNotFound
	}
	if existing.AgentID != agent.ID {
		return ErrNotAuthorized
	}

	if err := m.catalog.Remove(id); err != nil {
		return fmt.Errorf("archiving listing: %w", err)
	}
	return nil
}

// OwnedBy returns the listings created by the given agent, in catalog order.
func (m *Manager) OwnedBy(agentID string) []catalog.Property {
	var out []catalog.Property
	for _, p := range m.catalog.Properties() {
		if p.AgentID == agentID {
			out = append(out, p)
		}
	}
	return out
}

// applyDraft copies the editable fields onto p, filling defaults.
func applyDraft(p *catalog.Property, d Draft) {
	p.Title = strings.TrimSpace(d.Title)
	p.Description = d.Description
	p.Price = d.Price
	p.Currency = d.Currency
	p.Type = d.Type
	p.Beds = d.Beds
	p.Baths = d.Baths
	p.Sqft = d.Sqft
	p.Location = strings.TrimSpace(d.Location)
	p.Image = d.Image
	if p.Image == "" {
		p.Image = placeholderImage(p.Title)
	}
	p.Features = SplitFeatures(d.Features)
}

// placeholderImage derives a deterministic cover image from the title.
func placeholderImage(title string) string {
	return "https://picsum.photos/seed/" + url.PathEscape(title) + "/800/600"
}

// SplitFeatures turns comma-separated feature input into a trimmed list,
// discarding empty entries. Duplicates are kept as entered.
func SplitFeatures(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
