package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/calabashre/calabash/internal/store"
)

// Catalog is the in-memory working set of listings, loaded from the
// properties slot and overlaid on the seed data. Safe for concurrent use;
// the API server mutates it from request goroutines.
type Catalog struct {
	store *store.Store

	mu    sync.RWMutex
	props []Property
}

// Open loads the working set from the store. A missing or unreadable slot
// falls back to the seed listings alone.
func Open(s *store.Store) *Catalog {
	c := &Catalog{store: s}
	c.props = loadMerged(s)
	return c
}

// loadMerged merges the persisted listings with the seeds: the persisted
// list is authoritative and keeps its order; each seed whose id is not
// already present is appended. A seed removed from the persisted set stays
// removed only once the set has been persisted.
func loadMerged(s *store.Store) []Property {
	seeds := seedProperties()

	blob, ok, err := s.Load(store.SlotProperties)
	if err != nil {
		slog.Warn("loading properties slot", "error", err)
		return seeds
	}
	if !ok {
		return seeds
	}

	var saved []Property
	if err := json.Unmarshal(blob, &saved); err != nil {
		slog.Warn("properties slot is unreadable, using seed data", "error", err)
		return seeds
	}

	merged := saved
	for _, seed := range seeds {
		if indexOf(merged, seed.ID) == -1 {
			merged = append(merged, seed)
		}
	}
	return merged
}

// Properties returns a copy of the working set in catalog order.
func (c *Catalog) Properties() []Property {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Property, len(c.props))
	copy(out, c.props)
	return out
}

// Get returns the listing with the given id.
func (c *Catalog) Get(id string) (Property, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := indexOf(c.props, id)
	if i == -1 {
		return Property{}, false
	}
	return c.props[i], true
}

// Insert prepends a new listing and persists the full set.
func (c *Catalog) Insert(p Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if indexOf(c.props, p.ID) != -1 {
		return fmt.Errorf("property %s already exists", p.ID)
	}
	c.props = append([]Property{p}, c.props...)
	return c.persist()
}

// Replace swaps the listing with the same id in place and persists.
func (c *Catalog) Replace(p Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.props, p.ID)
	if i == -1 {
		return fmt.Errorf("property %s not found", p.ID)
	}
	c.props[i] = p
	return c.persist()
}

// Remove deletes the listing from the working set and persists.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.props, id)
	if i == -1 {
		return fmt.Errorf("property %s not found", id)
	}
	c.props = append(c.props[:i], c.props[i+1:]...)
	return c.persist()
}

// persist writes the entire working set back to the properties slot.
// Callers hold c.mu.
func (c *Catalog) persist() error {
	blob, err := json.Marshal(c.props)
	if err != nil {
		return fmt.Errorf("encoding properties: %w", err)
	}
	if err := c.store.Save(store.SlotProperties, blob); err != nil {
		return fmt.Errorf("persisting properties: %w", err)
	}
	return nil
}

func indexOf(props []Property, id string) int {
	for i, p := range props {
		if p.ID == id {
			return i
		}
	}
	return -1
}
