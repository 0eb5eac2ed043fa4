// Package favorites tracks the property ids marked by this device.
//
// The set is scoped to the local store, independent of any agent identity.
package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/store"
)

// Tracker is the favorites set, persisted whole after every toggle. Safe
// for concurrent use; the API server toggles from request goroutines.
type Tracker struct {
	store *store.Store

	mu  sync.RWMutex
	ids []string
}

// Open loads the favorites set. A missing or unreadable slot is empty.
func Open(s *store.Store) *Tracker {
	t := &Tracker{store: s}

	blob, ok, err := s.Load(store.SlotFavorites)
	if err != nil {
		slog.Warn("loading favorites slot", "error", err)
		return t
	}
	if !ok {
		return t
	}

	if err := json.Unmarshal(blob, &t.ids); err != nil {
		slog.Warn("favorites slot is unreadable, starting empty", "error", err)
		t.ids = nil
	}
	return t
}

// Toggle flips membership for the given property id and persists the set.
// Toggling twice restores the original set.
func (t *Tracker) Toggle(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.indexOf(id); i != -1 {
		t.ids = append(t.ids[:i], t.ids[i+1:]...)
	} else {
		t.ids = append(t.ids, id)
	}
	return t.persist()
}

// Contains reports whether the id is favorited.
func (t *Tracker) Contains(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.indexOf(id) != -1
}

// IDs returns a copy of the favorited ids in toggle order.
func (t *Tracker) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// List returns the favorited subset of props, in catalog order.
func (t *Tracker) List(props []catalog.Property) []catalog.Property {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []catalog.Property
	for _, p := range props {
		if t.indexOf(p.ID) != -1 {
			out = append(out, p)
		}
	}
	return out
}

// persist writes the set back to its slot. Callers hold t.mu.
func (t *Tracker) persist() error {
	blob, err := json.Marshal(t.ids)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := t.store.Save(store.SlotFavorites, blob); err != nil {
		return fmt.Errorf("persisting favorites: %w", err)
	}
	return nil
}

// indexOf scans the set. Callers hold t.mu.
func (t *Tracker) indexOf(id string) int {
	for i, v := range t.ids {
		if v == id {
			return i
		}
	}
	return -1
}
