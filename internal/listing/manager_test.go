package listing

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/calabashre/calabash/internal/auth"
	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/store"
)

var (
	agentA = auth.Agent{ID: "agent-a", Name: "Abu Bakarr"}
	agentB = auth.Agent{ID: "agent-b", Name: "Mariama"}
)

func testManager(t *testing.T) (*Manager, *catalog.Catalog) {
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
	c := catalog.Open(s)
	return NewManager(c), c
}

func villaDraft() Draft {
	return Draft{
		Title:    "Test Villa",
		Price:    100000,
		Currency: catalog.CurrencyUSD,
		Type:     catalog.TypeSale,
		Beds:     3,
		Baths:    2,
		Sqft:     2400,
		Location: "Goderich, Freetown",
		Features: "Sea View, Borehole Water",
	}
}

func TestCreate(t *testing.T) {
	m, c := testManager(t)
	before := len(c.Properties())

	stamp := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	p, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.ID == "" {
		t.Error("expected a generated id")
	}
	if p.AgentID != agentA.ID {
		t.Errorf("agentId = %q, want %q", p.AgentID, agentA.ID)
	}
	if !p.CreatedAt.Equal(stamp) {
		t.Errorf("createdAt = %v, want %v", p.CreatedAt, stamp)
	}

	props := c.Properties()
	if len(props) != before+1 {
		t.Errorf("catalog length = %d, want %d", len(props), before+1)
	}
	if props[0].ID != p.ID {
		t.Error("new listing should appear first")
	}
}

func TestCreateDefaultImage(t *testing.T) {
	m, _ := testManager(t)

	p, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := "https://picsum.photos/seed/Test%20Villa/800/600"
	if p.Image != want {
		t.Errorf("image = %q, want %q", p.Image, want)
	}

	d := villaDraft()
	d.Image = "https://example.com/cover.jpg"
	p2, err := m.Create(agentA, d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p2.Image != d.Image {
		t.Errorf("image = %q, want supplied cover", p2.Image)
	}
}

func TestCreateSplitsFeatures(t *testing.T) {
	m, _ := testManager(t)

	d := villaDraft()
	d.Features = " Ocean View , , Backup Generator,Ocean View ,"
	p, err := m.Create(agentA, d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := []string{"Ocean View", "Backup Generator", "Ocean View"}
	if !reflect.DeepEqual(p.Features, want) {
		t.Errorf("features = %v, want %v", p.Features, want)
	}
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	m, _ := testManager(t)

	created, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d := villaDraft()
	d.Title = "Renovated Villa"
	d.Price = 120000
	updated, err := m.Update(agentA, created.ID, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed: %s -> %s", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.Title != "Renovated Villa" || updated.Price != 120000 {
		t.Errorf("fields not replaced: %+v", updated)
	}
}

func TestUpdateNotFound(t *testing.T) {
	m, _ := testManager(t)

	_, err := m.Update(agentA, "ghost", villaDraft())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateOtherAgentsListing(t *testing.T) {
	m, _ := testManager(t)

	created, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = m.Update(agentB, created.ID, villaDraft())
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestArchive(t *testing.T) {
	m, c := testManager(t)

	created, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := m.Archive(agentA, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, ok := c.Get(created.ID); ok {
		t.Error("archived listing should be removed from the working set")
	}
}

func TestArchiveOtherAgentsListing(t *testing.T) {
	m, c := testManager(t)

	created, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := m.Archive(agentB, created.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
	if _, ok := c.Get(created.ID); !ok {
		t.Error("listing should still exist")
	}
}

func TestArchiveNotFound(t *testing.T) {
	m, _ := testManager(t)

	if err := m.Archive(agentA, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOwnedBy(t *testing.T) {
	m, _ := testManager(t)

	first, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(agentB, villaDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := m.Create(agentA, villaDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mine := m.OwnedBy(agentA.ID)
	if len(mine) != 2 {
		t.Fatalf("got %d listings, want 2", len(mine))
	}
	// Catalog order: most recently created first.
	if mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Errorf("unexpected order: %s, %s", mine[0].ID, mine[1].ID)
	}
}

func TestSplitFeaturesEmptyInput(t *testing.T) {
	if got := SplitFeatures(""); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := SplitFeatures(" , ,"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
