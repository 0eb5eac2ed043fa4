package favorites

import (
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/store"
)

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

func TestToggleAddsAndRemoves(t *testing.T) {
	tr := Open(testStore(t))

	if err := tr.Toggle("1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !tr.Contains("1") {
		t.Error("expected 1 to be favorited")
	}

	if err := tr.Toggle("1"); err != nil {
		t.Fatalf("toggle again: %v", err)
	}
	if tr.Contains("1") {
		t.Error("expected 1 to be removed")
	}
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	tr := Open(testStore(t))

	for _, id := range []string{"1", "3"} {
		if err := tr.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	before := tr.IDs()

	if err := tr.Toggle("2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := tr.Toggle("2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if !reflect.DeepEqual(tr.IDs(), before) {
		t.Errorf("set changed: %v vs %v", tr.IDs(), before)
	}
}

func TestTogglePersists(t *testing.T) {
	s := testStore(t)
	tr := Open(s)

	if err := tr.Toggle("2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	tr2 := Open(s)
	if !tr2.Contains("2") {
		t.Error("favorite should survive reload")
	}
}

func TestListKeepsCatalogOrder(t *testing.T) {
	tr := Open(testStore(t))

	// Toggle in reverse order; listing must follow catalog order.
	for _, id := range []string{"3", "1"} {
		if err := tr.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	props := []catalog.Property{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	got := tr.List(props)

	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestCorruptSlotStartsEmpty(t *testing.T) {
	s := testStore(t)
	if err := s.Save(store.SlotFavorites, []byte("not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	tr := Open(s)
	if len(tr.IDs()) != 0 {
		t.Errorf("expected empty set, got %v", tr.IDs())
	}
}

func TestToggleConcurrent(t *testing.T) {
	tr := Open(testStore(t))

	// Paired toggles from many goroutines must leave the set empty and
	// must not corrupt it.
	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2; j++ {
				if err := tr.Toggle("1"); err != nil {
					t.Errorf("toggle: %v", err)
				}
				tr.Contains("1")
			}
		}()
	}
	wg.Wait()

	if ids := tr.IDs(); len(ids) != 0 {
		t.Errorf("expected empty set after paired toggles, got %v", ids)
	}
}
