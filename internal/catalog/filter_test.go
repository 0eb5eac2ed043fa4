package catalog

import "testing"

func fptr(f float64) *float64 { return &f }

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	c := Open(testStore(t))

	got := c.Filter(Criteria{Type: TypeAll})
	if len(got) != 3 {
		t.Errorf("got %d listings, want 3", len(got))
	}
}

func TestFilterText(t *testing.T) {
	c := Open(testStore(t))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"title substring, case-insensitive", "hill station", []string{"1"}},
		{"location substring", "aberdeen", []string{"2"}},
		{"shared location term", "Freetown", []string{"1", "2", "3"}},
		{"no match", "bo city", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(Criteria{Text: tt.text, Type: TypeAll})
			assertIDs(t, got, tt.want)
		})
	}
}

func TestFilterType(t *testing.T) {
	c := Open(testStore(t))

	sale := c.Filter(Criteria{Type: "Sale"})
	assertIDs(t, sale, []string{"1", "3"})

	rent := c.Filter(Criteria{Type: "Rent"})
	assertIDs(t, rent, []string{"2"})
}

func TestFilterPriceRangeIgnoresCurrency(t *testing.T) {
	c := Open(testStore(t))

	// Seeds: 350000 USD/Sale, 2500 USD/Rent, 150000 SLE/Sale. The bounds
	// compare raw numbers, so the SLE listing is excluded here on its
	// numeric price alone.
	got := c.Filter(Criteria{Type: "Sale", MinPrice: fptr(200000), MaxPrice: fptr(400000)})
	assertIDs(t, got, []string{"1"})
}

func TestFilterBedsAndBaths(t *testing.T) {
	c := Open(testStore(t))

	got := c.Filter(Criteria{Type: TypeAll, MinBeds: 4})
	assertIDs(t, got, []string{"1", "3"})

	got = c.Filter(Criteria{Type: TypeAll, MinBeds: 4, MinBaths: 4})
	assertIDs(t, got, []string{"1"})
}

func TestFilterClausesCommute(t *testing.T) {
	c := Open(testStore(t))

	typeFirst := filterSlice(filterSlice(c.Properties(), Criteria{Type: "Sale"}), Criteria{Type: TypeAll, MinPrice: fptr(100000)})
	priceFirst := filterSlice(filterSlice(c.Properties(), Criteria{Type: TypeAll, MinPrice: fptr(100000)}), Criteria{Type: "Sale"})

	if len(typeFirst) != len(priceFirst) {
		t.Fatalf("order changed result size: %d vs %d", len(typeFirst), len(priceFirst))
	}
	for i := range typeFirst {
		if typeFirst[i].ID != priceFirst[i].ID {
			t.Errorf("position %d: %s vs %s", i, typeFirst[i].ID, priceFirst[i].ID)
		}
	}
}

// filterSlice applies criteria to a plain slice, preserving order.
func filterSlice(props []Property, cr Criteria) []Property {
	var out []Property
	for _, p := range props {
		if cr.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func assertIDs(t *testing.T, got []Property, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d listings, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}
