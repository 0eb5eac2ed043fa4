package catalog

import "strings"

// TypeAll matches every listing type in a filter.
const TypeAll = "All"

// Criteria selects listings. All clauses are conjunctive. Price bounds
// apply only when set and compare against the stored numeric price
// regardless of its currency tag.
type Criteria struct {
	Text     string   // empty, or case-insensitive substring of title/location
	Type     string   // TypeAll, "Sale" or "Rent"
	MinPrice *float64 // nil = unset
	MaxPrice *float64 // nil = unset
	MinBeds  int
	MinBaths int
}

// Filter returns the listings matching the criteria, in catalog order.
func (c *Catalog) Filter(cr Criteria) []Property {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Property
	for _, p := range c.props {
		if cr.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (cr Criteria) matches(p Property) bool {
	if cr.Text != "" {
		text := strings.ToLower(cr.Text)
		if !strings.Contains(strings.ToLower(p.Title), text) &&
			!strings.Contains(strings.ToLower(p.Location), text) {
			return false
		}
	}
	if cr.Type != "" && cr.Type != TypeAll && ListingType(cr.Type) != p.Type {
		return false
	}
	if cr.MinPrice != nil && p.Price < *cr.MinPrice {
		return false
	}
	if cr.MaxPrice != nil && p.Price > *cr.MaxPrice {
		return false
	}
	if p.Beds < cr.MinBeds {
		return false
	}
	if p.Baths < cr.MinBaths {
		return false
	}
	return true
}
