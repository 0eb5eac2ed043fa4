// Package catalog holds the property working set: seed listings overlaid
// with persisted additions, plus the filter engine.
package catalog

import "time"

// Currency tags a listing price.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencySLE Currency = "SLE"
)

// ValidCurrency returns true if c is a known currency tag.
func ValidCurrency(c string) bool {
	switch Currency(c) {
	case CurrencyUSD, CurrencySLE:
		return true
	}
	return false
}

// ListingType is the transaction type of a listing.
type ListingType string

const (
	TypeSale ListingType = "Sale"
	TypeRent ListingType = "Rent"
)

// ValidListingType returns true if t is a known listing type.
func ValidListingType(t string) bool {
	switch ListingType(t) {
	case TypeSale, TypeRent:
		return true
	}
	return false
}

// Property represents a marketplace listing.
//
// ID is unique within the working set; ID and CreatedAt never change after
// creation. Features is ordered and may contain duplicates.
type Property struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Currency    Currency    `json:"currency"`
	Type        ListingType `json:"type"`
	Beds        int         `json:"beds"`
	Baths       int         `json:"baths"`
	Sqft        float64     `json:"sqft"`
	Location    string      `json:"location"`
	Image       string      `json:"image"`
	Images      []string    `json:"images,omitempty"`
	AgentID     string      `json:"agentId"`
	CreatedAt   time.Time   `json:"createdAt"`
	Features    []string    `json:"features"`
}
