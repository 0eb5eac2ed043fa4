package web

import (
	"fmt"
	"strings"

	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/currency"
	"github.com/calabashre/calabash/internal/listing"
)

// propertyDTO is a listing plus display prices and the favorite flag.
type propertyDTO struct {
	catalog.Property
	PriceDisplay   string `json:"priceDisplay"`
	PriceConverted string `json:"priceConverted"`
	Favorite       bool   `json:"favorite"`
}

func (s *Server) toDTO(p catalog.Property) propertyDTO {
	other, otherCur := currency.Counterpart(p.Price, p.Currency)
	return propertyDTO{
		Property:       p,
		PriceDisplay:   currency.Format(p.Price, p.Currency),
		PriceConverted: currency.Format(other, otherCur),
		Favorite:       s.favorites.Contains(p.ID),
	}
}

func (s *Server) toDTOs(props []catalog.Property) []propertyDTO {
	out := make([]propertyDTO, 0, len(props))
	for _, p := range props {
		out = append(out, s.toDTO(p))
	}
	return out
}

// draftRequest is the JSON body for create and update.
type draftRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Type        string  `json:"type"`
	Beds        int     `json:"beds"`
	Baths       int     `json:"baths"`
	Sqft        float64 `json:"sqft"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Features    string  `json:"features"` // comma separated
}

// toDraft validates the request and converts it to a listing draft.
func (r draftRequest) toDraft() (listing.Draft, error) {
	if strings.TrimSpace(r.Title) == "" {
		return listing.Draft{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return listing.Draft{}, fmt.Errorf("location is required")
	}
	if r.Price < 0 {
		return listing.Draft{}, fmt.Errorf("price must not be negative")
	}
	if r.Beds < 0 || r.Baths < 0 || r.Sqft < 0 {
		return listing.Draft{}, fmt.Errorf("beds, baths and sqft must not be negative")
	}
	if r.Currency == "" {
		r.Currency = string(catalog.CurrencyUSD)
	}
	if !catalog.ValidCurrency(r.Currency) {
		return listing.Draft{}, fmt.Errorf("unknown currency: %s", r.Currency)
	}
	if r.Type == "" {
		r.Type = string(catalog.TypeSale)
	}
	if !catalog.ValidListingType(r.Type) {
		return listing.Draft{}, fmt.Errorf("unknown listing type: %s", r.Type)
	}

	return listing.Draft{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Currency:    catalog.Currency(r.Currency),
		Type:        catalog.ListingType(r.Type),
		Beds:        r.Beds,
		Baths:       r.Baths,
		Sqft:        r.Sqft,
		Location:    r.Location,
		Image:       r.Image,
		Features:    r.Features,
	}, nil
}
