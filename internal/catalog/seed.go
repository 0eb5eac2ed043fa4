package catalog

import "time"

// SystemAgentID owns the seed listings.
const SystemAgentID = "system"

// seedProperties returns the built-in listings shown before any agent has
// published. CreatedAt is stamped at call time so fresh installs sort
// sensibly.
func seedProperties() []Property {
	now := time.Now().UTC()
	return []Property{
		{
			ID:          "1",
			Title:       "Modern Hill Station Villa",
			Description: "A luxurious 5-bedroom villa located in the serene Hill Station area of Freetown. Offers breathtaking views of the city and the Atlantic coastline, featuring high ceilings and modern Sierra Leonean architecture.",
			Price:       350000,
			Currency:    CurrencyUSD,
			Type:        TypeSale,
			Beds:        5,
			Baths:       4,
			Sqft:        4500,
			Location:    "Hill Station, Freetown",
			Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1600607687940-47a04b629733?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=1200&q=80",
			},
			AgentID:   SystemAgentID,
			CreatedAt: now,
			Features:  []string{"Ocean View", "Backup Generator", "24/7 Security", "Swimming Pool", "Large Veranda"},
		},
		{
			ID:          "2",
			Title:       "Aberdeen Beachfront Apartment",
			Description: "Stunning 3-bedroom apartment right on the Aberdeen strip. Perfect for expatriates or professionals looking for proximity to the beach and Freetown's best restaurants.",
			Price:       2500,
			Currency:    CurrencyUSD,
			Type:        TypeRent,
			Beds:        3,
			Baths:       2,
			Sqft:        1800,
			Location:    "Aberdeen, Freetown",
			Image:       "https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?auto=format&fit=crop&w=1200&q=80",
			},
			AgentID:   SystemAgentID,
			CreatedAt: now,
			Features:  []string{"Beachfront Access", "Underground Parking", "Air Conditioning", "Modern Kitchen", "Elevator"},
		},
		{
			ID:          "3",
			Title:       "Spacious Family Home in Lumley",
			Description: "A beautiful and secure family home in the heart of Lumley. Features a large compound, backup generator room, and modern interior finishings suitable for large families.",
			Price:       150000,
			Currency:    CurrencySLE,
			Type:        TypeSale,
			Beds:        4,
			Baths:       3,
			Sqft:        3200,
			Location:    "Lumley, Freetown",
			Image:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1576941089067-2de3c901e126?auto=format&fit=crop&w=1200&q=80",
			},
			AgentID:   SystemAgentID,
			CreatedAt: now,
			Features:  []string{"Gated Compound", "Borehole Water", "Staff Quarters", "Solar Inverter Ready", "Fruit Trees"},
		},
	}
}
