// Package blog serves the static market-insight articles. Content is
// read-only reference material and never mutated.
package blog

// Post is a published blog article. Date is a display string, not parsed.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

var posts = []Post{
	{
		ID:       "blog-1",
		Title:    "Navigating Property Taxes in Sierra Leone",
		Excerpt:  "Understanding the legal framework of land ownership and tax obligations for residential and commercial properties in Freetown.",
		Content:  "Full content about Sierra Leone property taxes...",
		Author:   "Calabash Legal Team",
		Date:     "March 15, 2024",
		Image:    "https://images.unsplash.com/photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=800&q=80",
		Category: "Legal Advice",
	},
	{
		ID:       "blog-2",
		Title:    "Why Hill Station is Freetown's Top Investment Spot",
		Excerpt:  "Exploring the rapid development and appreciation of property values in the cool hills of Freetown.",
		Content:  "Full content about Hill Station investment...",
		Author:   "Market Analyst",
		Date:     "March 10, 2024",
		Image:    "https://images.unsplash.com/photo-1590247813693-5541d1c609fd?auto=format&fit=crop&w=800&q=80",
		Category: "Market Trends",
	},
	{
		ID:       "blog-3",
		Title:    "Top 5 Questions to Ask Before Buying Land",
		Excerpt:  "Crucial due diligence steps every Sierra Leonean property buyer should take to avoid land disputes.",
		Content:  "Full content about land buying questions...",
		Author:   "Calabash Advisory",
		Date:     "March 05, 2024",
		Image:    "https://images.unsplash.com/photo-1500382017468-9049fed747ef?auto=format&fit=crop&w=800&q=80",
		Category: "Buyer Guide",
	},
}

// All returns every post in publication order.
func All() []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}

// Get returns the post with the given id.
func Get(id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
