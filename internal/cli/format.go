package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/calabashre/calabash/internal/auth"
	"github.com/calabashre/calabash/internal/blog"
	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/currency"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertySummary prints full details for a single listing.
func printPropertySummary(p catalog.Property, favorite bool) {
	converted, convertedCur := currency.Counterpart(p.Price, p.Currency)

	fmt.Printf("Property %s\n", p.ID)
	fmt.Printf("  Title:     %s\n", p.Title)
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Price:     %s (%s)\n",
		currency.Format(p.Price, p.Currency), currency.Format(converted, convertedCur))
	fmt.Printf("  Type:      For %s\n", p.Type)
	fmt.Printf("  Beds:      %d\n", p.Beds)
	fmt.Printf("  Baths:     %d\n", p.Baths)
	if p.Sqft > 0 {
		fmt.Printf("  Sqft:      %g\n", p.Sqft)
	}
	fmt.Printf("  Agent:     %s\n", p.AgentID)
	if favorite {
		fmt.Printf("  Favorite:  ♥\n")
	}
	if len(p.Features) > 0 {
		fmt.Printf("  Features:  %s\n", strings.Join(p.Features, ", "))
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
}

// printPropertyTable prints listings as a formatted table.
func printPropertyTable(props []catalog.Property, isFavorite func(string) bool) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tPRICE\tTYPE\tBED\tBATH\tLOCATION\tFAV"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t-----\t----\t---\t----\t--------\t---"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		fav := ""
		if isFavorite != nil && isFavorite(p.ID) {
			fav = "♥"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			p.ID, truncate(p.Title, 32), currency.Format(p.Price, p.Currency),
			p.Type, p.Beds, p.Baths, truncate(p.Location, 28), fav); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printAgent prints agent details in text format.
func printAgent(a auth.Agent) {
	fmt.Printf("Agent %s\n", a.ID)
	fmt.Printf("  Name:    %s\n", a.Name)
	fmt.Printf("  Email:   %s\n", a.Email)
	fmt.Printf("  Agency:  %s\n", a.Agency)
}

// printBlogList prints blog post summaries.
func printBlogList(posts []blog.Post) {
	for _, p := range posts {
		fmt.Printf("[%s] %s (%s)\n  %s\n\n", p.ID, p.Title, p.Date, p.Excerpt)
	}
}

// printBlogPost prints a full blog post.
func printBlogPost(p blog.Post) {
	fmt.Printf("%s\n%s by %s\n\n%s\n", p.Title, p.Date, p.Author, p.Content)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
