// Package describe generates listing descriptions with the Gemini API.
//
// The call is the application's only external collaborator: no retries, no
// timeout beyond the caller's context, and on any failure a fixed fallback
// string is returned instead of an error.
package describe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const (
	model = "gemini-3-flash-preview"

	// Fallback is returned whenever generation fails.
	Fallback = "Error generating description. Please write manually."
)

// Details are the structured property facts fed to the model.
type Details struct {
	Title    string
	Price    float64
	Beds     int
	Baths    int
	Location string
	Features []string
}

// Generator produces listing descriptions.
type Generator struct {
	// generate is swappable in tests.
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewGenerator creates a Gemini-backed generator.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Generator{
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := client.Models.GenerateContent(ctx,
				model,
				genai.Text(prompt),
				&genai.GenerateContentConfig{
					Temperature: genai.Ptr[float32](0.7),
					TopP:        genai.Ptr[float32](0.8),
					TopK:        genai.Ptr[float32](40),
				},
			)
			if err != nil {
				return "", fmt.Errorf("generating content: %w", err)
			}
			return resp.Text(), nil
		},
	}, nil
}

// Describe returns a listing description for the given details, or the
// fixed fallback text when generation fails.
func (g *Generator) Describe(ctx context.Context, d Details) string {
	text, err := g.generate(ctx, buildPrompt(d))
	if err != nil || strings.TrimSpace(text) == "" {
		slog.Warn("description generation failed", "error", err)
		return Fallback
	}
	return text
}

// buildPrompt renders the structured facts into the listing prompt.
func buildPrompt(d Details) string {
	return fmt.Sprintf(`Write a luxury real estate description for a property in Sierra Leone with these details:
    Title: %s
    Price: %g
    Bedrooms: %d
    Bathrooms: %d
    Location: %s
    Special Features: %s

    Make it professional, compelling, and ready for a listing website. Mention local Sierra Leonean appeal, security, and amenities where appropriate.`,
		d.Title, d.Price, d.Beds, d.Baths, d.Location, strings.Join(d.Features, ", "))
}
