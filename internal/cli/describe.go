package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/describe"
	"github.com/calabashre/calabash/internal/listing"
)

func newDescribeCmd() *cobra.Command {
	var (
		title    string
		location string
		price    float64
		beds     int
		baths    int
		features string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate a listing description with AI",
		Long:  "Generate a marketing description for a listing using the Gemini API. Requires GEMINI_API_KEY.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd.Context(), title, location, price, beds, baths, features)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "listing title")
	cmd.Flags().StringVar(&location, "location", "", "property location")
	cmd.Flags().Float64Var(&price, "price", 0, "asking price")
	cmd.Flags().IntVar(&beds, "beds", 0, "number of bedrooms")
	cmd.Flags().IntVar(&baths, "baths", 0, "number of bathrooms")
	cmd.Flags().StringVar(&features, "features", "", "comma separated feature list")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))
	cobra.CheckErr(cmd.MarkFlagRequired("location"))

	return cmd
}

func runDescribe(ctx context.Context, title, location string, price float64, beds, baths int, features string) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	if sv.cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	gen, err := describe.NewGenerator(ctx, sv.cfg.GeminiAPIKey)
	if err != nil {
		return err
	}

	text := gen.Describe(ctx, describe.Details{
		Title:    title,
		Price:    price,
		Beds:     beds,
		Baths:    baths,
		Location: location,
		Features: listing.SplitFeatures(features),
	})

	if isJSON() {
		return printJSON(map[string]string{"description": text})
	}
	fmt.Println(strings.TrimSpace(text))
	return nil
}
