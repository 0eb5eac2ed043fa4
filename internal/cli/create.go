package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/listing"
)

// draftFlags holds the listing fields shared by create and update.
type draftFlags struct {
	title       string
	description string
	price       float64
	currency    string
	listType    string
	beds        int
	baths       int
	sqft        float64
	location    string
	image       string
	features    string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "asking price")
	cmd.Flags().StringVar(&f.currency, "currency", string(catalog.CurrencyUSD), "price currency (USD|SLE)")
	cmd.Flags().StringVar(&f.listType, "type", string(catalog.TypeSale), "listing type (Sale|Rent)")
	cmd.Flags().IntVar(&f.beds, "beds", 0, "number of bedrooms")
	cmd.Flags().IntVar(&f.baths, "baths", 0, "number of bathrooms")
	cmd.Flags().Float64Var(&f.sqft, "sqft", 0, "floor area in square feet")
	cmd.Flags().StringVar(&f.location, "location", "", "property location")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL (placeholder generated when omitted)")
	cmd.Flags().StringVar(&f.features, "features", "", "comma separated feature list")
}

// toDraft validates the flags and converts them to a listing draft.
func (f *draftFlags) toDraft() (listing.Draft, error) {
	if f.title == "" {
		return listing.Draft{}, fmt.Errorf("--title is required")
	}
	if f.location == "" {
		return listing.Draft{}, fmt.Errorf("--location is required")
	}
	if f.price < 0 {
		return listing.Draft{}, fmt.Errorf("price must not be negative")
	}
	if f.beds < 0 || f.baths < 0 || f.sqft < 0 {
		return listing.Draft{}, fmt.Errorf("beds, baths and sqft must not be negative")
	}
	if !catalog.ValidCurrency(f.currency) {
		return listing.Draft{}, fmt.Errorf("unknown currency: %s", f.currency)
	}
	if !catalog.ValidListingType(f.listType) {
		return listing.Draft{}, fmt.Errorf("unknown listing type: %s", f.listType)
	}

	return listing.Draft{
		Title:       f.title,
		Description: f.description,
		Price:       f.price,
		Currency:    catalog.Currency(f.currency),
		Type:        catalog.ListingType(f.listType),
		Beds:        f.beds,
		Baths:       f.baths,
		Sqft:        f.sqft,
		Location:    f.location,
		Image:       f.image,
		Features:    f.features,
	}, nil
}

func newCreateCmd() *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new listing",
		Long:  "Publish a new property listing owned by the signed-in agent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(&flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runCreate(flags *draftFlags) error {
	draft, err := flags.toDraft()
	if err != nil {
		return err
	}

	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, err := sv.requireSession()
	if err != nil {
		return err
	}

	p, err := sv.listings.Create(agent, draft)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}
	fmt.Printf("✓ Listing %s published.\n", p.ID)
	return nil
}
