package cli

import (
	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		query    string
		listType string
		minPrice float64
		maxPrice float64
		minBeds  int
		minBaths int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties in the catalog",
		Long:  "List the property catalog, optionally filtered by text, listing type, price range, beds and baths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cr := catalog.Criteria{
				Text:     query,
				Type:     listType,
				MinBeds:  minBeds,
				MinBaths: minBaths,
			}
			if cmd.Flags().Changed("min-price") {
				cr.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				cr.MaxPrice = &maxPrice
			}
			return runList(cr)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "text to match against title and location")
	cmd.Flags().StringVar(&listType, "type", catalog.TypeAll, "listing type (All|Sale|Rent)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&minBeds, "min-beds", 0, "minimum number of bedrooms")
	cmd.Flags().IntVar(&minBaths, "min-baths", 0, "minimum number of bathrooms")

	return cmd
}

func runList(cr catalog.Criteria) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	props := sv.catalog.Filter(cr)

	if isJSON() {
		return printJSON(props)
	}
	return printPropertyTable(props, sv.favorites.Contains)
}
