package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a property as favorite",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavorite,
	}
}

func runFavorite(cmd *cobra.Command, args []string) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	id := args[0]
	if _, ok := sv.catalog.Get(id); !ok {
		return fmt.Errorf("property not found: %s", id)
	}
	if err := sv.favorites.Toggle(id); err != nil {
		return err
	}

	if sv.favorites.Contains(id) {
		fmt.Printf("♥ Property %s added to favorites.\n", id)
	} else {
		fmt.Printf("Property %s removed from favorites.\n", id)
	}
	return nil
}

func newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorited properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavorites()
		},
	}
}

func runFavorites() error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	props := sv.favorites.List(sv.catalog.Properties())

	if isJSON() {
		return printJSON(props)
	}
	if len(props) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}
	return printPropertyTable(props, sv.favorites.Contains)
}
