package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Long:  "Show full details for a single property listing.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	p, ok := sv.catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("property not found: %s", args[0])
	}

	if isJSON() {
		return printJSON(p)
	}
	printPropertySummary(p, sv.favorites.Contains(p.ID))
	return nil
}
