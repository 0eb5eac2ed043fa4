package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMine()
		},
	}
}

func runMine() error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, err := sv.requireSession()
	if err != nil {
		return err
	}

	props := sv.listings.OwnedBy(agent.ID)

	if isJSON() {
		return printJSON(props)
	}
	if len(props) == 0 {
		fmt.Println("You have no listings yet. Run 'calabash create' to publish one.")
		return nil
	}
	return printPropertyTable(props, sv.favorites.Contains)
}
