package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and catalog status",
		Long:  "Shows the signed-in agent, the catalog size and the number of favorites.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, signedIn := sv.auth.Session()
	props := sv.catalog.Properties()
	favs := sv.favorites.IDs()

	if isJSON() {
		out := map[string]interface{}{
			"signedIn":   signedIn,
			"properties": len(props),
			"favorites":  len(favs),
		}
		if signedIn {
			out["agent"] = agent
		}
		return printJSON(out)
	}

	if signedIn {
		printAgent(agent)
	} else {
		fmt.Println("Not signed in.")
	}
	fmt.Printf("Properties:  %d\n", len(props))
	fmt.Printf("Favorites:   %d\n", len(favs))

	if signedIn {
		mine := sv.listings.OwnedBy(agent.ID)
		fmt.Printf("My listings: %d\n", len(mine))
	}
	return nil
}
