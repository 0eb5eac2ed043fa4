package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your listings",
		Long:  "Replace the details of a listing owned by the signed-in agent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args[0], &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runUpdate(id string, flags *draftFlags) error {
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

	p, err := sv.listings.Update(agent, id, draft)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(p)
	}
	fmt.Printf("✓ Listing %s updated.\n", p.ID)
	return nil
}
