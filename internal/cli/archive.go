package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive one of your listings",
		Long:  "Remove a listing owned by the signed-in agent from the catalog.",
		Args:  cobra.ExactArgs(1),
		RunE:  runArchive,
	}
}

func runArchive(cmd *cobra.Command, args []string) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, err := sv.requireSession()
	if err != nil {
		return err
	}

	if err := sv.listings.Archive(agent, args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Listing %s archived.\n", args[0])
	return nil
}
