package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	if _, ok := sv.auth.Session(); !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := sv.auth.Logout(); err != nil {
		return err
	}

	fmt.Println("✓ Signed out.")
	return nil
}
