package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var (
		name     string
		email    string
		agency   string
		password string
		code     string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register as a listing agent",
		Long:  "Register a new agent account. Requires the company authorization code.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(name, email, agency, password, code)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "agent full name")
	cmd.Flags().StringVar(&email, "email", "", "agent email address")
	cmd.Flags().StringVar(&agency, "agency", "", "agency name (optional)")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&code, "code", "", "company authorization code")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cobra.CheckErr(cmd.MarkFlagRequired("email"))
	cobra.CheckErr(cmd.MarkFlagRequired("password"))
	cobra.CheckErr(cmd.MarkFlagRequired("code"))

	return cmd
}

func runRegister(name, email, agency, password, code string) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, err := sv.auth.Register(name, email, agency, password, code)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(agent)
	}
	fmt.Printf("✓ Registered and signed in as %s (%s)\n", agent.Name, agent.Email)
	return nil
}
