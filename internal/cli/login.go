package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in as a registered agent",
		Long:  "Sign in with a registered agent account. The session is stored locally until logout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")

	return cmd
}

func runLogin(email, password string) error {
	if password == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	agent, err := sv.auth.Login(email, password)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(agent)
	}
	fmt.Printf("✓ Signed in as %s (%s)\n", agent.Name, agent.Email)
	return nil
}
