package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findUserCmd = &cobra.Command{
	Use:   "find-user <username>",
	Short: "Check that a sleeper username can be resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runFindUser,
}

func init() {
	rootCmd.AddCommand(findUserCmd)
}

func runFindUser(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.ctrl.FindUser(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", user.Username)
	fmt.Fprintf(cmd.OutOrStdout(), "User ID: %s\n", user.UserID)
	return nil
}
