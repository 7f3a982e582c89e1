package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var playerCmd = &cobra.Command{
	Use:   "player <player_id>",
	Short: "Show a player from the local player table",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	rootCmd.AddCommand(playerCmd)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	p, err := app.ctrl.GetPlayer(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	team := "no team"
	if !p.Team.IsFreeAgent() {
		team = p.Team.Friendly()
	}
	years := "unknown"
	if p.YearsExp != nil {
		years = strconv.Itoa(*p.YearsExp)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s, %s)\n", p.Name(), p.Position, team)
	fmt.Fprintf(out, "Status: %s\n", p.Status)
	fmt.Fprintf(out, "Years: %s\n", years)
	fmt.Fprintf(out, "Updated: %s\n", p.FormattedUpdatedTime())
	return nil
}
