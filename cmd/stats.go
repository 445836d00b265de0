/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guismus/DanjonBot/internal/combat"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Print the stat sheet of an adventurer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()

		adv, ok, err := a.loader.FindAdventurer(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return combat.NotFound(args[0])
		}
		sheet, err := a.session.Sheet(adv)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sheet)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
