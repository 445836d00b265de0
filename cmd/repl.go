/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive shell",
	Long: `Opens a terminal shell that sends chat commands to the bot and logs its replies.
Tab completes verbs, adventurer names and weapon types. Example commands:
	> attaque Kael -weapon Lourd Mira
	> stats Kael`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.close()

		roster, err := a.loader.Adventurers()
		if err != nil {
			a.logger.Warn("adventurers unavailable for completion", zap.Error(err))
		}
		return RunTUI(a.session, roster, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
