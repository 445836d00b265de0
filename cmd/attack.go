/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Guismus/DanjonBot/internal/dice"
)

var attackCmd = &cobra.Command{
	Use:     "attack <attacker> [-weapon <type>] <defender> [-weapon <type>]",
	Aliases: []string{"attaque", "roll"},
	Short:   "Resolve one attack exchange",
	Long: `Resolves a single exchange between two adventurers and prints the reply sentence.

Weapon types are Moyen, Leger and Lourd; anything else is an improvised weapon.
Only long flags are recognised here, e.g.:

	danjon attack Kael -weapon Lourd Mira --seed 42`,
	// -weapon would otherwise be read as a cluster of shorthand flags.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := longFlagSet(cmd)
		flags, tokens := splitLongFlags(fs, args)
		if wantsHelp(flags, tokens) {
			return cmd.Help()
		}
		if err := parseLongFlags(fs, flags); err != nil {
			return err
		}

		a, err := newApp(seededSource(cmd))
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.resolver.ResolveAttack(append([]string{"attaque"}, tokens...))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.session.Outcome(out))
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			sp := out.Speed
			fmt.Fprintf(cmd.OutOrStdout(), "speed: %s %v vs %s %v, diff %v, d%d rolled %d\n",
				out.Winner.Name, out.Winner.Speed, out.Loser.Name, out.Loser.Speed, sp.Diff, sp.Sides, sp.Face)
			fmt.Fprintf(cmd.OutOrStdout(), "power: force %v vs resistance %v, delta %v\n",
				out.Winner.Force, out.Loser.Resistance, out.Power.Delta)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attackCmd)
	attackCmd.Flags().Uint64("seed", 0, "replay rolls from this seed (0 uses crypto/rand)")
	attackCmd.Flags().Bool("verbose", false, "print the rolls behind the outcome")
}

// longFlagSet gathers the global and local flags of a command that parses
// its own arguments.
func longFlagSet(cmd *cobra.Command) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.AddFlagSet(cmd.Root().PersistentFlags())
	fs.AddFlagSet(cmd.Flags())
	return fs
}

// splitLongFlags separates --flag[=value] tokens from command tokens. A
// known non-boolean flag written without "=" takes the next token as its
// value.
func splitLongFlags(fs *pflag.FlagSet, args []string) (flags, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "--") {
			rest = append(rest, a)
			continue
		}
		flags = append(flags, a)
		if strings.Contains(a, "=") || i+1 == len(args) {
			continue
		}
		if f := fs.Lookup(strings.TrimPrefix(a, "--")); f != nil && f.Value.Type() != "bool" {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, rest
}

func wantsHelp(flags, tokens []string) bool {
	for _, f := range flags {
		if f == "--help" {
			return true
		}
	}
	return len(tokens) == 1 && tokens[0] == "-h"
}

// parseLongFlags parses the flags split off by splitLongFlags, then reloads
// the configuration.
func parseLongFlags(fs *pflag.FlagSet, flags []string) error {
	if err := fs.Parse(flags); err != nil {
		return err
	}
	initConfig()
	return nil
}

func seededSource(cmd *cobra.Command) dice.RandomSource {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		return nil
	}
	return dice.NewSeeded(seed)
}
