/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/dice"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] -- <attacker> [-weapon <type>] <defender> [-weapon <type>]",
	Short: "Estimate outcome frequencies over many duels",
	Long: `Prepares the matchup once and resolves it repeatedly, then prints how often
each side wins and how often each tier comes up. The command tokens follow "--"
so that -weapon markers are not read as flags:

	danjon simulate -n 5000 --seed 7 -- Kael -weapon Lourd Mira`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("duels")
		seed, _ := cmd.Flags().GetUint64("seed")
		if n <= 0 {
			return fmt.Errorf("duels must be positive, got %d", n)
		}

		var rng dice.RandomSource
		if seed != 0 {
			rng = dice.NewSeeded(seed)
		}
		a, err := newApp(rng)
		if err != nil {
			return err
		}
		defer a.close()

		m, err := a.resolver.Prepare(append([]string{"attaque"}, args...))
		if err != nil {
			return err
		}

		tally := combat.NewTally()
		bar := progressbar.Default(int64(n), "Resolving duels")
		for i := 0; i < n; i++ {
			out, err := a.resolver.Duel(m)
			if err != nil {
				return err
			}
			tally.Add(out)
			_ = bar.Add(1)
		}
		_ = bar.Finish()

		printTally(cmd.OutOrStdout(), tally, viperLocale())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("duels", "n", 1000, "number of duels to resolve")
	simulateCmd.Flags().Uint64("seed", 0, "seed for replayable runs (0 uses crypto/rand)")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = cellStyle.Foreground(lipgloss.Color("#874BFD"))
)

func tallyTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}
			return cellStyle
		})
}

// printTally renders the win shares, then how often each tier came up.
// Tiers that never occurred are left out.
func printTally(w io.Writer, t *combat.Tally, locale string) {
	summary := tallyTable("duels", strconv.Itoa(t.Duels), "")
	for _, name := range t.Names() {
		summary.Row("wins "+name, strconv.Itoa(t.Wins[name]), percent(t.Share(t.Wins[name])))
	}
	summary.Row("upsets", strconv.Itoa(t.Upsets), percent(t.Share(t.Upsets)))
	summary.Row("mean wear", fmt.Sprintf("%.3f", t.MeanWear()), "")

	tiers := tallyTable("tier", "speed", "power")
	for _, tier := range combat.Tiers() {
		s, p := t.SpeedTiers[tier], t.PowerTiers[tier]
		if s == 0 && p == 0 {
			continue
		}
		tiers.Row(tier.Label(locale), strconv.Itoa(s), strconv.Itoa(p))
	}

	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Simulation"),
		summary.Render(),
		tiers.Render(),
	))
}

func percent(share float64) string { return fmt.Sprintf("%.1f%%", 100*share) }
