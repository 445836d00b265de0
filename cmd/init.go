package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/data"
	"github.com/Guismus/DanjonBot/internal/stats"
)

// starterRaces lists every baseline key an adventurer race can map to.
var starterRaces = []data.Race{
	data.JiaodanHumain, data.JiaodanDragon, data.Marwoeth, data.Demon, data.Elfe, data.Ange,
	data.FerosumPassif, data.FerosumExtreme, data.Horya, data.Humain, data.Gwisin, data.Stens,
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write starter data files",
	Long: `Bootstraps a data directory with an adventurers file, a race baselines file listing
every race with zeroed stats, and a threshold set. Existing files are kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := "data"
		if len(args) == 1 {
			dataDir = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		ext := "." + initFormat

		races := data.RaceFile{}
		for _, r := range starterRaces {
			// the two Jiaodan forms are stored under their own names
			key := r.BaselineKey()
			if key == data.NoRace {
				key = string(r)
			}
			races.Data = append(races.Data, data.RaceStats{Race: key, Baseline: stats.Baseline{}})
		}

		files := []struct {
			key  string
			name string
			v    any
		}{
			{"adventurers_file", "adventurers" + ext, data.AdventurerFile{Adventurer: []data.Adventurer{}}},
			{"races_file", "races" + ext, races},
			{"thresholds_file", "thresholds" + ext, combat.Thresholds{Faveur: 0.5, Avantage: 1, Efficace: 2, Surpuissance: 4, Domination: 8}},
		}

		out := cmd.OutOrStdout()
		for _, f := range files {
			path := filepath.Join(dataDir, f.name)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(out, "kept %s\n", path)
				continue
			}
			if err := data.Save(path, f.v); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", path)
		}

		fmt.Fprintln(out, "\nPoint danjon at them in $HOME/.danjon.yaml:")
		for _, f := range files {
			abs, _ := filepath.Abs(filepath.Join(dataDir, f.name))
			fmt.Fprintf(out, "  %s: %s\n", f.key, abs)
		}
		return nil
	},
}

var initFormat string

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initFormat, "format", "json", "file format, json or yaml")
}
