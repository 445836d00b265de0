package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/stats"
)

// Paths locates the three data files.
type Paths struct {
	Adventurers string
	Races       string
	Thresholds  string
}

// Loader reads adventurers, race baselines and thresholds from disk. Files are
// read again on every call so edits are picked up without a restart.
type Loader struct {
	paths  Paths
	logger *zap.Logger
}

// NewLoader returns a loader for the given files. A nil logger discards output.
func NewLoader(paths Paths, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{paths: paths, logger: logger}
}

// AdventurerFile is the layout of the adventurers file.
type AdventurerFile struct {
	Adventurer []Adventurer `json:"adventurer" yaml:"adventurer"`
}

// RaceFile is the layout of the race baselines file.
type RaceFile struct {
	Data []RaceStats `json:"data" yaml:"data"`
}

// Adventurers returns every adventurer record.
func (l *Loader) Adventurers() ([]Adventurer, error) {
	var f AdventurerFile
	if err := l.load(l.paths.Adventurers, &f); err != nil {
		return nil, err
	}
	return f.Adventurer, nil
}

// FindAdventurer looks an adventurer up by exact name.
func (l *Loader) FindAdventurer(name string) (Adventurer, bool, error) {
	all, err := l.Adventurers()
	if err != nil {
		return Adventurer{}, false, err
	}
	for _, a := range all {
		if a.Name == name {
			return a, true, nil
		}
	}
	return Adventurer{}, false, nil
}

// FindCharacter implements combat.CharacterFinder.
func (l *Loader) FindCharacter(name string) (combat.Character, bool, error) {
	a, ok, err := l.FindAdventurer(name)
	if err != nil || !ok {
		return combat.Character{}, ok, err
	}
	return combat.Character{
		Name:     a.Name,
		Level:    a.Level,
		Race:     a.Race.BaselineKey(),
		Variance: a.IV,
	}, true, nil
}

// Races returns every race baseline.
func (l *Loader) Races() ([]RaceStats, error) {
	var f RaceFile
	if err := l.load(l.paths.Races, &f); err != nil {
		return nil, err
	}
	return f.Data, nil
}

// Baseline implements combat.BaselineProvider. An unknown race yields the
// zero baseline; when a race is listed twice the last entry wins.
func (l *Loader) Baseline(race string) (stats.Baseline, error) {
	races, err := l.Races()
	if err != nil {
		return stats.Baseline{}, err
	}
	var (
		base  stats.Baseline
		found bool
	)
	for _, r := range races {
		if r.Race == race {
			base, found = r.Baseline, true
		}
	}
	if !found {
		l.logger.Debug("race has no baseline, using zero stats", zap.String("race", race))
	}
	return base, nil
}

// Thresholds implements combat.ConfigProvider.
func (l *Loader) Thresholds() (combat.Thresholds, error) {
	var th combat.Thresholds
	if err := l.load(l.paths.Thresholds, &th); err != nil {
		return combat.Thresholds{}, err
	}
	return th, nil
}

// Save writes v to path, as indented JSON when the extension is .json and
// as YAML otherwise.
func Save(path string, v any) error {
	var (
		raw []byte
		err error
	)
	if isJSON(path) {
		raw, err = json.MarshalIndent(v, "", "  ")
	} else {
		raw, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode data file %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func isJSON(path string) bool { return strings.EqualFold(filepath.Ext(path), ".json") }

// load decodes a JSON file when its extension is .json and YAML otherwise.
func (l *Loader) load(path string, target any) error {
	if path == "" {
		return fmt.Errorf("no data file configured")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open data file %s: %w", path, err)
	}
	if isJSON(path) {
		err = json.Unmarshal(raw, target)
	} else {
		err = yaml.Unmarshal(raw, target)
	}
	if err != nil {
		return fmt.Errorf("failed to decode data file %s: %w", path, err)
	}
	l.logger.Debug("data file loaded", zap.String("path", path))
	return nil
}
