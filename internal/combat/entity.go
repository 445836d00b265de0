package combat

import "github.com/Guismus/DanjonBot/internal/stats"

// Entity is a combatant for the span of one resolution.
type Entity struct {
	Name            string
	Level           int
	Force           float64
	Resistance      float64
	Speed           float64
	MagicForce      float64
	MagicResistance float64
}

// NewEntity builds a combatant from derived statistics.
func NewEntity(name string, level int, d stats.Derived) Entity {
	return Entity{
		Name:            name,
		Level:           level,
		Force:           d.Force,
		Resistance:      d.Resistance,
		Speed:           d.Speed,
		MagicForce:      d.MagicForce,
		MagicResistance: d.MagicResistance,
	}
}

// Character is what the resolver needs to know about a named adventurer.
type Character struct {
	Name     string
	Level    int
	Race     string
	Variance stats.Variance
}

// CharacterFinder looks a character up by name. A miss is reported with
// found == false, not with an error.
type CharacterFinder interface {
	FindCharacter(name string) (c Character, found bool, err error)
}

// BaselineProvider returns the baseline of a race. Unknown races yield the
// zero baseline.
type BaselineProvider interface {
	Baseline(race string) (stats.Baseline, error)
}
