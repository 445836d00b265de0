// Package stats turns an adventurer's rolled variance, race baseline and level
// into the derived statistics used in combat.
package stats

import "fmt"

// Variance holds the individually rolled trait values of a character.
type Variance struct {
	Force           int `json:"force" yaml:"force"`
	Resistance      int `json:"resistance" yaml:"resistance"`
	Speed           int `json:"vitesse" yaml:"vitesse"`
	MagicForce      int `json:"force_magique" yaml:"force_magique"`
	MagicResistance int `json:"resistance_magique" yaml:"resistance_magique"`
}

// Baseline holds the default attribute values of a race.
// The zero value is the sentinel used for races that cannot be found.
type Baseline struct {
	Force           int `json:"force" yaml:"force"`
	Resistance      int `json:"resistance" yaml:"resistance"`
	Speed           int `json:"vitesse" yaml:"vitesse"`
	MagicForce      int `json:"force_magique" yaml:"force_magique"`
	MagicResistance int `json:"resistance_magique" yaml:"resistance_magique"`
}

// Modifier is an additive bonus applied before scaling.
type Modifier struct {
	Force           int
	Resistance      int
	Speed           int
	MagicForce      int
	MagicResistance int
}

// Derived are the combat-ready statistics, aligned on the quarter grid.
type Derived struct {
	Force           float64 `json:"force"`
	Resistance      float64 `json:"resistance"`
	Speed           float64 `json:"vitesse"`
	MagicForce      float64 `json:"force_magique"`
	MagicResistance float64 `json:"resistance_magique"`
}

func (d Derived) String() string {
	return fmt.Sprintf("F %v / R %v / V %v / FM %v / RM %v",
		d.Force, d.Resistance, d.Speed, d.MagicForce, d.MagicResistance)
}

// Derive computes the derived statistics of a character.
//
// Every attribute is scaled with modifier.Force, never with its own modifier
// field: one scalar bonus shifts all five attributes identically. Level and
// variance are not range checked; a level of 0 or negative variances simply
// produce small or degenerate values.
func Derive(v Variance, level int, b Baseline, mod *Modifier) Derived {
	var bonus int
	if mod != nil {
		bonus = mod.Force
	}

	scale := func(base, variance int) float64 {
		raw := float64(2*(bonus+base)+variance)*float64(level+2)/150 + 5
		return RoundUp(raw)
	}

	return Derived{
		Force:           scale(b.Force, v.Force),
		Resistance:      scale(b.Resistance, v.Resistance),
		Speed:           scale(b.Speed, v.Speed),
		MagicForce:      scale(b.MagicForce, v.MagicForce),
		MagicResistance: scale(b.MagicResistance, v.MagicResistance),
	}
}
