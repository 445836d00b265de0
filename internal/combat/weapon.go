package combat

import "github.com/Guismus/DanjonBot/internal/stats"

// Weapon categories recognised by the -weapon marker. Tokens are matched
// case-sensitively; anything else counts as an improvised weapon.
const (
	WeaponMoyen = "Moyen"
	WeaponLeger = "Leger"
	WeaponLourd = "Lourd"
)

// ApplyWeapon returns e adjusted for a weapon of the given category.
func ApplyWeapon(e Entity, category string) Entity {
	switch category {
	case WeaponMoyen:
	case WeaponLeger:
		e.Force = stats.RoundUp(e.Force * 0.9)
		e.Speed *= 1.05
	case WeaponLourd:
		e.Force *= 1.1
		e.Speed *= 0.9
	default:
		e.Force *= 0.85
		e.Speed *= 1.075
	}
	return e
}

// Normalize puts force and speed back on the quarter grid. It always moves
// them up, even when they already sit on the grid.
func Normalize(e Entity) Entity {
	e.Force = stats.RoundUp(e.Force)
	e.Speed = stats.RoundUp(e.Speed)
	return e
}
