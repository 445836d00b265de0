package parser

// WeaponMarker introduces a weapon category for the side it follows.
const WeaponMarker = "-weapon"

// AttackCmd is "<verb> <attacker> [markers] <defender> [markers]".
type AttackCmd struct {
	Verb     string `parser:"@Word"`
	Attacker *Side  `parser:"@@"`
	Defender *Side  `parser:"@@"`
}

// Side is one combatant and the markers written after its name.
type Side struct {
	Name      string      `parser:"@Word"`
	Modifiers []*Modifier `parser:"@@*"`
}

// Modifier is a marker and its value, e.g. "-weapon Lourd". The value may
// itself look like a marker: "-weapon -lame" names an improvised weapon.
type Modifier struct {
	Marker string `parser:"@Marker"`
	Value  string `parser:"@(Word | Marker)"`
}

// Weapons returns the weapon categories of the side in the order given.
// Markers other than -weapon are kept in the tree but carry no meaning.
func (s *Side) Weapons() []string {
	var out []string
	for _, m := range s.Modifiers {
		if m.Marker == WeaponMarker {
			out = append(out, m.Value)
		}
	}
	return out
}
