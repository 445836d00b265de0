package combat

import "github.com/Guismus/DanjonBot/internal/i18n"

// Tier is the graded result of a resolver stage. Sous tiers grade a result
// that went against the side favoured on paper. Neutre is the zero value.
type Tier int

const (
	SousDomination Tier = iota - 5
	Souspuissance
	SousEfficace
	SousAvantage
	SousFaveur
	Neutre
	Faveur
	Avantage
	Efficace
	Surpuissance
	Domination
)

var tierTags = map[Tier]string{
	SousDomination: "sous_domination",
	Souspuissance:  "souspuissance",
	SousEfficace:   "sous_efficace",
	SousAvantage:   "sous_avantage",
	SousFaveur:     "sous_faveur",
	Neutre:         "neutre",
	Faveur:         "faveur",
	Avantage:       "avantage",
	Efficace:       "efficace",
	Surpuissance:   "surpuissance",
	Domination:     "domination",
}

// Tiers returns every tier from SousDomination to Domination.
func Tiers() []Tier {
	out := make([]Tier, 0, len(tierTags))
	for t := SousDomination; t <= Domination; t++ {
		out = append(out, t)
	}
	return out
}

// Tag is the stable identifier of the tier, e.g. "sous_faveur".
func (t Tier) Tag() string {
	if tag, ok := tierTags[t]; ok {
		return tag
	}
	return "neutre"
}

// Key is the message catalog key of the tier label.
func (t Tier) Key() string { return "tier." + t.Tag() }

// Label is the localised phrase used in reply sentences.
func (t Tier) Label(locale string) string {
	return i18n.Printer(locale).Sprintf(t.Key())
}

// Favours reports whether the tier favours the speed winner.
func (t Tier) Favours() bool { return t > Neutre }

func (t Tier) String() string { return t.Tag() }
