// Package i18n registers the reply catalog with x/text/message and hands out
// printers for the supported locales. French is the base locale.
package i18n

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is used when a requested locale cannot be matched.
const BaseLocale = "fr"

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

var catalogs = map[string]map[string]string{
	"fr": {
		"tier.sous_domination": "une sous-domination",
		"tier.souspuissance":   "une sous-puissance",
		"tier.sous_efficace":   "un sous-efficace",
		"tier.sous_avantage":   "un sous-avantage",
		"tier.sous_faveur":     "une sous-faveur",
		"tier.neutre":          "un neutre",
		"tier.faveur":          "une faveur",
		"tier.avantage":        "un avantage",
		"tier.efficace":        "un efficace",
		"tier.surpuissance":    "une surpuissance",
		"tier.domination":      "une domination",

		"outcome": "%[1]s touche %[2]s avec %[3]s en vitesse, son attaque causant %[4]s, qui perd %[5]v de durabilité suite au coup infligé si il a fait usage d'une arme",

		"sheet.adventurer":   "Aventurier: %s",
		"sheet.race":         "Race: %s",
		"sheet.rank":         "Rank: %s",
		"sheet.level":        "Level: %d",
		"sheet.stats":        "Stats: %s",
		"sheet.stats_human":  "Stats Humain: %s",
		"sheet.stats_dragon": "Stats Dragon: %s",
		"sheet.health":       "Blessures: %s (%s)",
		"sheet.jobs":         "Métiers: %s",
		"sheet.no_jobs":      "Aucun métier",
		"sheet.physical":     "Energie physique: %d/%d",
		"sheet.magical":      "Energie magique:",

		"error.not_found": "Aucun aventurier nommé %s",
		"error.config":    "Les données du jeu sont indisponibles",
	},
	"en": {
		"tier.sous_domination": "a sub-domination",
		"tier.souspuissance":   "a sub-overpower",
		"tier.sous_efficace":   "a sub-effective",
		"tier.sous_avantage":   "a sub-advantage",
		"tier.sous_faveur":     "a sub-favour",
		"tier.neutre":          "a neutral",
		"tier.faveur":          "a favour",
		"tier.avantage":        "an advantage",
		"tier.efficace":        "an effective",
		"tier.surpuissance":    "an overpower",
		"tier.domination":      "a domination",

		"outcome": "%[1]s hits %[2]s with %[3]s in speed, the blow causing %[4]s; the weapon loses %[5]v durability if one was used",

		"sheet.adventurer":   "Adventurer: %s",
		"sheet.race":         "Race: %s",
		"sheet.rank":         "Rank: %s",
		"sheet.level":        "Level: %d",
		"sheet.stats":        "Stats: %s",
		"sheet.stats_human":  "Human stats: %s",
		"sheet.stats_dragon": "Dragon stats: %s",
		"sheet.health":       "Wounds: %s (%s)",
		"sheet.jobs":         "Jobs: %s",
		"sheet.no_jobs":      "No job",
		"sheet.physical":     "Physical energy: %d/%d",
		"sheet.magical":      "Magical energy:",

		"error.not_found": "No adventurer named %s",
		"error.config":    "Game data is unavailable",
	},
}

func init() {
	for locale, messages := range catalogs {
		tag := language.MustParse(locale)
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				panic(err)
			}
		}
	}
}

// Tag resolves a locale string (e.g. "fr-FR", "en") to a supported tag.
func Tag(locale string) language.Tag {
	if locale == "" {
		locale = BaseLocale
	}
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	return language.Make(base.String())
}

// Printer returns a printer for the best matching supported locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale))
}

// Has reports whether key is defined for the given locale.
func Has(locale, key string) bool {
	_, ok := catalogs[Tag(locale).String()][key]
	return ok
}
