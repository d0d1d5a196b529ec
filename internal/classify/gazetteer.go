package classify

import (
	"github.com/nsellier/brigade/internal/textnorm"
)

// knownCities is the gazetteer used for location recognition: the larger
// French cities plus the mid-size towns the platform operates in. Matching
// runs on normalized tokens, so hyphen and spacing variants resolve to the
// same entry ("aix en provence" matches "Aix-en-Provence").
var knownCities = []string{
	"Paris",
	"Marseille",
	"Lyon",
	"Toulouse",
	"Nice",
	"Nantes",
	"Montpellier",
	"Strasbourg",
	"Bordeaux",
	"Lille",
	"Rennes",
	"Reims",
	"Toulon",
	"Saint-Étienne",
	"Le Havre",
	"Grenoble",
	"Dijon",
	"Angers",
	"Nîmes",
	"Villeurbanne",
	"Clermont-Ferrand",
	"Aix-en-Provence",
	"Brest",
	"Tours",
	"Amiens",
	"Limoges",
	"Annecy",
	"Perpignan",
	"Boulogne-Billancourt",
	"Metz",
	"Besançon",
	"Orléans",
	"Rouen",
	"Mulhouse",
	"Caen",
	"Nancy",
	"Roubaix",
	"Tourcoing",
	"Avignon",
	"Poitiers",
	"Versailles",
	"La Rochelle",
	"Pau",
	"Calais",
	"Cannes",
	"Antibes",
	"Dunkerque",
	"Biarritz",
}

type gazetteerEntry struct {
	display string
	tokens  []string
}

var gazetteer = buildGazetteer()

func buildGazetteer() []gazetteerEntry {
	entries := make([]gazetteerEntry, 0, len(knownCities))
	for _, city := range knownCities {
		entries = append(entries, gazetteerEntry{
			display: city,
			tokens:  textnorm.Tokenize(city),
		})
	}
	return entries
}

// lookupCity returns the canonical display name when the token sequence
// contains a known city as a consecutive run, or empty when none matches.
func lookupCity(tokens []string) string {
	for _, entry := range gazetteer {
		if containsRun(tokens, entry.tokens) {
			return entry.display
		}
	}
	return ""
}

// cityFromName resolves a captured place name against the gazetteer.
func cityFromName(name string) string {
	return lookupCity(textnorm.Tokenize(name))
}

func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, tok := range needle {
			if haystack[i+j] != tok {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
