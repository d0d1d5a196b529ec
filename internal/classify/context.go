package classify

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/textnorm"
)

// Urgency word lists. Anything outside them resolves to the low default.
var (
	urgencyHighTokens = []string{
		"urgent", "urgence", "urgemment", "immediat", "immediatement",
		"asap", "aujourd", "عاجل", "فورا",
	}
	urgencyMediumTokens = []string{
		"rapidement", "vite", "bientot", "prochainement",
		"soon", "quickly", "قريبا",
	}
)

// Duration word lists, checked in bucket order; the first hit wins.
var (
	durationOneDayTokens = []string{
		"extra", "journee", "soiree", "ponctuel", "ponctuelle", "remplacement",
	}
	durationShortTokens = []string{
		"semaine", "semaines", "quinzaine", "saison", "saisonnier", "saisonniere",
		"interim", "mission", "cdd", "temporaire", "temporary", "seasonal",
	}
	durationLongTokens = []string{
		"cdi", "longue", "long", "permanent", "permanente", "annee",
		"durable", "fulltime",
	}
)

// temporalTokens is the loose temporal hint vocabulary. The first text token
// found in this set is kept as-is.
var temporalTokens = map[string]struct{}{
	"soir": {}, "soiree": {}, "matin": {}, "matinee": {}, "midi": {},
	"nuit": {}, "weekend": {}, "demain": {},
	"evening": {}, "morning": {}, "night": {}, "tonight": {}, "tomorrow": {},
}

// locationPattern captures capitalized word runs after a place preposition.
// It runs on the raw text because capitalization is the signal.
var locationPattern = regexp.MustCompile(
	`(?:^|\s)(?i:à|au|a|sur|vers|près de|pres de)\s+(\p{Lu}[\p{L}'’-]*(?:\s+\p{Lu}[\p{L}'’-]*)*)`)

var titleCaser = cases.Title(language.French)

// ExtractContext pulls situational attributes from the text. Each
// sub-extractor is independent: a miss in one never affects the others, and
// none of them can fail.
func ExtractContext(text string) model.NeedContext {
	tokens := textnorm.Tokenize(text)
	set := textnorm.TokenSet(tokens)

	urgency, explicit := extractUrgency(set)

	return model.NeedContext{
		Urgency:         urgency,
		UrgencyExplicit: explicit,
		Duration:        extractDuration(set),
		Location:        extractLocation(text, tokens),
		Temporal:        extractTemporal(tokens),
	}
}

func extractUrgency(set map[string]struct{}) (model.Urgency, bool) {
	if textnorm.ContainsAny(set, urgencyHighTokens) {
		return model.UrgencyHigh, true
	}
	if textnorm.ContainsAny(set, urgencyMediumTokens) {
		return model.UrgencyMedium, true
	}
	return model.UrgencyLow, false
}

func extractDuration(set map[string]struct{}) model.DurationBucket {
	switch {
	case textnorm.ContainsAny(set, durationOneDayTokens):
		return model.DurationOneDay
	case textnorm.ContainsAny(set, durationShortTokens):
		return model.DurationShort
	case textnorm.ContainsAny(set, durationLongTokens):
		return model.DurationLong
	default:
		return ""
	}
}

// extractLocation applies the three-tier strategy: gazetteer scan over the
// whole token stream, then the prepositional pattern cross-checked against
// the gazetteer, then the bare prepositional capture as a last resort. Each
// tier short-circuits on its first hit.
func extractLocation(raw string, tokens []string) string {
	if city := lookupCity(tokens); city != "" {
		return city
	}

	capture := locationPattern.FindStringSubmatch(raw)
	if capture == nil {
		return ""
	}

	if city := cityFromName(capture[1]); city != "" {
		return city
	}

	return titleCaser.String(capture[1])
}

func extractTemporal(tokens []string) string {
	for _, tok := range tokens {
		if _, ok := temporalTokens[tok]; ok {
			return tok
		}
	}
	return ""
}
