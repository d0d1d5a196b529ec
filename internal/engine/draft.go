package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nsellier/brigade/internal/lexicon"
	"github.com/nsellier/brigade/internal/model"
)

var draftTitleCaser = cases.Title(language.French)

// templateDraft renders a deterministic French listing from the structured
// record alone. It is the draft of last resort: always available, never
// inventive, used whenever the enriched draft cannot be produced.
func templateDraft(store *lexicon.Store, need *model.ParsedNeed) model.Draft {
	label := occupationLabel(store, need.PrimaryKey())

	title := "Recherche " + label
	if need.Context.HasLocation() {
		title += " à " + need.Context.Location
	}

	var description strings.Builder
	fmt.Fprintf(&description, "Nous recherchons un profil %s", label)
	switch need.Context.Duration {
	case model.DurationOneDay:
		description.WriteString(" pour une mission d'une journée")
	case model.DurationShort:
		description.WriteString(" pour une mission de courte durée")
	case model.DurationLong:
		description.WriteString(" pour une mission de longue durée")
	default:
		description.WriteString(" pour une mission")
	}
	if need.Context.HasLocation() {
		fmt.Fprintf(&description, " à %s", need.Context.Location)
	}
	description.WriteString(".")

	if need.Context.Temporal != "" {
		fmt.Fprintf(&description, " Créneau : %s.", need.Context.Temporal)
	}

	switch need.Context.Urgency {
	case model.UrgencyHigh:
		description.WriteString(" Besoin urgent, démarrage immédiat.")
	case model.UrgencyMedium:
		description.WriteString(" Démarrage souhaité rapidement.")
	}

	return model.Draft{
		Title:       title,
		Description: description.String(),
		Source:      model.DraftTemplate,
	}
}

// occupationLabel resolves the display label for a key: the first French
// label variant when the lexicon knows the key, the key itself when it came
// from enrichment, and a generic fallback when nothing was detected.
func occupationLabel(store *lexicon.Store, key string) string {
	if key == "" {
		return "personnel de renfort"
	}

	if def, ok := store.Get(key); ok {
		if labels := def.Labels[lexicon.LangFrench]; len(labels) > 0 {
			return draftTitleCaser.String(labels[0])
		}
	}

	return strings.ReplaceAll(key, "_", " ")
}
