package lexicon

// defaultCoOccurrence returns the built-in co-occurrence table: every token
// must appear somewhere in the text, in any order, for the boost to apply.
// Tokens are written pre-normalized (lowercase, no diacritics).
func defaultCoOccurrence() []CoOccurrencePattern {
	return []CoOccurrencePattern{
		{Key: "server", Tokens: []string{"service", "salle"}, Boost: 0.5},
		{Key: "server", Tokens: []string{"service", "midi"}, Boost: 0.3},
		{Key: "cook", Tokens: []string{"chef", "partie"}, Boost: 0.5},
		{Key: "chef", Tokens: []string{"chef", "cuisine"}, Boost: 0.5},
		{Key: "kitchen_porter", Tokens: []string{"plonge", "restaurant"}, Boost: 0.4},
		{Key: "warehouse_worker", Tokens: []string{"preparation", "commandes"}, Boost: 0.4},
		{Key: "forklift_operator", Tokens: []string{"caces"}, Boost: 0.6},
		{Key: "delivery_driver", Tokens: []string{"livraison", "scooter"}, Boost: 0.4},
		{Key: "delivery_driver", Tokens: []string{"livraison", "velo"}, Boost: 0.4},
		{Key: "childminder", Tokens: []string{"garde", "enfants"}, Boost: 0.5},
		{Key: "merchandiser", Tokens: []string{"mise", "rayon"}, Boost: 0.5},
		{Key: "security_guard", Tokens: []string{"agent", "securite"}, Boost: 0.5},
		{Key: "cleaner", Tokens: []string{"menage", "bureaux"}, Boost: 0.4},
		{Key: "housekeeper", Tokens: []string{"chambres", "hotel"}, Boost: 0.5},
		{Key: "mover", Tokens: []string{"demenagement"}, Boost: 0.4},
		{Key: "site_laborer", Tokens: []string{"chantier", "btp"}, Boost: 0.4},
	}
}

// defaultContextual returns the built-in contextual table: the boost applies
// when all required tokens are present and none of the excluded ones are.
func defaultContextual() []ContextualPattern {
	return []ContextualPattern{
		// "bar" points at bartending unless the text is about the kitchen
		// or a construction site.
		{Key: "bartender", Requires: []string{"bar"}, Excludes: []string{"cuisine", "chantier"}, Boost: 0.5},
		{Key: "barista", Requires: []string{"cafe"}, Excludes: []string{"bar", "restaurant"}, Boost: 0.3},
		{Key: "cook", Requires: []string{"cuisine"}, Excludes: []string{"chef"}, Boost: 0.3},
		{Key: "server", Requires: []string{"restaurant"}, Excludes: []string{"cuisine", "plonge"}, Boost: 0.2},
		{Key: "site_laborer", Requires: []string{"chantier"}, Excludes: []string{"electricien", "plombier"}, Boost: 0.3},
		{Key: "housekeeper", Requires: []string{"hotel", "etages"}, Boost: 0.4},
		{Key: "receptionist", Requires: []string{"reception"}, Excludes: []string{"chantier"}, Boost: 0.3},
		{Key: "gardener", Requires: []string{"jardin"}, Boost: 0.3},
		{Key: "sales_assistant", Requires: []string{"boutique"}, Excludes: []string{"caisse"}, Boost: 0.3},
		{Key: "cashier", Requires: []string{"caisse"}, Boost: 0.4},
	}
}
