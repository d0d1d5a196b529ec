// Package lexicon holds the occupation catalog and the pattern tables the
// detector scores against. The canonical store is built once at startup and
// injected into consumers, so tests can substitute smaller fixture lexicons.
package lexicon

import (
	"fmt"
	"sync"

	"github.com/nsellier/brigade/internal/textnorm"
)

// Lang identifies a label language.
type Lang string

// Supported label languages.
const (
	LangFrench  Lang = "fr"
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// labelLangs fixes the flattening order of per-language labels. Scoring is
// cumulative so the order never changes results, only their layout.
var labelLangs = []Lang{LangFrench, LangEnglish, LangArabic}

// Definition is one occupation: a stable key, per-language label variants,
// and an importance weight. Immutable after load.
type Definition struct {
	Key    string
	Weight float64
	Labels map[Lang][]string
}

// Category is a named grouping of definitions. Organizational only; it plays
// no part in scoring.
type Category struct {
	Name        string
	Definitions []Definition
}

// CoOccurrencePattern boosts an occupation when all its tokens appear
// anywhere in the text, in any order.
type CoOccurrencePattern struct {
	Key    string
	Tokens []string
	Boost  float64
}

// ContextualPattern boosts an occupation when all required tokens appear and
// none of the excluded tokens do. An empty Requires set always passes.
type ContextualPattern struct {
	Key      string
	Requires []string
	Excludes []string
	Boost    float64
}

// Occupation is the compiled scoring view of a definition: its labels
// pre-tokenized through the same normalizer the detector applies to input.
type Occupation struct {
	Key         string
	Weight      float64
	Order       int
	LabelTokens [][]string
}

// Store is the loaded lexicon. Immutable once constructed.
type Store struct {
	definitions  []Definition
	occupations  []Occupation
	orderByKey   map[string]int
	coOccurrence []CoOccurrencePattern
	contextual   []ContextualPattern
}

// New builds and validates a store from category blocks and pattern tables.
// Declaration order across categories is preserved; it is the documented
// tie-break for equal detection scores.
func New(categories []Category, coOccurrence []CoOccurrencePattern, contextual []ContextualPattern) (*Store, error) {
	s := &Store{
		orderByKey: make(map[string]int),
	}

	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category name is required")
		}
		for _, def := range cat.Definitions {
			if err := s.addDefinition(cat.Name, def); err != nil {
				return nil, err
			}
		}
	}

	for i, p := range coOccurrence {
		if _, ok := s.orderByKey[p.Key]; !ok {
			return nil, fmt.Errorf("co-occurrence pattern %d references unknown occupation %q", i, p.Key)
		}
		if len(p.Tokens) == 0 {
			return nil, fmt.Errorf("co-occurrence pattern %d for %q has no tokens", i, p.Key)
		}
		if p.Boost <= 0 {
			return nil, fmt.Errorf("co-occurrence pattern %d for %q must have a positive boost", i, p.Key)
		}
		s.coOccurrence = append(s.coOccurrence, CoOccurrencePattern{
			Key:    p.Key,
			Tokens: normalizeTokens(p.Tokens),
			Boost:  p.Boost,
		})
	}

	for i, p := range contextual {
		if _, ok := s.orderByKey[p.Key]; !ok {
			return nil, fmt.Errorf("contextual pattern %d references unknown occupation %q", i, p.Key)
		}
		if p.Boost <= 0 {
			return nil, fmt.Errorf("contextual pattern %d for %q must have a positive boost", i, p.Key)
		}
		s.contextual = append(s.contextual, ContextualPattern{
			Key:      p.Key,
			Requires: normalizeTokens(p.Requires),
			Excludes: normalizeTokens(p.Excludes),
			Boost:    p.Boost,
		})
	}

	return s, nil
}

// MustNew builds a store and panics on validation failure. Reserved for the
// compiled-in default tables, where a bad entry is a programming error.
func MustNew(categories []Category, coOccurrence []CoOccurrencePattern, contextual []ContextualPattern) *Store {
	s, err := New(categories, coOccurrence, contextual)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in lexicon: %v", err))
	}
	return s
}

func (s *Store) addDefinition(category string, def Definition) error {
	if def.Key == "" {
		return fmt.Errorf("category %q: occupation key is required", category)
	}
	if _, exists := s.orderByKey[def.Key]; exists {
		return fmt.Errorf("duplicate occupation key %q", def.Key)
	}
	if def.Weight <= 0 {
		return fmt.Errorf("occupation %q: weight must be positive, got %.2f", def.Key, def.Weight)
	}

	var labelTokens [][]string
	for _, lang := range labelLangs {
		for _, label := range def.Labels[lang] {
			tokens := textnorm.Tokenize(label)
			if len(tokens) == 0 {
				return fmt.Errorf("occupation %q: label %q normalizes to nothing", def.Key, label)
			}
			labelTokens = append(labelTokens, tokens)
		}
	}
	if len(labelTokens) == 0 {
		return fmt.Errorf("occupation %q: at least one label variant is required", def.Key)
	}

	order := len(s.definitions)
	s.orderByKey[def.Key] = order
	s.definitions = append(s.definitions, def)
	s.occupations = append(s.occupations, Occupation{
		Key:         def.Key,
		Weight:      def.Weight,
		Order:       order,
		LabelTokens: labelTokens,
	})

	return nil
}

func normalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if norm := textnorm.Normalize(tok); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}

// Occupations returns the compiled scoring views in declaration order.
func (s *Store) Occupations() []Occupation {
	return s.occupations
}

// Definitions returns the raw definitions in declaration order.
func (s *Store) Definitions() []Definition {
	return s.definitions
}

// Get returns the definition for a key.
func (s *Store) Get(key string) (Definition, bool) {
	idx, ok := s.orderByKey[key]
	if !ok {
		return Definition{}, false
	}
	return s.definitions[idx], true
}

// OrderIndex returns the declaration index for a key, or -1 when unknown.
func (s *Store) OrderIndex(key string) int {
	idx, ok := s.orderByKey[key]
	if !ok {
		return -1
	}
	return idx
}

// CoOccurrencePatterns returns the normalized co-occurrence table.
func (s *Store) CoOccurrencePatterns() []CoOccurrencePattern {
	return s.coOccurrence
}

// ContextualPatterns returns the normalized contextual table.
func (s *Store) ContextualPatterns() []ContextualPattern {
	return s.contextual
}

// Len returns the number of loaded occupations.
func (s *Store) Len() int {
	return len(s.definitions)
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the canonical built-in lexicon, loaded once per process.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = MustNew(defaultCategories(), defaultCoOccurrence(), defaultContextual())
	})
	return defaultStore
}
