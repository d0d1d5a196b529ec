// Package classify implements the deterministic need-classification stages:
// occupation detection, role direction, context extraction, readiness
// scoring, and assembly of the final parsed need. Every stage is a pure
// function over immutable inputs and is safe to call concurrently.
package classify

import (
	"sort"

	"github.com/nsellier/brigade/internal/lexicon"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/textnorm"
)

// Detector scores candidate occupations against an injected lexicon.
type Detector struct {
	lexicon *lexicon.Store
}

// NewDetector creates a detector backed by the given lexicon store.
func NewDetector(store *lexicon.Store) *Detector {
	return &Detector{lexicon: store}
}

// Detect returns the occupations the text points at, sorted by descending
// score with confidence normalized against the run's maximum. Equal scores
// keep lexicon declaration order. No lexicon hit yields an empty list; the
// caller treats that as "undetected", not an error.
func (d *Detector) Detect(text string) model.DetectedOccupations {
	tokens := textnorm.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	set := textnorm.TokenSet(tokens)

	scores := make(map[string]float64)

	// Label matching: each matching label variant adds the occupation's
	// weight again. Matching is unordered set containment of the label's
	// tokens, never substring.
	for _, occ := range d.lexicon.Occupations() {
		for _, labelTokens := range occ.LabelTokens {
			if textnorm.ContainsAll(set, labelTokens) {
				scores[occ.Key] += occ.Weight
			}
		}
	}

	for _, p := range d.lexicon.CoOccurrencePatterns() {
		if textnorm.ContainsAll(set, p.Tokens) {
			scores[p.Key] += p.Boost
		}
	}

	for _, p := range d.lexicon.ContextualPatterns() {
		if !textnorm.ContainsAll(set, p.Requires) {
			continue
		}
		if textnorm.ContainsAny(set, p.Excludes) {
			continue
		}
		scores[p.Key] += p.Boost
	}

	if len(scores) == 0 {
		return nil
	}

	var maxScore float64
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	detections := make(model.DetectedOccupations, 0, len(scores))
	for key, score := range scores {
		confidence := 0.0
		if maxScore > 0 {
			confidence = score / maxScore
		}
		detections = append(detections, model.DetectedOccupation{
			Key:        key,
			Score:      score,
			Confidence: confidence,
		})
	}

	sort.Slice(detections, func(i, j int) bool {
		if detections[i].Score != detections[j].Score {
			return detections[i].Score > detections[j].Score
		}
		return d.lexicon.OrderIndex(detections[i].Key) < d.lexicon.OrderIndex(detections[j].Key)
	})

	return detections
}
