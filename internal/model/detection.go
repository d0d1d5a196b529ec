// Package model defines the core data structures for the brigade pipeline.
package model

import (
	"fmt"
)

// DetectedOccupation represents how strongly the input text points at one occupation.
type DetectedOccupation struct {
	Key        string
	Score      float64
	Confidence float64
}

// Validate ensures the DetectedOccupation has valid data.
func (d *DetectedOccupation) Validate() error {
	if d.Key == "" {
		return fmt.Errorf("occupation key is required")
	}

	if d.Score < 0 {
		return fmt.Errorf("score must be non-negative, got %.2f", d.Score)
	}

	if d.Confidence < 0.0 || d.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", d.Confidence)
	}

	return nil
}

// DetectedOccupations is a score-ordered list of detection results.
// The detector guarantees descending score order and normalized confidence:
// the top entry always has confidence 1.0 when the list is non-empty.
type DetectedOccupations []DetectedOccupation

// Top returns the highest-scoring occupation, or nil if empty.
func (d DetectedOccupations) Top() *DetectedOccupation {
	if len(d) == 0 {
		return nil
	}
	return &d[0]
}

// Keys returns the occupation keys in ranked order.
func (d DetectedOccupations) Keys() []string {
	keys := make([]string, len(d))
	for i, occ := range d {
		keys[i] = occ.Key
	}
	return keys
}

// Contains reports whether the given occupation key appears in the list.
func (d DetectedOccupations) Contains(key string) bool {
	for _, occ := range d {
		if occ.Key == key {
			return true
		}
	}
	return false
}

// Promote returns a new list with the given key moved to the front. If the key
// is absent it is prepended with the given confidence; scores of existing
// entries are preserved. Used when merging an external enrichment suggestion.
func (d DetectedOccupations) Promote(key string, confidence float64) DetectedOccupations {
	result := make(DetectedOccupations, 0, len(d)+1)

	if idx := d.indexOf(key); idx >= 0 {
		promoted := d[idx]
		promoted.Confidence = 1.0
		result = append(result, promoted)
		for i, occ := range d {
			if i != idx {
				result = append(result, occ)
			}
		}
		return result
	}

	result = append(result, DetectedOccupation{Key: key, Confidence: confidence})
	result = append(result, d...)
	return result
}

func (d DetectedOccupations) indexOf(key string) int {
	for i, occ := range d {
		if occ.Key == key {
			return i
		}
	}
	return -1
}

// Validate ensures all entries are valid, unique, and ordered by descending score.
func (d DetectedOccupations) Validate() error {
	seen := make(map[string]bool)

	for i, occ := range d {
		if err := occ.Validate(); err != nil {
			return fmt.Errorf("invalid detection at index %d: %w", i, err)
		}

		if seen[occ.Key] {
			return fmt.Errorf("duplicate occupation %q in detections", occ.Key)
		}
		seen[occ.Key] = true

		if i > 0 && d[i].Score > d[i-1].Score {
			return fmt.Errorf("detections not sorted by descending score at index %d", i)
		}
	}

	return nil
}
