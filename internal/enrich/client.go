// Package enrich defines the contract for the external enrichment fallback
// and a Gemini-backed implementation. The pipeline never depends on the
// fallback succeeding: every outcome is an explicit variant the caller must
// handle, and failure always degrades to the deterministic result.
package enrich

import (
	"context"
)

// Client is the minimal surface an enrichment provider must offer.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Suggestion is a structured enrichment hint for a weakly classified need.
type Suggestion struct {
	PrimaryOccupation   string
	SecondaryOccupation string
	MissingFields       []string
}

// ResultKind tags the enrichment outcome variants.
type ResultKind string

// Enrichment outcomes. Unavailable covers failures and timeouts; Malformed
// covers responses that could not be parsed. Both degrade to the
// deterministic classification.
const (
	KindSuggestion  ResultKind = "suggestion"
	KindUnavailable ResultKind = "unavailable"
	KindMalformed   ResultKind = "malformed"
)

// Result is the tagged outcome of one enrichment call. Suggestion is only
// meaningful when Kind is KindSuggestion.
type Result struct {
	Kind       ResultKind
	Suggestion Suggestion
}

// SuggestionResult wraps a parsed suggestion.
func SuggestionResult(s Suggestion) Result {
	return Result{Kind: KindSuggestion, Suggestion: s}
}

// Unavailable marks a failed or timed-out enrichment call.
func Unavailable() Result {
	return Result{Kind: KindUnavailable}
}

// Malformed marks an unparseable enrichment response.
func Malformed() Result {
	return Result{Kind: KindMalformed}
}
