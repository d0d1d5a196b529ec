package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nsellier/brigade/internal/common"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

// Config holds configuration for the enricher.
type Config struct {
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Enricher drives an enrichment Client: it builds prompts, retries transient
// failures, and folds every outcome into a tagged Result.
type Enricher struct {
	client    Client
	logger    *slog.Logger
	retryOpts service.RetryOptions
	timeout   time.Duration
}

// NewEnricher creates an enricher around the given provider client.
func NewEnricher(client Client, cfg Config, logger *slog.Logger) *Enricher {
	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = 500 * time.Millisecond
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Enricher{
		client:    client,
		logger:    logger,
		retryOpts: retryOpts,
		timeout:   timeout,
	}
}

// Suggest consults the fallback for a weakly classified need. It never
// returns an error: failures come back as Unavailable, unparseable content
// as Malformed.
func (e *Enricher) Suggest(ctx context.Context, text string, detected model.DetectedOccupations) Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := e.buildSuggestionPrompt(text, detected)

	var raw string
	err := common.WithRetry(ctx, func() error {
		response, genErr := e.client.Generate(ctx, prompt)
		if genErr != nil {
			e.logger.Warn("enrichment attempt failed", "error", genErr)
			return &common.RetryableError{Err: genErr, Retryable: true}
		}
		raw = response
		return nil
	}, e.retryOpts)

	if err != nil {
		e.logger.Warn("enrichment unavailable, using deterministic result",
			"error", fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err))
		return Unavailable()
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		e.logger.Warn("malformed enrichment response", "error", err)
		return Malformed()
	}

	e.logger.Debug("enrichment suggestion received",
		"primary", suggestion.PrimaryOccupation,
		"secondary", suggestion.SecondaryOccupation,
		"missing", suggestion.MissingFields)

	return SuggestionResult(suggestion)
}

// DraftListing asks the fallback to write a publishable listing for the
// need. The caller falls back to the template generator on error.
func (e *Enricher) DraftListing(ctx context.Context, need *model.ParsedNeed) (model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := e.buildDraftPrompt(need)

	var raw string
	err := common.WithRetry(ctx, func() error {
		response, genErr := e.client.Generate(ctx, prompt)
		if genErr != nil {
			e.logger.Warn("draft generation attempt failed", "error", genErr)
			return &common.RetryableError{Err: genErr, Retryable: true}
		}
		raw = response
		return nil
	}, e.retryOpts)

	if err != nil {
		return model.Draft{}, fmt.Errorf("draft generation failed: %w", err)
	}

	draft, err := parseDraft(raw)
	if err != nil {
		return model.Draft{}, fmt.Errorf("draft response unparseable: %w", err)
	}

	return draft, nil
}

func (e *Enricher) buildSuggestionPrompt(text string, detected model.DetectedOccupations) string {
	detectedLine := "none"
	if len(detected) > 0 {
		detectedLine = strings.Join(detected.Keys(), ", ")
	}

	return fmt.Sprintf(`You classify short staffing requests into occupation keys.

Request text:
%s

Deterministic detection so far: %s

Respond in this exact format (omit SECONDARY and MISSING when empty):
OCCUPATION: <single snake_case occupation key>
SECONDARY: <single snake_case occupation key>
MISSING: <comma-separated list among: occupation, location, duration>

Respond with those lines only, no extra commentary.`, text, detectedLine)
}

func (e *Enricher) buildDraftPrompt(need *model.ParsedNeed) string {
	var details strings.Builder
	fmt.Fprintf(&details, "Occupation: %s\n", need.PrimaryKey())
	if need.Context.HasLocation() {
		fmt.Fprintf(&details, "Location: %s\n", need.Context.Location)
	}
	if need.Context.Duration != "" {
		fmt.Fprintf(&details, "Duration: %s\n", need.Context.Duration)
	}
	if need.Context.Temporal != "" {
		fmt.Fprintf(&details, "When: %s\n", need.Context.Temporal)
	}
	fmt.Fprintf(&details, "Urgency: %s\n", need.Context.Urgency)

	return fmt.Sprintf(`Write a short job listing in the language of the original request.

Original request:
%s

Structured details:
%s
Respond in this exact format:
TITLE: <one line, no more than 70 characters>
DESCRIPTION: <two to four sentences>`, need.RawText, details.String())
}
