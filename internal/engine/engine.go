// Package engine orchestrates the full pipeline: classification, optional
// enrichment, draft generation, talent matching, and the final staffing
// proposal. Only the classification stage is load-bearing; every downstream
// stage degrades gracefully when its collaborator is missing or failing.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nsellier/brigade/internal/classify"
	"github.com/nsellier/brigade/internal/common"
	"github.com/nsellier/brigade/internal/enrich"
	"github.com/nsellier/brigade/internal/lexicon"
	"github.com/nsellier/brigade/internal/match"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

// Proposal confidence aggregation. The base says "we produced something";
// each bonus rewards independent evidence that the proposal is actionable.
const (
	baseConfidence          = 0.5
	strongDetectionBonus    = 0.2
	locationBonus           = 0.1
	manyMatchesBonus        = 0.2
	someMatchesBonus        = 0.1
	strongDetectionCutoff   = 0.7
	manyMatchesThreshold    = 3
	availableNowForFastFill = 3
)

// Config wires the engine's collaborators. Lexicon defaults to the built-in
// catalog; Enricher, Matcher, and Usage may each be nil, disabling that stage.
type Config struct {
	Lexicon      *lexicon.Store
	Enricher     Enricher
	Matcher      TalentMatcher
	Usage        UsageBuffer
	Logger       *slog.Logger
	MatchOptions match.Options
}

// Engine is the pipeline orchestrator.
type Engine struct {
	assembler *classify.Assembler
	lexicon   *lexicon.Store
	enricher  Enricher
	matcher   TalentMatcher
	usage     UsageBuffer
	logger    *slog.Logger
	matchOpts match.Options
}

// New creates an engine from the given configuration.
func New(cfg Config) *Engine {
	store := cfg.Lexicon
	if store == nil {
		store = lexicon.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		assembler: classify.NewAssembler(store),
		lexicon:   store,
		enricher:  cfg.Enricher,
		matcher:   cfg.Matcher,
		usage:     cfg.Usage,
		logger:    logger,
		matchOpts: cfg.MatchOptions,
	}
}

// Classify runs classification and, when warranted, the enrichment fallback
// over one submission. The outcome is emitted to the usage log before return.
func (e *Engine) Classify(ctx context.Context, text string) (*model.ParsedNeed, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &common.UserError{
			Err:         common.ErrEmptyInput,
			UserMessage: "Please describe the need in a few words.",
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classification cancelled: %w", err)
	}

	need := e.assembler.Assemble(text)

	e.logger.Debug("need classified",
		"need_id", need.ID,
		"occupation", need.PrimaryKey(),
		"readiness", need.Readiness.Status,
		"needs_enrichment", need.NeedsEnrichment)

	if need.NeedsEnrichment && e.enricher != nil {
		result := e.enricher.Suggest(ctx, text, need.Occupations)
		if result.Kind == enrich.KindSuggestion && result.Suggestion.PrimaryOccupation != "" {
			need = e.assembler.MergeSuggestion(need,
				result.Suggestion.PrimaryOccupation,
				result.Suggestion.SecondaryOccupation)
			e.logger.Info("enrichment suggestion merged",
				"need_id", need.ID,
				"occupation", need.PrimaryKey())
		}
	}

	e.recordUsage(need)

	return need, nil
}

// Process runs the full pipeline: classification, a listing draft, talent
// matching, and the aggregated proposal. The parsed need is the only part
// that can fail; a missing or failing enricher or matcher yields a proposal
// with a template draft and no matches, never an error.
func (e *Engine) Process(ctx context.Context, text string) (*model.Proposal, error) {
	need, err := e.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	draft := e.draft(ctx, need)
	matches := e.findMatches(ctx, need)

	proposal := &model.Proposal{
		Need:             need,
		Draft:            draft,
		Matches:          matches,
		Confidence:       proposalConfidence(need, matches),
		TimeToFill:       estimateTimeToFill(matches),
		SuggestedActions: suggestActions(need, matches),
	}

	e.logger.Info("proposal assembled",
		"need_id", need.ID,
		"occupation", need.PrimaryKey(),
		"matches", len(matches),
		"confidence", proposal.Confidence,
		"time_to_fill", proposal.TimeToFill)

	return proposal, nil
}

func (e *Engine) draft(ctx context.Context, need *model.ParsedNeed) model.Draft {
	if e.enricher != nil {
		draft, err := e.enricher.DraftListing(ctx, need)
		if err == nil {
			return draft
		}
		e.logger.Warn("enriched draft failed, using template",
			"need_id", need.ID,
			"error", err)
	}
	return templateDraft(e.lexicon, need)
}

func (e *Engine) findMatches(ctx context.Context, need *model.ParsedNeed) []model.MatchedTalent {
	if e.matcher == nil {
		return nil
	}

	matches, err := e.matcher.FindMatches(ctx, need, e.matchOpts)
	if err != nil {
		e.logger.Warn("matching failed, proposal carries no candidates",
			"need_id", need.ID,
			"error", err)
		return nil
	}
	return matches
}

func (e *Engine) recordUsage(need *model.ParsedNeed) {
	if e.usage == nil {
		return
	}

	record := service.UsageRecord{
		RawText:         need.RawText,
		TopOccupation:   need.PrimaryKey(),
		ReadinessScore:  need.Readiness.Score,
		ReadinessStatus: string(need.Readiness.Status),
		MissingFields:   need.Readiness.MissingFields,
		Location:        need.Context.Location,
		Urgency:         string(need.Context.Urgency),
		Duration:        string(need.Context.Duration),
		Temporal:        need.Context.Temporal,
		UsedFallback:    need.UsedFallback,
		CreatedAt:       need.CreatedAt,
	}
	if need.Primary != nil {
		record.Confidence = need.Primary.Confidence
	}
	for i, occ := range need.Occupations {
		if i == 0 {
			continue
		}
		record.SecondaryOccupations = append(record.SecondaryOccupations, occ.Key)
	}

	e.usage.Append(record)
}

// proposalConfidence aggregates independent evidence into one score. It is
// deliberately coarse: the value steers presentation, not filtering.
func proposalConfidence(need *model.ParsedNeed, matches []model.MatchedTalent) float64 {
	confidence := baseConfidence

	if need.Primary != nil && need.Primary.Confidence > strongDetectionCutoff {
		confidence += strongDetectionBonus
	}
	if need.Context.HasLocation() {
		confidence += locationBonus
	}

	switch {
	case len(matches) >= manyMatchesThreshold:
		confidence += manyMatchesBonus
	case len(matches) >= 1:
		confidence += someMatchesBonus
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// estimateTimeToFill buckets the staffing horizon from the candidate slate.
func estimateTimeToFill(matches []model.MatchedTalent) model.TimeToFill {
	availableNow := 0
	for _, m := range matches {
		if m.Availability == model.AvailabilityAvailable {
			availableNow++
		}
	}

	switch {
	case availableNow >= availableNowForFastFill:
		return model.FillWithinHours
	case len(matches) >= 1:
		return model.FillWithinDays
	default:
		return model.FillWithinWeeks
	}
}

// suggestActions derives the next steps a requester should take, ordered
// from most to least impactful.
func suggestActions(need *model.ParsedNeed, matches []model.MatchedTalent) []string {
	var actions []string

	for _, field := range need.Readiness.MissingFields {
		switch field {
		case "occupation":
			actions = append(actions, "describe the role needed so candidates can be matched")
		case "location":
			actions = append(actions, "add a city to narrow the candidate search")
		case "duration":
			actions = append(actions, "specify how long the engagement lasts")
		}
	}

	switch {
	case len(matches) == 0 && need.Primary != nil:
		actions = append(actions, "no candidates matched; broaden the location or relax the timing")
	case len(matches) > 0:
		actions = append(actions, fmt.Sprintf("contact %s, the strongest candidate", matches[0].Talent.Name))
	}

	actions = append(actions, "review the draft listing before publishing")

	return actions
}
