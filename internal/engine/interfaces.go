package engine

import (
	"context"

	"github.com/nsellier/brigade/internal/enrich"
	"github.com/nsellier/brigade/internal/match"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

// Enricher is the external fallback surface the engine consults for weakly
// classified needs and for listing drafts.
type Enricher interface {
	Suggest(ctx context.Context, text string, detected model.DetectedOccupations) enrich.Result
	DraftListing(ctx context.Context, need *model.ParsedNeed) (model.Draft, error)
}

// TalentMatcher ranks pool candidates against a parsed need.
type TalentMatcher interface {
	FindMatches(ctx context.Context, need *model.ParsedNeed, opts match.Options) ([]model.MatchedTalent, error)
}

// UsageBuffer accepts fire-and-forget usage records.
type UsageBuffer interface {
	Append(record service.UsageRecord)
}
