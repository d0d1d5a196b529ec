// Package match ranks talent pool candidates against a parsed need.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

// ScoringMode selects how surviving candidates are scored.
type ScoringMode string

// Scoring modes. Baseline gives every candidate that passed the hard filter
// a score of 1.0; Weighted decomposes the score into criterion sub-scores.
const (
	ScoringBaseline ScoringMode = "baseline"
	ScoringWeighted ScoringMode = "weighted"
)

// Weighted scoring coefficients. They sum to 1.0 so the total stays in [0,1].
const (
	locationWeight     = 0.4
	availabilityWeight = 0.3
	skillsWeight       = 0.2
	reputationWeight   = 0.1
)

// defaultReputation is the neutral reputation sub-score for unrated profiles.
const defaultReputation = 0.5

// highRatingThreshold marks a profile worth calling out in match reasons.
const highRatingThreshold = 4.5

// Options controls one matching request.
type Options struct {
	Limit           int     `validate:"min=0,max=100"`
	MinScore        float64 `validate:"min=0,max=1"`
	IncludeInactive bool
	Mode            ScoringMode `validate:"omitempty,oneof=baseline weighted"`
}

const defaultLimit = 10

// Matcher runs hard filtering against the talent pool and scores survivors.
type Matcher struct {
	pool     service.TalentPool
	validate *validator.Validate
	now      func() time.Time
}

// New creates a matcher over the given pool.
func New(pool service.TalentPool) *Matcher {
	return &Matcher{
		pool:     pool,
		validate: validator.New(),
		now:      time.Now,
	}
}

// FindMatches returns ranked candidates for the need. A pool query failure
// is recovered locally: the caller sees an empty result, never an error from
// the pool. Only invalid options produce an error.
func (m *Matcher) FindMatches(ctx context.Context, need *model.ParsedNeed, opts Options) ([]model.MatchedTalent, error) {
	if err := m.validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid match options: %w", err)
	}
	if opts.Limit == 0 {
		opts.Limit = defaultLimit
	}
	if opts.Mode == "" {
		opts.Mode = ScoringBaseline
	}

	// Without a detected occupation there is nothing to filter on.
	if need == nil || need.Primary == nil {
		return nil, nil
	}

	now := m.now()
	filter := service.TalentFilter{
		OccupationKey: need.Primary.Key,
		City:          need.Context.Location,
		OnlyActive:    !opts.IncludeInactive,
		AvailableBy:   targetDate(need.Context, now),
	}

	candidates, err := m.pool.QueryTalents(ctx, filter)
	if err != nil {
		slog.Warn("talent pool query failed, returning no matches",
			"occupation", need.Primary.Key,
			"error", err)
		return nil, nil
	}

	matches := make([]model.MatchedTalent, 0, len(candidates))
	for _, candidate := range candidates {
		availability := candidate.ClassifyAvailability(now)

		matched := model.MatchedTalent{
			Talent:       candidate,
			Availability: availability,
			Reasons:      matchReasons(need, &candidate, availability),
		}

		switch opts.Mode {
		case ScoringWeighted:
			matched.Score = weightedScore(need, &candidate, availability)
		default:
			// The hard filter already enforced equality on the primary
			// criteria, so every survivor scores full marks.
			matched.Score = 1.0
		}

		if matched.Score < opts.MinScore {
			continue
		}

		matches = append(matches, matched)
	}

	// Stable keeps the pool's query order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	return matches, nil
}

// targetDate derives the implied start date from the need context. High
// urgency and single-day engagements imply the candidate must be available
// now; anything else states no availability constraint.
func targetDate(context model.NeedContext, now time.Time) *time.Time {
	if context.Urgency == model.UrgencyHigh || context.Duration == model.DurationOneDay {
		return &now
	}
	return nil
}

// weightedScore decomposes the match into criterion sub-scores. Location and
// skills were enforced by the hard filter when requested, so they score full
// weight on a match and a neutral half weight when the need stated no
// requirement.
func weightedScore(need *model.ParsedNeed, candidate *model.TalentProfile, availability model.AvailabilityStatus) float64 {
	var score float64

	if need.Context.HasLocation() {
		score += locationWeight
	} else {
		score += locationWeight * 0.5
	}

	switch availability {
	case model.AvailabilityAvailable:
		score += availabilityWeight
	case model.AvailabilityMaybe:
		score += availabilityWeight * 0.5
	}

	if candidate.HasOccupation(need.Primary.Key) {
		score += skillsWeight
	}

	reputation := defaultReputation
	if candidate.Rating != nil {
		reputation = *candidate.Rating / 5
	}
	score += reputationWeight * reputation

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// matchReasons re-derives which criteria actually matched, independently of
// the scoring mode, so explanations stay identical between modes.
func matchReasons(need *model.ParsedNeed, candidate *model.TalentProfile, availability model.AvailabilityStatus) []string {
	var reasons []string

	if candidate.HasOccupation(need.Primary.Key) {
		reasons = append(reasons, fmt.Sprintf("holds the %s occupation", need.Primary.Key))
	}

	if need.Context.HasLocation() {
		reasons = append(reasons, fmt.Sprintf("based in %s", candidate.City))
	}

	if availability == model.AvailabilityAvailable {
		reasons = append(reasons, "available immediately")
	}

	if candidate.Rating != nil && *candidate.Rating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("highly rated (%.1f/5)", *candidate.Rating))
	}

	return reasons
}
