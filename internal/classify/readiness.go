package classify

import (
	"github.com/nsellier/brigade/internal/model"
)

// Readiness point allocation. Purely additive so the score stays trivially
// auditable: no negative points, no interaction terms.
const (
	occupationPoints    = 30
	locationPoints      = 20
	durationPoints      = 20
	urgencyPoints       = 10
	highConfidenceBonus = 20
	confidentThreshold  = 0.6
	veryConfidentCutoff = 0.8
)

// ComputeReadiness scores how complete a parsed need is for publication.
// The urgency point is awarded only when urgency was explicitly signaled;
// the low default never contributes.
func ComputeReadiness(occupations model.DetectedOccupations, context model.NeedContext) model.ReadinessAssessment {
	score := 0
	var missing []string

	top := occupations.Top()

	if top != nil && top.Confidence >= confidentThreshold {
		score += occupationPoints
	} else {
		missing = append(missing, "occupation")
	}

	if context.HasLocation() {
		score += locationPoints
	} else {
		missing = append(missing, "location")
	}

	if context.HasDuration() {
		score += durationPoints
	} else {
		missing = append(missing, "duration")
	}

	if context.UrgencyExplicit {
		score += urgencyPoints
	}

	if top != nil && top.Confidence >= veryConfidentCutoff {
		score += highConfidenceBonus
	}

	return model.ReadinessAssessment{
		Score:         score,
		Status:        model.StatusForScore(score),
		MissingFields: missing,
	}
}
