package model

import (
	"time"
)

// ParsedNeed is the pipeline's principal output: one immutable structured
// record per submission. Corrections and enrichment merges produce a new
// ParsedNeed rather than mutating an existing one.
type ParsedNeed struct {
	ID          string
	RawText     string
	Occupations DetectedOccupations
	Primary     *DetectedOccupation
	Context     NeedContext
	Role        RoleSignal
	Direction   Direction
	Readiness   ReadinessAssessment

	// NeedsEnrichment marks records where the deterministic pass left too
	// little signal and an external fallback is worth consulting.
	NeedsEnrichment bool
	// UsedFallback records whether an enrichment suggestion was merged in.
	UsedFallback bool

	CreatedAt time.Time
}

// WithOccupations returns a copy of the need with a re-ranked occupation
// list, recomputed primary, and the fallback flag set. The receiver is left
// untouched.
func (n *ParsedNeed) WithOccupations(occupations DetectedOccupations) *ParsedNeed {
	merged := *n
	merged.Occupations = occupations
	merged.Primary = occupations.Top()
	merged.UsedFallback = true
	return &merged
}

// PrimaryKey returns the top occupation key, or empty when undetected.
func (n *ParsedNeed) PrimaryKey() string {
	if n.Primary == nil {
		return ""
	}
	return n.Primary.Key
}
