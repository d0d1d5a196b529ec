package model

// DraftSource records which generator produced a listing draft.
type DraftSource string

// Draft sources.
const (
	DraftTemplate DraftSource = "template"
	DraftEnriched DraftSource = "enriched"
)

// Draft is a publishable listing rendered from a parsed need.
type Draft struct {
	Title       string
	Description string
	Source      DraftSource
}

// TimeToFill buckets an estimate of how fast the need can be staffed.
type TimeToFill string

// Time-to-fill buckets.
const (
	FillWithinHours TimeToFill = "within_hours"
	FillWithinDays  TimeToFill = "within_days"
	FillWithinWeeks TimeToFill = "within_weeks"
)

// Proposal is the orchestrator's final artifact: the parsed need plus a
// draft listing, ranked candidates, and an aggregate confidence.
type Proposal struct {
	Need             *ParsedNeed
	Draft            Draft
	Matches          []MatchedTalent
	Confidence       float64
	TimeToFill       TimeToFill
	SuggestedActions []string
}
