package model

// ReadinessStatus is the publication tier derived from the readiness score.
type ReadinessStatus string

// Readiness status tiers.
const (
	StatusIncomplete  ReadinessStatus = "incomplete"
	StatusAlmostReady ReadinessStatus = "almost_ready"
	StatusReady       ReadinessStatus = "ready"
)

// Readiness status thresholds.
const (
	readyThreshold       = 80
	almostReadyThreshold = 50
)

// ReadinessAssessment is the 0-100 completeness score of a parsed need.
type ReadinessAssessment struct {
	Score         int
	Status        ReadinessStatus
	MissingFields []string
}

// StatusForScore maps a readiness score to its status tier.
func StatusForScore(score int) ReadinessStatus {
	switch {
	case score >= readyThreshold:
		return StatusReady
	case score >= almostReadyThreshold:
		return StatusAlmostReady
	default:
		return StatusIncomplete
	}
}
