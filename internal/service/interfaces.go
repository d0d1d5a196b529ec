// Package service defines the interfaces between the pipeline and its
// external collaborators: the talent pool and the usage log sink.
package service

import (
	"context"
	"time"

	"github.com/nsellier/brigade/internal/model"
)

// TalentFilter defines the hard-filter criteria pushed into the pool query.
// Zero-valued fields are not applied.
type TalentFilter struct {
	OccupationKey string
	City          string
	OnlyActive    bool
	AvailableBy   *time.Time
	Limit         int
}

// TalentPool is the queryable store of worker profiles. Query results are
// ordered most-recently-created first; that order is the documented tie-break
// for equal match scores.
type TalentPool interface {
	QueryTalents(ctx context.Context, filter TalentFilter) ([]model.TalentProfile, error)
	SaveTalent(ctx context.Context, talent *model.TalentProfile) error
	GetTalent(ctx context.Context, id string) (*model.TalentProfile, error)
	ListTalents(ctx context.Context) ([]model.TalentProfile, error)
}

// UsageRecord is one classification outcome emitted to the usage log.
type UsageRecord struct {
	RawText              string
	TopOccupation        string
	Confidence           float64
	SecondaryOccupations []string
	ReadinessScore       int
	ReadinessStatus      string
	MissingFields        []string
	Location             string
	Urgency              string
	Duration             string
	Temporal             string
	UsedFallback         bool
	CreatedAt            time.Time
}

// UsageSink accepts batches of usage records. Implementations must tolerate
// partial and duplicate batches; deduplication is the sink's concern.
type UsageSink interface {
	WriteUsage(ctx context.Context, records []UsageRecord) error
}

// UsageStats aggregates usage log entries for inspection tooling.
type UsageStats struct {
	Total         int
	ByOccupation  map[string]int
	FallbackCount int
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
