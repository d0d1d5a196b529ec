package model

// Urgency is how soon the need has to be filled.
type Urgency string

// Urgency tiers. Low is the default when nothing is signaled.
const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// DurationBucket is a coarse engagement length. The zero value means the
// text gave no duration signal at all.
type DurationBucket string

// Duration buckets.
const (
	DurationOneDay DurationBucket = "one_day"
	DurationShort  DurationBucket = "short"
	DurationLong   DurationBucket = "long"
)

// NeedContext carries the situational attributes extracted from the text.
// Every field except Urgency is optional; empty string means not detected.
type NeedContext struct {
	Urgency  Urgency
	Duration DurationBucket
	Location string
	Temporal string

	// UrgencyExplicit is true only when the urgency tier came from an actual
	// token hit rather than the low default. Readiness scoring awards its
	// urgency point on this flag, not on the tier value.
	UrgencyExplicit bool
}

// HasLocation reports whether a location was detected.
func (c NeedContext) HasLocation() bool {
	return c.Location != ""
}

// HasDuration reports whether a duration or temporal hint was detected.
func (c NeedContext) HasDuration() bool {
	return c.Duration != "" || c.Temporal != ""
}
