package model

import (
	"time"
)

// TalentProfile describes one worker in the external talent pool. The
// pipeline consumes these records; it never owns or mutates them.
type TalentProfile struct {
	ID            string   `validate:"required"`
	Name          string   `validate:"required"`
	Occupations   []string `validate:"required,min=1,dive,required"`
	City          string   `validate:"required"`
	Active        bool
	AvailableFrom *time.Time
	Rating        *float64 `validate:"omitempty,min=0,max=5"`
	HourlyMin     *float64 `validate:"omitempty,min=0"`
	HourlyMax     *float64 `validate:"omitempty,min=0"`
	CreatedAt     time.Time
}

// HasOccupation reports whether the profile holds the given occupation key.
func (t *TalentProfile) HasOccupation(key string) bool {
	for _, occ := range t.Occupations {
		if occ == key {
			return true
		}
	}
	return false
}

// AvailabilityStatus classifies how soon a candidate can start.
type AvailabilityStatus string

// Availability classifications.
const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityMaybe       AvailabilityStatus = "maybe"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// ClassifyAvailability derives the availability status of a profile relative
// to the given reference time.
func (t *TalentProfile) ClassifyAvailability(now time.Time) AvailabilityStatus {
	if !t.Active {
		return AvailabilityUnavailable
	}
	if t.AvailableFrom == nil {
		return AvailabilityMaybe
	}
	if !t.AvailableFrom.After(now) {
		return AvailabilityAvailable
	}
	if t.AvailableFrom.Sub(now) <= 24*time.Hour {
		return AvailabilityMaybe
	}
	return AvailabilityUnavailable
}

// MatchedTalent pairs a profile with its match score and explanations.
// Computed fresh per matching request, never persisted.
type MatchedTalent struct {
	Talent       TalentProfile
	Score        float64
	Availability AvailabilityStatus
	Reasons      []string
}
