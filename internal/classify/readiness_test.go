package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsellier/brigade/internal/model"
)

func TestComputeReadiness(t *testing.T) {
	confident := model.DetectedOccupations{{Key: "server", Score: 1.0, Confidence: 1.0}}
	borderline := model.DetectedOccupations{{Key: "server", Score: 0.6, Confidence: 0.6}}
	weak := model.DetectedOccupations{{Key: "server", Score: 0.4, Confidence: 0.4}}

	fullContext := model.NeedContext{
		Urgency:         model.UrgencyHigh,
		UrgencyExplicit: true,
		Duration:        model.DurationOneDay,
		Location:        "Lille",
	}

	tests := []struct {
		name        string
		occupations model.DetectedOccupations
		context     model.NeedContext
		wantScore   int
		wantStatus  model.ReadinessStatus
		wantMissing []string
	}{
		{
			name:        "everything present",
			occupations: confident,
			context:     fullContext,
			wantScore:   100,
			wantStatus:  model.StatusReady,
		},
		{
			name:        "no explicit urgency still ready",
			occupations: confident,
			context:     model.NeedContext{Urgency: model.UrgencyLow, Location: "Lille", Temporal: "soir"},
			wantScore:   90,
			wantStatus:  model.StatusReady,
		},
		{
			name:        "temporal hint counts as duration",
			occupations: confident,
			context:     model.NeedContext{Urgency: model.UrgencyLow, Temporal: "soir"},
			wantScore:   70,
			wantStatus:  model.StatusAlmostReady,
			wantMissing: []string{"location"},
		},
		{
			name:        "confident occupation alone",
			occupations: confident,
			context:     model.NeedContext{Urgency: model.UrgencyLow},
			wantScore:   50,
			wantStatus:  model.StatusAlmostReady,
			wantMissing: []string{"location", "duration"},
		},
		{
			name:        "borderline confidence gets points but no bonus",
			occupations: borderline,
			context:     model.NeedContext{Urgency: model.UrgencyLow},
			wantScore:   30,
			wantStatus:  model.StatusIncomplete,
			wantMissing: []string{"location", "duration"},
		},
		{
			name:        "weak confidence counts as missing occupation",
			occupations: weak,
			context:     model.NeedContext{Urgency: model.UrgencyLow, Location: "Lille", Duration: model.DurationShort},
			wantScore:   40,
			wantStatus:  model.StatusIncomplete,
			wantMissing: []string{"occupation"},
		},
		{
			name:        "nothing at all",
			occupations: nil,
			context:     model.NeedContext{Urgency: model.UrgencyLow},
			wantScore:   0,
			wantStatus:  model.StatusIncomplete,
			wantMissing: []string{"occupation", "location", "duration"},
		},
		{
			name:        "default urgency never scores",
			occupations: nil,
			context:     model.NeedContext{Urgency: model.UrgencyLow, UrgencyExplicit: false, Location: "Paris", Duration: model.DurationLong},
			wantScore:   40,
			wantStatus:  model.StatusIncomplete,
			wantMissing: []string{"occupation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReadiness(tt.occupations, tt.context)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMissing, got.MissingFields)
		})
	}
}

func TestComputeReadinessMonotonicity(t *testing.T) {
	// Adding information never lowers the score.
	occupations := model.DetectedOccupations{{Key: "server", Score: 1.0, Confidence: 1.0}}

	base := ComputeReadiness(occupations, model.NeedContext{Urgency: model.UrgencyLow})
	withLocation := ComputeReadiness(occupations, model.NeedContext{Urgency: model.UrgencyLow, Location: "Lille"})
	withEverything := ComputeReadiness(occupations, model.NeedContext{
		Urgency: model.UrgencyHigh, UrgencyExplicit: true, Location: "Lille", Duration: model.DurationOneDay,
	})

	assert.Greater(t, withLocation.Score, base.Score)
	assert.Greater(t, withEverything.Score, withLocation.Score)
}
