package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsellier/brigade/internal/common"
	"github.com/nsellier/brigade/internal/enrich"
	"github.com/nsellier/brigade/internal/match"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

type fakeEnricher struct {
	suggestResult enrich.Result
	draft         model.Draft
	draftErr      error
	suggestCalls  int
	draftCalls    int
}

func (f *fakeEnricher) Suggest(_ context.Context, _ string, _ model.DetectedOccupations) enrich.Result {
	f.suggestCalls++
	return f.suggestResult
}

func (f *fakeEnricher) DraftListing(_ context.Context, _ *model.ParsedNeed) (model.Draft, error) {
	f.draftCalls++
	if f.draftErr != nil {
		return model.Draft{}, f.draftErr
	}
	return f.draft, nil
}

type fakeMatcher struct {
	matches []model.MatchedTalent
	err     error
}

func (f *fakeMatcher) FindMatches(_ context.Context, _ *model.ParsedNeed, _ match.Options) ([]model.MatchedTalent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

type fakeUsage struct {
	records []service.UsageRecord
}

func (f *fakeUsage) Append(record service.UsageRecord) {
	f.records = append(f.records, record)
}

func availableMatch(name string) model.MatchedTalent {
	return model.MatchedTalent{
		Talent:       model.TalentProfile{Name: name, City: "Lille", Occupations: []string{"server"}},
		Score:        1.0,
		Availability: model.AvailabilityAvailable,
	}
}

const recruiterText = "Je cherche un serveur pour ce samedi soir à Lille"

func TestClassifyRejectsEmptyInput(t *testing.T) {
	e := New(Config{})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := e.Classify(context.Background(), text)
		require.Error(t, err, "text %q", text)
		assert.ErrorIs(t, err, common.ErrEmptyInput)

		var userErr *common.UserError
		assert.ErrorAs(t, err, &userErr)
	}
}

func TestClassifyDeterministicOnly(t *testing.T) {
	e := New(Config{})

	need, err := e.Classify(context.Background(), recruiterText)
	require.NoError(t, err)

	require.NotNil(t, need.Primary)
	assert.Equal(t, "server", need.Primary.Key)
	assert.False(t, need.UsedFallback)
}

func TestClassifyMergesEnrichmentSuggestion(t *testing.T) {
	enricher := &fakeEnricher{
		suggestResult: enrich.SuggestionResult(enrich.Suggestion{
			PrimaryOccupation:   "kitchen_porter",
			SecondaryOccupation: "commis",
		}),
	}
	e := New(Config{Enricher: enricher})

	// No occupation word: deterministic pass leaves the need weak
	need, err := e.Classify(context.Background(), "quelqu'un pour aider samedi soir à Lille")
	require.NoError(t, err)

	assert.Equal(t, 1, enricher.suggestCalls)
	require.NotNil(t, need.Primary)
	assert.Equal(t, "kitchen_porter", need.Primary.Key)
	assert.True(t, need.Occupations.Contains("commis"))
	assert.True(t, need.UsedFallback)
}

func TestClassifySkipsEnrichmentWhenConfident(t *testing.T) {
	enricher := &fakeEnricher{}
	e := New(Config{Enricher: enricher})

	_, err := e.Classify(context.Background(), recruiterText)
	require.NoError(t, err)

	assert.Equal(t, 0, enricher.suggestCalls)
}

func TestClassifyToleratesEnrichmentFailure(t *testing.T) {
	for _, result := range []enrich.Result{enrich.Unavailable(), enrich.Malformed()} {
		enricher := &fakeEnricher{suggestResult: result}
		e := New(Config{Enricher: enricher})

		need, err := e.Classify(context.Background(), "quelqu'un pour samedi")
		require.NoError(t, err)

		assert.Equal(t, 1, enricher.suggestCalls)
		assert.Nil(t, need.Primary, "deterministic result stands")
		assert.False(t, need.UsedFallback)
	}
}

func TestClassifyEmitsUsageRecord(t *testing.T) {
	usage := &fakeUsage{}
	e := New(Config{Usage: usage})

	need, err := e.Classify(context.Background(), recruiterText)
	require.NoError(t, err)

	require.Len(t, usage.records, 1)
	record := usage.records[0]
	assert.Equal(t, recruiterText, record.RawText)
	assert.Equal(t, "server", record.TopOccupation)
	assert.Equal(t, 1.0, record.Confidence)
	assert.Equal(t, "Lille", record.Location)
	assert.Equal(t, string(need.Readiness.Status), record.ReadinessStatus)
	assert.False(t, record.UsedFallback)
}

func TestProcessWithoutCollaborators(t *testing.T) {
	e := New(Config{})

	proposal, err := e.Process(context.Background(), recruiterText)
	require.NoError(t, err)

	require.NotNil(t, proposal.Need)
	assert.Empty(t, proposal.Matches)

	// Template draft is the fallback when no enricher is wired
	assert.Equal(t, model.DraftTemplate, proposal.Draft.Source)
	assert.Contains(t, proposal.Draft.Title, "Serveur")
	assert.Contains(t, proposal.Draft.Title, "Lille")

	// base 0.5 + strong detection 0.2 + location 0.1
	assert.InDelta(t, 0.8, proposal.Confidence, 0.0001)
	assert.Equal(t, model.FillWithinWeeks, proposal.TimeToFill)
}

func TestProcessConfidenceAggregation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		matches []model.MatchedTalent
		want    float64
	}{
		{
			name: "strong detection with location and many matches",
			text: recruiterText,
			matches: []model.MatchedTalent{
				availableMatch("a"), availableMatch("b"), availableMatch("c"),
			},
			want: 1.0,
		},
		{
			name:    "strong detection with location and one match",
			text:    recruiterText,
			matches: []model.MatchedTalent{availableMatch("a")},
			want:    0.9,
		},
		{
			name: "strong detection without location",
			text: "Je cherche un serveur pour samedi",
			want: 0.7,
		},
		{
			name: "no detection at all",
			text: "quelqu'un pour samedi",
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Config{Matcher: &fakeMatcher{matches: tt.matches}})

			proposal, err := e.Process(context.Background(), tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, proposal.Confidence, 0.0001)
		})
	}
}

func TestProcessTimeToFill(t *testing.T) {
	maybe := availableMatch("m")
	maybe.Availability = model.AvailabilityMaybe

	tests := []struct {
		name    string
		matches []model.MatchedTalent
		want    model.TimeToFill
	}{
		{
			name:    "three available now",
			matches: []model.MatchedTalent{availableMatch("a"), availableMatch("b"), availableMatch("c")},
			want:    model.FillWithinHours,
		},
		{
			name:    "some matches but few available",
			matches: []model.MatchedTalent{availableMatch("a"), maybe},
			want:    model.FillWithinDays,
		},
		{
			name: "no matches",
			want: model.FillWithinWeeks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Config{Matcher: &fakeMatcher{matches: tt.matches}})

			proposal, err := e.Process(context.Background(), recruiterText)
			require.NoError(t, err)
			assert.Equal(t, tt.want, proposal.TimeToFill)
		})
	}
}

func TestProcessDraftFallsBackToTemplate(t *testing.T) {
	enricher := &fakeEnricher{
		suggestResult: enrich.Unavailable(),
		draftErr:      errors.New("provider down"),
	}
	e := New(Config{Enricher: enricher})

	proposal, err := e.Process(context.Background(), recruiterText)
	require.NoError(t, err)

	assert.Equal(t, 1, enricher.draftCalls)
	assert.Equal(t, model.DraftTemplate, proposal.Draft.Source)
	assert.NotEmpty(t, proposal.Draft.Title)
	assert.NotEmpty(t, proposal.Draft.Description)
}

func TestProcessUsesEnrichedDraft(t *testing.T) {
	enricher := &fakeEnricher{
		suggestResult: enrich.Unavailable(),
		draft: model.Draft{
			Title:       "Serveur pour samedi soir",
			Description: "Un restaurant lillois cherche un serveur.",
			Source:      model.DraftEnriched,
		},
	}
	e := New(Config{Enricher: enricher})

	proposal, err := e.Process(context.Background(), recruiterText)
	require.NoError(t, err)

	assert.Equal(t, model.DraftEnriched, proposal.Draft.Source)
	assert.Equal(t, "Serveur pour samedi soir", proposal.Draft.Title)
}

func TestProcessToleratesMatcherFailure(t *testing.T) {
	e := New(Config{Matcher: &fakeMatcher{err: errors.New("pool down")}})

	proposal, err := e.Process(context.Background(), recruiterText)
	require.NoError(t, err)
	assert.Empty(t, proposal.Matches)
	assert.Equal(t, model.FillWithinWeeks, proposal.TimeToFill)
}

func TestProcessSuggestedActions(t *testing.T) {
	t.Run("missing fields drive the first actions", func(t *testing.T) {
		e := New(Config{})

		proposal, err := e.Process(context.Background(), "quelqu'un pour samedi")
		require.NoError(t, err)

		require.NotEmpty(t, proposal.SuggestedActions)
		assert.Contains(t, proposal.SuggestedActions[0], "describe the role")
	})

	t.Run("top candidate is named", func(t *testing.T) {
		e := New(Config{Matcher: &fakeMatcher{matches: []model.MatchedTalent{availableMatch("Karim")}}})

		proposal, err := e.Process(context.Background(), recruiterText)
		require.NoError(t, err)

		found := false
		for _, action := range proposal.SuggestedActions {
			if action == "contact Karim, the strongest candidate" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("no matches suggests broadening", func(t *testing.T) {
		e := New(Config{})

		proposal, err := e.Process(context.Background(), recruiterText)
		require.NoError(t, err)

		joined := ""
		for _, action := range proposal.SuggestedActions {
			joined += action + "\n"
		}
		assert.Contains(t, joined, "broaden the location")
		assert.Contains(t, joined, "review the draft listing")
	})
}
