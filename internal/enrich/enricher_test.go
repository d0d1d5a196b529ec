package enrich

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsellier/brigade/internal/model"
)

func testEnricher(client Client) *Enricher {
	return NewEnricher(client, Config{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		Timeout:    time.Second,
	}, slog.Default())
}

func TestEnricherSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("valid response becomes a suggestion", func(t *testing.T) {
		client := NewMockClient("OCCUPATION: server\nSECONDARY: bartender\nMISSING: location")

		result := testEnricher(client).Suggest(ctx, "quelqu'un pour le bar", nil)

		require.Equal(t, KindSuggestion, result.Kind)
		assert.Equal(t, "server", result.Suggestion.PrimaryOccupation)
		assert.Equal(t, "bartender", result.Suggestion.SecondaryOccupation)
		assert.Equal(t, []string{"location"}, result.Suggestion.MissingFields)
		assert.Equal(t, 1, client.Calls())
	})

	t.Run("failure is retried then reported unavailable", func(t *testing.T) {
		client := NewFailingMockClient(errors.New("boom"))

		result := testEnricher(client).Suggest(ctx, "texte", nil)

		assert.Equal(t, KindUnavailable, result.Kind)
		assert.Equal(t, 2, client.Calls(), "one retry after the first failure")
	})

	t.Run("unparseable response is malformed, not retried", func(t *testing.T) {
		client := NewMockClient("I could not classify this request, sorry.")

		result := testEnricher(client).Suggest(ctx, "texte", nil)

		assert.Equal(t, KindMalformed, result.Kind)
		assert.Equal(t, 1, client.Calls())
	})

	t.Run("detected occupations appear in the prompt", func(t *testing.T) {
		client := NewMockClient("OCCUPATION: cook")
		detected := model.DetectedOccupations{
			{Key: "cook", Score: 0.4, Confidence: 1.0},
			{Key: "commis", Score: 0.2, Confidence: 0.5},
		}

		testEnricher(client).Suggest(ctx, "aide en cuisine", detected)

		prompts := client.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], "aide en cuisine")
		assert.Contains(t, prompts[0], "cook, commis")
	})

	t.Run("no detection is stated in the prompt", func(t *testing.T) {
		client := NewMockClient("OCCUPATION: cook")

		testEnricher(client).Suggest(ctx, "texte", nil)

		prompts := client.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], "none")
	})
}

func TestEnricherDraftListing(t *testing.T) {
	ctx := context.Background()

	need := &model.ParsedNeed{
		RawText: "Je cherche un serveur pour ce samedi soir à Lille",
		Occupations: model.DetectedOccupations{
			{Key: "server", Score: 0.9, Confidence: 1.0},
		},
		Context: model.NeedContext{
			Urgency:  model.UrgencyLow,
			Location: "Lille",
			Temporal: "soir",
		},
	}
	need.Primary = need.Occupations.Top()

	t.Run("valid response becomes an enriched draft", func(t *testing.T) {
		client := NewMockClient("TITLE: Serveur samedi soir\nDESCRIPTION: Restaurant à Lille cherche un serveur.")

		draft, err := testEnricher(client).DraftListing(ctx, need)

		require.NoError(t, err)
		assert.Equal(t, "Serveur samedi soir", draft.Title)
		assert.Equal(t, model.DraftEnriched, draft.Source)

		prompts := client.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], "Occupation: server")
		assert.Contains(t, prompts[0], "Location: Lille")
	})

	t.Run("failure surfaces as an error for the caller to fall back", func(t *testing.T) {
		client := NewFailingMockClient(errors.New("boom"))

		_, err := testEnricher(client).DraftListing(ctx, need)

		require.Error(t, err)
		assert.Equal(t, 2, client.Calls())
	})

	t.Run("unparseable response is an error", func(t *testing.T) {
		client := NewMockClient("here you go")

		_, err := testEnricher(client).DraftListing(ctx, need)

		require.Error(t, err)
	})
}
