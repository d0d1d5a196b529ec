package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsellier/brigade/internal/common"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func timePtr(tm time.Time) *time.Time { return &tm }
func floatPtr(f float64) *float64     { return &f }

func TestMigrateIsIdempotent(t *testing.T) {
	store := setupTestStorage(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSaveTalentFillsDefaults(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	talent := &model.TalentProfile{
		Name:        "Karim Benali",
		Occupations: []string{"server", "bartender"},
		City:        "Lille",
		Active:      true,
	}

	require.NoError(t, store.SaveTalent(ctx, talent))

	assert.NotEmpty(t, talent.ID)
	assert.False(t, talent.CreatedAt.IsZero())
}

func TestSaveTalentValidation(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		talent *model.TalentProfile
	}{
		{name: "missing name", talent: &model.TalentProfile{Occupations: []string{"server"}, City: "Lille"}},
		{name: "no occupations", talent: &model.TalentProfile{Name: "X", City: "Lille"}},
		{name: "empty occupation entry", talent: &model.TalentProfile{Name: "X", Occupations: []string{""}, City: "Lille"}},
		{name: "missing city", talent: &model.TalentProfile{Name: "X", Occupations: []string{"server"}}},
		{name: "rating out of range", talent: &model.TalentProfile{Name: "X", Occupations: []string{"server"}, City: "Lille", Rating: floatPtr(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveTalent(ctx, tt.talent))
		})
	}

	assert.Error(t, store.SaveTalent(ctx, nil))
}

func TestGetTalentRoundTrip(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	available := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	talent := &model.TalentProfile{
		Name:          "Fatima Zahraoui",
		Occupations:   []string{"cook", "kitchen_porter"},
		City:          "Paris",
		Active:        true,
		AvailableFrom: timePtr(available),
		Rating:        floatPtr(4.8),
		HourlyMin:     floatPtr(16),
		HourlyMax:     floatPtr(22),
	}
	require.NoError(t, store.SaveTalent(ctx, talent))

	got, err := store.GetTalent(ctx, talent.ID)
	require.NoError(t, err)

	assert.Equal(t, talent.Name, got.Name)
	assert.Equal(t, []string{"cook", "kitchen_porter"}, got.Occupations)
	assert.Equal(t, "Paris", got.City)
	assert.True(t, got.Active)
	require.NotNil(t, got.AvailableFrom)
	assert.True(t, got.AvailableFrom.Equal(available))
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.8, *got.Rating)
}

func TestGetTalentNotFound(t *testing.T) {
	store := setupTestStorage(t)

	_, err := store.GetTalent(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveTalentUpsert(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	talent := &model.TalentProfile{
		Name:        "Marc Lefebvre",
		Occupations: []string{"server"},
		City:        "Lille",
		Active:      true,
	}
	require.NoError(t, store.SaveTalent(ctx, talent))

	talent.City = "Roubaix"
	talent.Active = false
	require.NoError(t, store.SaveTalent(ctx, talent))

	got, err := store.GetTalent(ctx, talent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roubaix", got.City)
	assert.False(t, got.Active)

	all, err := store.ListTalents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "update must not create a second row")
}

func seedQueryFixtures(t *testing.T, store *SQLiteStorage) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC()
	fixtures := []model.TalentProfile{
		{Name: "Karim", Occupations: []string{"server", "bartender"}, City: "Lille", Active: true, AvailableFrom: timePtr(now.Add(-time.Hour))},
		{Name: "Sophie", Occupations: []string{"server"}, City: "Lille", Active: true},
		{Name: "Marc", Occupations: []string{"server"}, City: "Lille", Active: false},
		{Name: "Fatima", Occupations: []string{"cook"}, City: "Paris", Active: true},
		{Name: "Nadia", Occupations: []string{"server"}, City: "Paris", Active: true, AvailableFrom: timePtr(now.AddDate(0, 0, 14))},
	}
	for i := range fixtures {
		require.NoError(t, store.SaveTalent(ctx, &fixtures[i]))
	}
}

func queryNames(t *testing.T, store *SQLiteStorage, filter service.TalentFilter) []string {
	t.Helper()

	talents, err := store.QueryTalents(context.Background(), filter)
	require.NoError(t, err)

	names := make([]string, 0, len(talents))
	for _, talent := range talents {
		names = append(names, talent.Name)
	}
	return names
}

func TestQueryTalents(t *testing.T) {
	store := setupTestStorage(t)
	seedQueryFixtures(t, store)

	t.Run("occupation filter is exact membership", func(t *testing.T) {
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "cook"})
		assert.ElementsMatch(t, []string{"Fatima"}, names)
	})

	t.Run("occupation key never matches a prefix", func(t *testing.T) {
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "serv"})
		assert.Empty(t, names)
	})

	t.Run("city filter is case-insensitive", func(t *testing.T) {
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "server", City: "lille"})
		assert.ElementsMatch(t, []string{"Karim", "Sophie", "Marc"}, names)
	})

	t.Run("only active drops deactivated profiles", func(t *testing.T) {
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "server", City: "Lille", OnlyActive: true})
		assert.ElementsMatch(t, []string{"Karim", "Sophie"}, names)
	})

	t.Run("available-by keeps undated profiles", func(t *testing.T) {
		now := time.Now().UTC()
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "server", AvailableBy: &now})
		assert.ElementsMatch(t, []string{"Karim", "Sophie", "Marc"}, names)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		names := queryNames(t, store, service.TalentFilter{OccupationKey: "server", Limit: 2})
		assert.Len(t, names, 2)
	})

	t.Run("empty occupation key is rejected", func(t *testing.T) {
		_, err := store.QueryTalents(context.Background(), service.TalentFilter{})
		assert.Error(t, err)
	})
}

func TestWriteUsageAndStats(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	records := []service.UsageRecord{
		{
			RawText:              "Je cherche un serveur à Lille",
			TopOccupation:        "server",
			Confidence:           1.0,
			SecondaryOccupations: []string{"bartender"},
			ReadinessScore:       90,
			ReadinessStatus:      "ready",
			Location:             "Lille",
			Urgency:              "low",
		},
		{
			RawText:       "besoin d'un cuisinier",
			TopOccupation: "cook",
			Confidence:    1.0,
			Urgency:       "low",
		},
		{
			RawText:      "quelqu'un pour samedi",
			UsedFallback: true,
			Urgency:      "low",
		},
	}

	require.NoError(t, store.WriteUsage(ctx, records))
	require.NoError(t, store.WriteUsage(ctx, nil), "empty batch is a no-op")

	stats, err := store.UsageStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.FallbackCount)
	assert.Equal(t, map[string]int{"server": 1, "cook": 1}, stats.ByOccupation)
}

func TestValidateContext(t *testing.T) {
	store := setupTestStorage(t)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListTalents(canceled)
	assert.Error(t, err)

	//nolint:staticcheck // exercising the nil-context guard
	err = store.SaveTalent(nil, &model.TalentProfile{})
	assert.Error(t, err)
}
