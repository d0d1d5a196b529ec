package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []Category {
	return []Category{
		{
			Name: "Cuisine",
			Definitions: []Definition{
				{Key: "cook", Weight: 1.0, Labels: map[Lang][]string{
					LangFrench:  {"cuisinier", "cuistot"},
					LangEnglish: {"cook"},
				}},
				{Key: "server", Weight: 0.9, Labels: map[Lang][]string{
					LangFrench: {"serveur", "serveuse"},
				}},
			},
		},
		{
			Name: "Bâtiment",
			Definitions: []Definition{
				{Key: "mason", Weight: 0.8, Labels: map[Lang][]string{
					LangFrench: {"maçon"},
				}},
			},
		},
	}
}

func TestNewValidStore(t *testing.T) {
	store, err := New(testCategories(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())

	// Declaration order is preserved across categories
	assert.Equal(t, 0, store.OrderIndex("cook"))
	assert.Equal(t, 1, store.OrderIndex("server"))
	assert.Equal(t, 2, store.OrderIndex("mason"))
	assert.Equal(t, -1, store.OrderIndex("missing"))

	def, ok := store.Get("server")
	require.True(t, ok)
	assert.Equal(t, 0.9, def.Weight)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestNewCompilesLabelTokens(t *testing.T) {
	store, err := New(testCategories(), nil, nil)
	require.NoError(t, err)

	occupations := store.Occupations()
	require.Len(t, occupations, 3)

	// "maçon" normalizes to "macon"
	assert.Equal(t, [][]string{{"macon"}}, occupations[2].LabelTokens)
	// Two French variants plus one English variant
	assert.Len(t, occupations[0].LabelTokens, 3)
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		wantErr    string
	}{
		{
			name: "missing category name",
			categories: []Category{
				{Definitions: []Definition{{Key: "cook", Weight: 1, Labels: map[Lang][]string{LangFrench: {"cuisinier"}}}}},
			},
			wantErr: "category name is required",
		},
		{
			name: "missing key",
			categories: []Category{
				{Name: "Cuisine", Definitions: []Definition{{Weight: 1, Labels: map[Lang][]string{LangFrench: {"cuisinier"}}}}},
			},
			wantErr: "key is required",
		},
		{
			name: "duplicate key across categories",
			categories: append(testCategories(), Category{
				Name:        "Autre",
				Definitions: []Definition{{Key: "cook", Weight: 1, Labels: map[Lang][]string{LangFrench: {"chef"}}}},
			}),
			wantErr: "duplicate occupation key",
		},
		{
			name: "non-positive weight",
			categories: []Category{
				{Name: "Cuisine", Definitions: []Definition{{Key: "cook", Weight: 0, Labels: map[Lang][]string{LangFrench: {"cuisinier"}}}}},
			},
			wantErr: "weight must be positive",
		},
		{
			name: "no labels",
			categories: []Category{
				{Name: "Cuisine", Definitions: []Definition{{Key: "cook", Weight: 1}}},
			},
			wantErr: "at least one label",
		},
		{
			name: "label normalizes to nothing",
			categories: []Category{
				{Name: "Cuisine", Definitions: []Definition{{Key: "cook", Weight: 1, Labels: map[Lang][]string{LangFrench: {"!!!"}}}}},
			},
			wantErr: "normalizes to nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.categories, nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidatesPatterns(t *testing.T) {
	categories := testCategories()

	t.Run("co-occurrence with unknown key", func(t *testing.T) {
		_, err := New(categories, []CoOccurrencePattern{{Key: "pilot", Tokens: []string{"avion"}, Boost: 0.5}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown occupation")
	})

	t.Run("co-occurrence without tokens", func(t *testing.T) {
		_, err := New(categories, []CoOccurrencePattern{{Key: "cook", Boost: 0.5}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tokens")
	})

	t.Run("co-occurrence without boost", func(t *testing.T) {
		_, err := New(categories, []CoOccurrencePattern{{Key: "cook", Tokens: []string{"brigade"}}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive boost")
	})

	t.Run("contextual with unknown key", func(t *testing.T) {
		_, err := New(categories, nil, []ContextualPattern{{Key: "pilot", Requires: []string{"avion"}, Boost: 0.5}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown occupation")
	})

	t.Run("pattern tokens are normalized", func(t *testing.T) {
		store, err := New(categories,
			[]CoOccurrencePattern{{Key: "server", Tokens: []string{"Salle", "Café"}, Boost: 0.5}},
			[]ContextualPattern{{Key: "mason", Requires: []string{"Chantier"}, Excludes: []string{"Cuisine"}, Boost: 0.4}})
		require.NoError(t, err)

		require.Len(t, store.CoOccurrencePatterns(), 1)
		assert.Equal(t, []string{"salle", "cafe"}, store.CoOccurrencePatterns()[0].Tokens)

		require.Len(t, store.ContextualPatterns(), 1)
		assert.Equal(t, []string{"chantier"}, store.ContextualPatterns()[0].Requires)
		assert.Equal(t, []string{"cuisine"}, store.ContextualPatterns()[0].Excludes)
	})
}

func TestDefaultLexicon(t *testing.T) {
	store := Default()
	require.NotNil(t, store)

	// Same instance on every call
	assert.Same(t, store, Default())

	for _, key := range []string{"cook", "server", "bartender", "mason", "forklift_operator", "caregiver"} {
		_, ok := store.Get(key)
		assert.True(t, ok, "expected built-in occupation %q", key)
	}

	assert.NotEmpty(t, store.CoOccurrencePatterns())
	assert.NotEmpty(t, store.ContextualPatterns())
}
