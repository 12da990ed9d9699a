package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/pricing"
)

func TestMatcherExactNeverFallsThroughToFuzzy(t *testing.T) {
	repo := seedCatalog(t)
	m := pricing.NewMatcher(repo)

	// "Tote Bag" would also fuzzy-match "Canvas Tote Bag", but the exact
	// tier stops evaluation.
	results, err := m.Match(context.Background(), "Tote Bag", pricing.MatchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tote Bag", results[0].Product.Name)
	assert.Equal(t, pricing.ConfidenceExact, results[0].Confidence)
}

func TestMatcherCaseInsensitiveTier(t *testing.T) {
	repo := seedCatalog(t)
	m := pricing.NewMatcher(repo)

	results, err := m.Match(context.Background(), "tote bag", pricing.MatchOptions{Limit: 5})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tote Bag", results[0].Product.Name)
	assert.Equal(t, pricing.ConfidenceExactInsensitive, results[0].Confidence)
}

func TestMatcherFuzzy(t *testing.T) {
	repo := seedCatalog(t)
	m := pricing.NewMatcher(repo)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"every significant word must hit", "canvas bag", []string{"Canvas Tote Bag"}},
		{"both mugs share the word", "mug", []string{"Ceramic Mug", "Travel Mug"}},
		{"name contained by a query word", "lanyards", []string{"Lanyard"}},
		{"cross-category query matches nothing", "t-shirt and hoodie", nil},
		{"single word hits every bag", "bag", []string{"Tote Bag", "Canvas Tote Bag", "Drawstring Bag"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := m.Match(context.Background(), tc.query, pricing.MatchOptions{Limit: 5})
			require.NoError(t, err)
			var names []string
			for _, r := range results {
				assert.Equal(t, pricing.ConfidenceFuzzy, r.Confidence)
				names = append(names, r.Product.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestMatcherEmptyQuery(t *testing.T) {
	m := pricing.NewMatcher(seedCatalog(t))

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := m.Match(context.Background(), query, pricing.MatchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestMatcherCategoryFilter(t *testing.T) {
	m := pricing.NewMatcher(seedCatalog(t))

	results, err := m.Match(context.Background(), "mug", pricing.MatchOptions{Limit: 5, Category: "drinkware"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = m.Match(context.Background(), "mug", pricing.MatchOptions{Limit: 5, Category: "bags"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatcherLimit(t *testing.T) {
	m := pricing.NewMatcher(seedCatalog(t))

	results, err := m.Match(context.Background(), "bag", pricing.MatchOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
