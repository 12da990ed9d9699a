package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/pricing"
)

func TestAlternativesSameCategory(t *testing.T) {
	f := pricing.NewAlternativesFinder(seedCatalog(t))

	alts, err := f.Find(context.Background(), "Tote Bag", 100, 5)
	require.NoError(t, err)

	// Drawstring Bag shares the category but has no tiers: silently dropped.
	require.Len(t, alts, 1)
	assert.Equal(t, "Canvas Tote Bag", alts[0].ProductName)
	assert.Equal(t, 100, alts[0].Quantity)
	assert.Equal(t, 50.0, alts[0].UnitPrice)
	assert.False(t, alts[0].IsMOQ)
}

func TestAlternativesMOQFallback(t *testing.T) {
	f := pricing.NewAlternativesFinder(seedCatalog(t))

	// Canvas Tote Bag has no tier at or below 40, so its MOQ tier is offered.
	alts, err := f.Find(context.Background(), "Tote Bag", 40, 5)
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, 50, alts[0].Quantity)
	assert.Equal(t, 60.0, alts[0].UnitPrice)
	assert.True(t, alts[0].IsMOQ)
}

func TestAlternativesUnknownOrUncategorised(t *testing.T) {
	f := pricing.NewAlternativesFinder(seedCatalog(t))

	alts, err := f.Find(context.Background(), "No Such Product", 100, 5)
	require.NoError(t, err)
	assert.Empty(t, alts)
}
