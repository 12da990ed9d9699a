package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
	"github.com/georgemunganga/printa-quotes/internal/modules/pricing"
)

func resolveToteTier(t *testing.T, quantity int) *pricing.ResolvedQuote {
	t.Helper()
	r := pricing.NewQuantityTierResolver(seedCatalog(t))
	quote, err := r.Resolve(context.Background(), "Tote Bag", "silkscreen 1c x 0c", catalog.DeliveryLocal, quantity)
	require.NoError(t, err)
	require.NotNil(t, quote)
	return quote
}

func TestTierSelectionLargestAtOrBelow(t *testing.T) {
	quote := resolveToteTier(t, 475)

	assert.Equal(t, 100, quote.TierQuantity)
	require.NotNil(t, quote.UnitPrice)
	assert.Equal(t, 45.0, *quote.UnitPrice)
	require.NotNil(t, quote.TotalPrice)
	assert.Equal(t, 21375.0, *quote.TotalPrice)
	assert.False(t, quote.BelowMinimum)
}

func TestTierExactBoundary(t *testing.T) {
	quote := resolveToteTier(t, 500)
	assert.Equal(t, 500, quote.TierQuantity)
	require.NotNil(t, quote.TotalPrice)
	assert.Equal(t, 20000.0, *quote.TotalPrice)
}

func TestTierMOQFallback(t *testing.T) {
	quote := resolveToteTier(t, 10)

	assert.True(t, quote.BelowMinimum)
	assert.Equal(t, 30, quote.TierQuantity)
	require.NotNil(t, quote.UnitPrice)
	assert.Equal(t, 55.0, *quote.UnitPrice)
	// the requested quantity was never sold at that price
	assert.Nil(t, quote.TotalPrice)
	assert.Contains(t, quote.Note, "minimum order quantity 30")
}

func TestTierQuantityOmitted(t *testing.T) {
	quote := resolveToteTier(t, 0)

	assert.Zero(t, quote.TierQuantity)
	assert.Nil(t, quote.UnitPrice)
	assert.Nil(t, quote.TotalPrice)
	require.Len(t, quote.AllTiers, 6)
	require.NotNil(t, quote.MOQ)
	assert.Equal(t, 30, quote.MOQ.Quantity)
	assert.Equal(t, 55.0, quote.MOQ.UnitPrice)
	assert.True(t, quote.AllTiers[0].IsMOQ)

	// sorted ascending regardless of storage order
	for i := 1; i < len(quote.AllTiers); i++ {
		assert.Greater(t, quote.AllTiers[i].Quantity, quote.AllTiers[i-1].Quantity)
		assert.LessOrEqual(t, quote.AllTiers[i].UnitPrice, quote.AllTiers[i-1].UnitPrice)
	}
}

func TestTierRoundTrip(t *testing.T) {
	for _, quantity := range []int{30, 47, 101, 475, 999, 5000} {
		quote := resolveToteTier(t, quantity)
		require.NotNil(t, quote.UnitPrice)
		require.NotNil(t, quote.TotalPrice)
		assert.Equal(t, pricing.Round2(*quote.UnitPrice*float64(quantity)), *quote.TotalPrice)
	}
}

func TestTierEmptyVariant(t *testing.T) {
	r := pricing.NewQuantityTierResolver(seedCatalog(t))

	quote, err := r.Resolve(context.Background(), "Tote Bag", "embroidery", catalog.DeliveryLocal, 100)
	require.NoError(t, err)
	assert.Nil(t, quote)

	quote, err = r.Resolve(context.Background(), "Drawstring Bag", "", catalog.DeliveryLocal, 100)
	require.NoError(t, err)
	assert.Nil(t, quote)
}
