package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
	"github.com/georgemunganga/printa-quotes/internal/modules/pricing"
)

func TestCascadeFallsBackToSea(t *testing.T) {
	repo := seedCatalog(t)
	c := pricing.NewDeliveryFallbackCascade(pricing.NewQuantityTierResolver(repo))

	// Ceramic Mug is priced for sea freight only; a default local request
	// must come back with the class actually used.
	quote, err := c.Resolve(context.Background(), "Ceramic Mug", "laser engraving", catalog.DeliveryLocal, 100)
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, catalog.DeliveryOverseasSea, quote.DeliveryClass)
	assert.Equal(t, 100, quote.TierQuantity)
}

func TestCascadePrefersRequestedClass(t *testing.T) {
	repo := seedCatalog(t)
	c := pricing.NewDeliveryFallbackCascade(pricing.NewQuantityTierResolver(repo))

	quote, err := c.Resolve(context.Background(), "Tote Bag", "silkscreen 1c x 0c", catalog.DeliveryLocal, 50)
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, catalog.DeliveryLocal, quote.DeliveryClass)
}

func TestCascadeExhausted(t *testing.T) {
	repo := seedCatalog(t)
	c := pricing.NewDeliveryFallbackCascade(pricing.NewQuantityTierResolver(repo))

	quote, err := c.Resolve(context.Background(), "Drawstring Bag", "silkscreen", catalog.DeliveryLocal, 50)
	require.NoError(t, err)
	assert.Nil(t, quote)
}
