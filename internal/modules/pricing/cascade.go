package pricing

import (
	"context"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

// DeliveryFallbackCascade retries tier resolution across delivery classes in
// the fixed priority order local → overseas_air → overseas_sea when the
// requested class yields nothing. The returned quote reports the class
// actually used, which may differ from the one requested — callers must
// surface that so a user who asked for local pricing is not misled.
type DeliveryFallbackCascade struct {
	tiers *QuantityTierResolver
}

func NewDeliveryFallbackCascade(tiers *QuantityTierResolver) *DeliveryFallbackCascade {
	return &DeliveryFallbackCascade{tiers: tiers}
}

// Resolve tries the requested class first, then the remaining classes in
// priority order, skipping the one already tried. Returns nil when no class
// has tiers for the variant.
func (c *DeliveryFallbackCascade) Resolve(ctx context.Context, productName, printOption string, requested catalog.DeliveryClass, quantity int) (*ResolvedQuote, error) {
	for _, class := range cascadeOrder(requested) {
		quote, err := c.tiers.Resolve(ctx, productName, printOption, class, quantity)
		if err != nil {
			return nil, err
		}
		if quote != nil {
			return quote, nil
		}
	}
	return nil, nil
}

// cascadeOrder puts the requested class first, followed by the remaining
// classes in fixed priority order. An unknown class defaults to local.
func cascadeOrder(requested catalog.DeliveryClass) []catalog.DeliveryClass {
	if !requested.Valid() {
		requested = catalog.DeliveryLocal
	}
	order := make([]catalog.DeliveryClass, 0, len(catalog.DeliveryFallbackOrder))
	order = append(order, requested)
	for _, class := range catalog.DeliveryFallbackOrder {
		if class != requested {
			order = append(order, class)
		}
	}
	return order
}
