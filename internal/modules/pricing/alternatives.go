package pricing

import (
	"context"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

// AlternativesFinder proposes sibling products in the same category with a
// comparable-quantity price point.
type AlternativesFinder struct {
	repo catalog.Repository
}

func NewAlternativesFinder(repo catalog.Repository) *AlternativesFinder {
	return &AlternativesFinder{repo: repo}
}

// Find returns up to limit alternatives for the product. Each sibling gets
// its cheapest local-class tier at or below quantity, or its cheapest MOQ
// tier when nothing qualifies. Siblings with no tier at all are silently
// dropped — absence of an alternative is not an error.
func (f *AlternativesFinder) Find(ctx context.Context, productName string, quantity, limit int) ([]Alternative, error) {
	p, err := f.repo.GetProductByName(ctx, productName)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if p == nil || p.Category == "" {
		return nil, nil
	}

	siblings, err := f.repo.ListProductsByCategory(ctx, p.Category, p.Name, limit)
	if err != nil {
		return nil, errx.WrapStore(err)
	}

	var alternatives []Alternative
	for _, s := range siblings {
		tier, err := f.cheapestTier(ctx, s.Name, quantity)
		if err != nil {
			return nil, err
		}
		if tier == nil {
			continue
		}
		alternatives = append(alternatives, Alternative{
			ProductName:   s.Name,
			Category:      s.Category,
			PrintOption:   tier.PrintOption,
			DeliveryClass: tier.DeliveryClass,
			Quantity:      tier.Quantity,
			UnitPrice:     tier.UnitPrice,
			Currency:      tier.Currency,
			IsMOQ:         tier.IsMOQ,
		})
	}
	return alternatives, nil
}

func (f *AlternativesFinder) cheapestTier(ctx context.Context, productName string, quantity int) (*catalog.PriceTier, error) {
	if quantity > 0 {
		tiers, err := f.repo.ListTiers(ctx, catalog.TierFilter{
			ProductName:   productName,
			DeliveryClass: catalog.DeliveryLocal,
			MaxQuantity:   quantity,
			OrderBy:       catalog.OrderByPriceAsc,
		})
		if err != nil {
			return nil, errx.WrapStore(err)
		}
		if len(tiers) > 0 {
			return tiers[0], nil
		}
	}
	tiers, err := f.repo.ListTiers(ctx, catalog.TierFilter{
		ProductName:   productName,
		DeliveryClass: catalog.DeliveryLocal,
		MOQOnly:       true,
		OrderBy:       catalog.OrderByPriceAsc,
	})
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if len(tiers) > 0 {
		return tiers[0], nil
	}
	return nil, nil
}
