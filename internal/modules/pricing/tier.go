package pricing

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

// Round2 rounds a currency amount to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// QuantityTierResolver selects the applicable price tier for a fully
// specified variant, falling back to the minimum-order-quantity tier when the
// request is below it.
type QuantityTierResolver struct {
	repo catalog.Repository
}

func NewQuantityTierResolver(repo catalog.Repository) *QuantityTierResolver {
	return &QuantityTierResolver{repo: repo}
}

// Resolve prices the (productName, printOption, class) variant. A quantity of
// zero or less means "not specified": the full sorted tier list comes back
// with the MOQ flagged and no tier selected. Returns nil when the variant has
// no tiers at all.
func (r *QuantityTierResolver) Resolve(ctx context.Context, productName, printOption string, class catalog.DeliveryClass, quantity int) (*ResolvedQuote, error) {
	tiers, err := r.repo.ListTiers(ctx, catalog.TierFilter{
		ProductName:   productName,
		PrintOption:   printOption,
		DeliveryClass: class,
		OrderBy:       catalog.OrderByQuantityAsc,
	})
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if len(tiers) == 0 {
		return nil, nil
	}

	// sort explicitly, never trust storage order
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Quantity < tiers[j].Quantity })

	moq := tiers[0]
	for _, t := range tiers {
		if t.IsMOQ {
			moq = t
			break
		}
	}

	quote := &ResolvedQuote{
		ProductName:       productName,
		PrintOption:       printOption,
		DeliveryClass:     class,
		RequestedQuantity: max(quantity, 0),
		Currency:          tiers[0].Currency,
		MOQ:               &MOQInfo{Quantity: moq.Quantity, UnitPrice: moq.UnitPrice},
		AllTiers:          tierViews(tiers, moq),
	}

	if quantity <= 0 {
		return quote, nil
	}

	var selected *catalog.PriceTier
	for _, t := range tiers {
		if t.Quantity <= quantity {
			selected = t
		}
	}
	if selected == nil {
		// every tier is above the request: quote the MOQ tier, but the
		// requested quantity was never sold at that price, so no total
		quote.TierQuantity = moq.Quantity
		unit := moq.UnitPrice
		quote.UnitPrice = &unit
		quote.DeliveryDaysMin = moq.DeliveryDaysMin
		quote.DeliveryDaysMax = moq.DeliveryDaysMax
		quote.BelowMinimum = true
		quote.Note = fmt.Sprintf("requested quantity %d is below the minimum order quantity %d", quantity, moq.Quantity)
		return quote, nil
	}

	quote.TierQuantity = selected.Quantity
	unit := selected.UnitPrice
	total := Round2(selected.UnitPrice * float64(quantity))
	quote.UnitPrice = &unit
	quote.TotalPrice = &total
	quote.DeliveryDaysMin = selected.DeliveryDaysMin
	quote.DeliveryDaysMax = selected.DeliveryDaysMax
	return quote, nil
}

func tierViews(tiers []*catalog.PriceTier, moq *catalog.PriceTier) []TierView {
	views := make([]TierView, 0, len(tiers))
	for _, t := range tiers {
		views = append(views, TierView{
			Quantity:        t.Quantity,
			UnitPrice:       t.UnitPrice,
			Currency:        t.Currency,
			DeliveryDaysMin: t.DeliveryDaysMin,
			DeliveryDaysMax: t.DeliveryDaysMax,
			IsMOQ:           t == moq,
		})
	}
	return views
}
