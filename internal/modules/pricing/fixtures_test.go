package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

type tierRow struct {
	product  string
	option   string
	class    string
	quantity int
	price    float64
	moq      bool
}

// seedCatalog builds the in-memory store every engine test runs against:
// three bag products (one without any tiers), and two mugs — one of which is
// priced for sea freight only.
func seedCatalog(t *testing.T) catalog.Repository {
	t.Helper()
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()
	svc := catalog.NewService(repo)

	products := []catalog.ImportProductRequest{
		{Name: "Tote Bag", Category: "bags", Material: "cotton"},
		{Name: "Canvas Tote Bag", Category: "bags", Material: "canvas"},
		{Name: "Drawstring Bag", Category: "bags"},
		{Name: "Ceramic Mug", Category: "drinkware"},
		{Name: "Travel Mug", Category: "drinkware"},
		{Name: "Lanyard", Category: "accessories"},
	}
	for _, p := range products {
		_, err := svc.ImportProduct(ctx, p)
		require.NoError(t, err)
	}

	tiers := []tierRow{
		{"Tote Bag", "silkscreen 1c x 0c", "local", 30, 55, true},
		{"Tote Bag", "silkscreen 1c x 0c", "local", 40, 52, false},
		{"Tote Bag", "silkscreen 1c x 0c", "local", 50, 50, false},
		{"Tote Bag", "silkscreen 1c x 0c", "local", 100, 45, false},
		{"Tote Bag", "silkscreen 1c x 0c", "local", 500, 40, false},
		{"Tote Bag", "silkscreen 1c x 0c", "local", 1000, 35, false},
		{"Tote Bag", "no print", "local", 30, 48, true},
		{"Tote Bag", "no print", "local", 100, 42, false},
		{"Tote Bag", "heat transfer", "local", 30, 60, true},
		{"Canvas Tote Bag", "silkscreen 1c x 0c", "local", 50, 60, true},
		{"Canvas Tote Bag", "silkscreen 1c x 0c", "local", 100, 50, false},
		{"Ceramic Mug", "laser engraving", "overseas_sea", 100, 30, true},
		{"Ceramic Mug", "laser engraving", "overseas_sea", 500, 25, false},
		{"Travel Mug", "laser engraving", "local", 50, 80, true},
		{"Travel Mug", "laser engraving", "local", 100, 75, false},
	}
	for _, row := range tiers {
		_, err := svc.ImportTier(ctx, catalog.ImportTierRequest{
			ProductName:     row.product,
			PrintOption:     row.option,
			DeliveryClass:   row.class,
			Quantity:        row.quantity,
			UnitPrice:       row.price,
			DeliveryDaysMin: 5,
			DeliveryDaysMax: 10,
			IsMOQ:           row.moq,
		})
		require.NoError(t, err)
	}
	return repo
}
