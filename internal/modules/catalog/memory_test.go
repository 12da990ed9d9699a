package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

func seed(t *testing.T) catalog.Repository {
	t.Helper()
	ctx := context.Background()
	repo := catalog.NewMemoryRepository()
	svc := catalog.NewService(repo)

	for _, name := range []string{"Tote Bag", "Canvas Tote Bag", "Ceramic Mug"} {
		_, err := svc.ImportProduct(ctx, catalog.ImportProductRequest{Name: name, Category: "test"})
		require.NoError(t, err)
	}

	rows := []catalog.ImportTierRequest{
		{ProductName: "Tote Bag", PrintOption: "silkscreen", DeliveryClass: "local", Quantity: 100, UnitPrice: 45},
		{ProductName: "Tote Bag", PrintOption: "silkscreen", DeliveryClass: "local", Quantity: 30, UnitPrice: 55, IsMOQ: true},
		{ProductName: "Tote Bag", PrintOption: "no print", DeliveryClass: "local", Quantity: 30, UnitPrice: 48, IsMOQ: true},
		{ProductName: "Tote Bag", PrintOption: "silkscreen", DeliveryClass: "sea", Quantity: 300, UnitPrice: 30, IsMOQ: true},
	}
	for _, row := range rows {
		_, err := svc.ImportTier(ctx, row)
		require.NoError(t, err)
	}
	return repo
}

func TestMemoryProductLookups(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	p, err := repo.GetProductByName(ctx, "Tote Bag")
	require.NoError(t, err)
	require.NotNil(t, p)

	// exact lookup is case-sensitive, fold lookup is not
	p, err = repo.GetProductByName(ctx, "tote bag")
	require.NoError(t, err)
	assert.Nil(t, p)
	p, err = repo.GetProductByNameFold(ctx, "TOTE BAG")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Tote Bag", p.Name)

	// substring either direction, per word
	products, err := repo.SearchProductsByWords(ctx, []string{"canvas", "bag"}, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Canvas Tote Bag", products[0].Name)
}

func TestMemoryPrintOptionsPerClass(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	options, err := repo.ListPrintOptions(ctx, "Tote Bag", catalog.DeliveryLocal)
	require.NoError(t, err)
	assert.Equal(t, []string{"silkscreen", "no print"}, options)

	options, err = repo.ListPrintOptions(ctx, "Tote Bag", catalog.DeliveryOverseasSea)
	require.NoError(t, err)
	assert.Equal(t, []string{"silkscreen"}, options)
}

func TestMemoryTierFilters(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	tiers, err := repo.ListTiers(ctx, catalog.TierFilter{
		ProductName:   "Tote Bag",
		PrintOption:   "silkscreen",
		DeliveryClass: catalog.DeliveryLocal,
		OrderBy:       catalog.OrderByQuantityAsc,
	})
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 30, tiers[0].Quantity)

	tiers, err = repo.ListTiers(ctx, catalog.TierFilter{
		ProductName:   "Tote Bag",
		DeliveryClass: catalog.DeliveryLocal,
		MaxQuantity:   50,
		OrderBy:       catalog.OrderByPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 48.0, tiers[0].UnitPrice)

	tiers, err = repo.ListTiers(ctx, catalog.TierFilter{
		ProductName: "Tote Bag",
		MOQOnly:     true,
	})
	require.NoError(t, err)
	assert.Len(t, tiers, 3)
}

func TestImportTierValidation(t *testing.T) {
	svc := catalog.NewService(catalog.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.ImportTier(ctx, catalog.ImportTierRequest{ProductName: "X", DeliveryClass: "local"})
	assert.Error(t, err) // zero quantity

	_, err = svc.ImportTier(ctx, catalog.ImportTierRequest{ProductName: "X", DeliveryClass: "moon", Quantity: 10})
	assert.Error(t, err) // unknown delivery class

	tier, err := svc.ImportTier(ctx, catalog.ImportTierRequest{ProductName: "X", DeliveryClass: "sea", Quantity: 10, UnitPrice: 5})
	require.NoError(t, err)
	assert.Equal(t, catalog.DeliveryOverseasSea, tier.DeliveryClass)
	assert.Equal(t, "ZMW", tier.Currency)
}
