package catalog

import "context"

// TierOrder selects the sort order for tier queries.
type TierOrder string

const (
	OrderByQuantityAsc TierOrder = "quantity_asc"
	OrderByPriceAsc    TierOrder = "price_asc"
	OrderByPriceDesc   TierOrder = "price_desc"
)

// TierFilter narrows a price-tier query. ProductName is required. An empty
// PrintOption matches every print option of the product. MaxQuantity of zero
// means no ceiling.
type TierFilter struct {
	ProductName   string
	PrintOption   string
	DeliveryClass DeliveryClass
	MaxQuantity   int
	MOQOnly       bool
	OrderBy       TierOrder
}

// Repository defines the read queries the resolution engine needs plus the
// insert paths used by the import tool. Lookups return (nil, nil) when no row
// matches: absence is data, only store failures are errors.
type Repository interface {
	// GetProductByName matches the canonical name byte-for-byte.
	GetProductByName(ctx context.Context, name string) (*Product, error)
	// GetProductByNameFold matches the name ignoring case, no substring matching.
	GetProductByNameFold(ctx context.Context, name string) (*Product, error)
	// SearchProductsByWords returns products whose name contains, or is
	// contained by, every one of the given words (case-folded).
	SearchProductsByWords(ctx context.Context, words []string, limit int) ([]*Product, error)
	// SearchProductsBySubstring is a loose case-folded substring search over names.
	SearchProductsBySubstring(ctx context.Context, q string, limit int) ([]*Product, error)
	// ListProductsByCategory returns products in a category, excluding one name.
	ListProductsByCategory(ctx context.Context, category, excludeName string, limit int) ([]*Product, error)

	// ListPrintOptions returns the distinct print options recorded for a
	// product and delivery class, in catalog order.
	ListPrintOptions(ctx context.Context, productName string, class DeliveryClass) ([]string, error)
	// ListTiers returns the price tiers matching the filter.
	ListTiers(ctx context.Context, f TierFilter) ([]*PriceTier, error)

	// Import paths; never called in the resolution path.
	CreateProduct(ctx context.Context, p *Product) error
	CreateTier(ctx context.Context, t *PriceTier) error
}
