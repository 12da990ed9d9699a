package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
)

// Service defines catalog read access plus the import paths used by the
// bulk-load tool. The resolution engine talks to Repository directly.
type Service interface {
	ListProducts(ctx context.Context, category, q string) ([]*Product, error)
	ListTiers(ctx context.Context, productName, printOption string, class DeliveryClass) ([]*PriceTier, error)
	ImportProduct(ctx context.Context, req ImportProductRequest) (*Product, error)
	ImportTier(ctx context.Context, req ImportTierRequest) (*PriceTier, error)
}

// ImportProductRequest holds one product row from the import file.
type ImportProductRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Dimensions string `json:"dimensions"`
	Material   string `json:"material"`
	Color      string `json:"color"`
}

// ImportTierRequest holds one price-tier row from the import file.
type ImportTierRequest struct {
	ProductName     string  `json:"product_name"`
	PrintOption     string  `json:"print_option"`
	DeliveryClass   string  `json:"delivery_class"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Currency        string  `json:"currency"`
	DeliveryDaysMin int     `json:"delivery_days_min"`
	DeliveryDaysMax int     `json:"delivery_days_max"`
	IsMOQ           bool    `json:"is_moq"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

const listLimit = 100

func (s *service) ListProducts(ctx context.Context, category, q string) ([]*Product, error) {
	if category != "" && q == "" {
		return s.repo.ListProductsByCategory(ctx, category, "", listLimit)
	}
	products, err := s.repo.SearchProductsBySubstring(ctx, q, listLimit)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}
	filtered := products[:0]
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *service) ListTiers(ctx context.Context, productName, printOption string, class DeliveryClass) ([]*PriceTier, error) {
	if productName == "" {
		return nil, errx.Invalid("product name is required")
	}
	return s.repo.ListTiers(ctx, TierFilter{
		ProductName:   productName,
		PrintOption:   printOption,
		DeliveryClass: class,
		OrderBy:       OrderByQuantityAsc,
	})
}

func (s *service) ImportProduct(ctx context.Context, req ImportProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, errx.Invalid("product name is required")
	}
	p := &Product{
		ID:         uuid.New(),
		Name:       req.Name,
		Category:   req.Category,
		Dimensions: req.Dimensions,
		Material:   req.Material,
		Color:      req.Color,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ImportTier(ctx context.Context, req ImportTierRequest) (*PriceTier, error) {
	if req.ProductName == "" {
		return nil, errx.Invalid("product_name is required")
	}
	if req.Quantity <= 0 {
		return nil, errx.Invalid("quantity must be positive")
	}
	if req.UnitPrice < 0 {
		return nil, errx.Invalid("unit_price must not be negative")
	}
	class, ok := ParseDeliveryClass(req.DeliveryClass)
	if !ok {
		return nil, errx.Invalid("unknown delivery_class " + req.DeliveryClass)
	}
	currency := req.Currency
	if currency == "" {
		currency = "ZMW"
	}
	t := &PriceTier{
		ID:              uuid.New(),
		ProductName:     req.ProductName,
		PrintOption:     req.PrintOption,
		DeliveryClass:   class,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		Currency:        currency,
		DeliveryDaysMin: req.DeliveryDaysMin,
		DeliveryDaysMax: req.DeliveryDaysMax,
		IsMOQ:           req.IsMOQ,
	}
	if err := s.repo.CreateTier(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
