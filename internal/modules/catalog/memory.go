package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryRepo is an in-memory Repository used by tests and by the import
// tool's dry-run mode. It preserves insertion order as catalog order, matching
// the Postgres implementation's created_at ordering.
type memoryRepo struct {
	mu       sync.RWMutex
	products []*Product
	tiers    []*PriceTier
}

func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) GetProductByName(ctx context.Context, name string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) GetProductByNameFold(ctx context.Context, name string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (r *memoryRepo) SearchProductsByWords(ctx context.Context, words []string, limit int) ([]*Product, error) {
	if len(words) == 0 {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Product
	for _, p := range r.products {
		all := true
		for _, w := range words {
			if !containsFold(p.Name, w) && !containsFold(w, p.Name) {
				all = false
				break
			}
		}
		if all {
			out = append(out, p)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *memoryRepo) SearchProductsBySubstring(ctx context.Context, q string, limit int) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Product
	for _, p := range r.products {
		if containsFold(p.Name, q) {
			out = append(out, p)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *memoryRepo) ListProductsByCategory(ctx context.Context, category, excludeName string, limit int) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Product
	for _, p := range r.products {
		if p.Category != category || p.Name == excludeName {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *memoryRepo) ListPrintOptions(ctx context.Context, productName string, class DeliveryClass) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var options []string
	for _, t := range r.tiers {
		if t.ProductName != productName || t.DeliveryClass != class {
			continue
		}
		if !seen[t.PrintOption] {
			seen[t.PrintOption] = true
			options = append(options, t.PrintOption)
		}
	}
	return options, nil
}

func (r *memoryRepo) ListTiers(ctx context.Context, f TierFilter) ([]*PriceTier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*PriceTier
	for _, t := range r.tiers {
		if t.ProductName != f.ProductName {
			continue
		}
		if f.PrintOption != "" && t.PrintOption != f.PrintOption {
			continue
		}
		if f.DeliveryClass != "" && t.DeliveryClass != f.DeliveryClass {
			continue
		}
		if f.MaxQuantity > 0 && t.Quantity > f.MaxQuantity {
			continue
		}
		if f.MOQOnly && !t.IsMOQ {
			continue
		}
		out = append(out, t)
	}
	switch f.OrderBy {
	case OrderByPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice < out[j].UnitPrice })
	case OrderByPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice > out[j].UnitPrice })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	}
	return out, nil
}

func (r *memoryRepo) CreateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.Name == p.Name {
			r.products[i] = p
			return nil
		}
	}
	r.products = append(r.products, p)
	return nil
}

func (r *memoryRepo) CreateTier(ctx context.Context, t *PriceTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.tiers {
		if existing.ProductName == t.ProductName && existing.PrintOption == t.PrintOption &&
			existing.DeliveryClass == t.DeliveryClass && existing.Quantity == t.Quantity {
			r.tiers[i] = t
			return nil
		}
	}
	r.tiers = append(r.tiers, t)
	return nil
}
