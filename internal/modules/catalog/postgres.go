package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id,name,category,dimensions,material,color,created_at,updated_at`

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Category, &p.Dimensions, &p.Material, &p.Color,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) getProduct(ctx context.Context, where string, args ...interface{}) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE `+where+` LIMIT 1`, args...)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *postgresRepo) GetProductByName(ctx context.Context, name string) (*Product, error) {
	return r.getProduct(ctx, `name=$1`, name)
}

func (r *postgresRepo) GetProductByNameFold(ctx context.Context, name string) (*Product, error) {
	return r.getProduct(ctx, `lower(name)=lower($1)`, name)
}

// escapeLike neutralises LIKE metacharacters in user-supplied search terms.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) SearchProductsByWords(ctx context.Context, words []string, limit int) ([]*Product, error) {
	if len(words) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	n := 1
	for _, w := range words {
		// the name contains the word, or the word contains the name
		query += fmt.Sprintf(` AND (name ILIKE '%%'||$%d||'%%' OR $%d ILIKE '%%'||name||'%%')`, n, n+1)
		args = append(args, escapeLike(w), w)
		n += 2
	}
	query += fmt.Sprintf(` ORDER BY created_at, id LIMIT $%d`, n)
	args = append(args, limit)
	return r.queryProducts(ctx, query, args...)
}

func (r *postgresRepo) SearchProductsBySubstring(ctx context.Context, q string, limit int) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE name ILIKE '%'||$1||'%'
		ORDER BY created_at, id LIMIT $2`, escapeLike(q), limit)
}

func (r *postgresRepo) ListProductsByCategory(ctx context.Context, category, excludeName string, limit int) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE category=$1 AND name<>$2
		ORDER BY created_at, id LIMIT $3`, category, excludeName, limit)
}

func (r *postgresRepo) ListPrintOptions(ctx context.Context, productName string, class DeliveryClass) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT print_option FROM price_tiers
		WHERE product_name=$1 AND delivery_class=$2
		GROUP BY print_option
		ORDER BY MIN(created_at)`, productName, string(class))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var opt string
		if err := rows.Scan(&opt); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

const tierColumns = `id,product_name,print_option,delivery_class,quantity,unit_price,currency,delivery_days_min,delivery_days_max,is_moq,created_at,updated_at`

func (r *postgresRepo) ListTiers(ctx context.Context, f TierFilter) ([]*PriceTier, error) {
	query := `SELECT ` + tierColumns + ` FROM price_tiers WHERE product_name=$1`
	args := []interface{}{f.ProductName}
	n := 2
	if f.PrintOption != "" {
		query += fmt.Sprintf(` AND print_option=$%d`, n)
		args = append(args, f.PrintOption)
		n++
	}
	if f.DeliveryClass != "" {
		query += fmt.Sprintf(` AND delivery_class=$%d`, n)
		args = append(args, string(f.DeliveryClass))
		n++
	}
	if f.MaxQuantity > 0 {
		query += fmt.Sprintf(` AND quantity<=$%d`, n)
		args = append(args, f.MaxQuantity)
		n++
	}
	if f.MOQOnly {
		query += ` AND is_moq=true`
	}
	switch f.OrderBy {
	case OrderByPriceAsc:
		query += ` ORDER BY unit_price ASC, quantity ASC`
	case OrderByPriceDesc:
		query += ` ORDER BY unit_price DESC, quantity ASC`
	default:
		query += ` ORDER BY quantity ASC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []*PriceTier
	for rows.Next() {
		t := &PriceTier{}
		if err := rows.Scan(&t.ID, &t.ProductName, &t.PrintOption, &t.DeliveryClass,
			&t.Quantity, &t.UnitPrice, &t.Currency, &t.DeliveryDaysMin, &t.DeliveryDaysMax,
			&t.IsMOQ, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id,name,category,dimensions,material,color)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (name) DO UPDATE
		SET category=EXCLUDED.category, dimensions=EXCLUDED.dimensions,
		    material=EXCLUDED.material, color=EXCLUDED.color, updated_at=NOW()`,
		p.ID, p.Name, p.Category, p.Dimensions, p.Material, p.Color)
	return err
}

func (r *postgresRepo) CreateTier(ctx context.Context, t *PriceTier) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO price_tiers
		  (id,product_name,print_option,delivery_class,quantity,unit_price,currency,delivery_days_min,delivery_days_max,is_moq)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (product_name,print_option,delivery_class,quantity) DO UPDATE
		SET unit_price=EXCLUDED.unit_price, currency=EXCLUDED.currency,
		    delivery_days_min=EXCLUDED.delivery_days_min, delivery_days_max=EXCLUDED.delivery_days_max,
		    is_moq=EXCLUDED.is_moq, updated_at=NOW()`,
		t.ID, t.ProductName, t.PrintOption, string(t.DeliveryClass), t.Quantity,
		t.UnitPrice, t.Currency, t.DeliveryDaysMin, t.DeliveryDaysMax, t.IsMOQ)
	return err
}
