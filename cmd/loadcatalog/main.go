package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
	logx "github.com/georgemunganga/printa-quotes/pkg/logger"
)

// loadcatalog bulk-loads the product catalog and price tiers from CSV files.
//
// products CSV columns: name,category,dimensions,material,color
// tiers CSV columns:    product_name,print_option,delivery_class,quantity,
//                       unit_price,currency,delivery_days_min,delivery_days_max,is_moq
func main() {
	productsPath := flag.String("products", "", "path to the products CSV file")
	tiersPath := flag.String("tiers", "", "path to the price tiers CSV file")
	dryRun := flag.Bool("dry-run", false, "validate the files without writing to the database")
	flag.Parse()

	logx.Init()

	if *productsPath == "" && *tiersPath == "" {
		fmt.Fprintln(os.Stderr, "usage: loadcatalog -products products.csv -tiers tiers.csv [-dry-run]")
		os.Exit(2)
	}

	var repo catalog.Repository
	if *dryRun {
		repo = catalog.NewMemoryRepository()
	} else {
		if err := godotenv.Load(); err != nil {
			logx.Warn().Err(err).Msg("no .env file loaded")
		}
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to open database")
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logx.Fatal().Err(err).Msg("failed to ping database")
		}
		repo = catalog.NewPostgresRepository(db)
	}

	ctx := context.Background()
	service := catalog.NewService(repo)

	if *productsPath != "" {
		n, err := loadProducts(ctx, service, *productsPath)
		if err != nil {
			logx.Fatal().Err(err).Str("file", *productsPath).Msg("product import failed")
		}
		logx.Info().Int("rows", n).Bool("dry_run", *dryRun).Msg("products imported")
	}
	if *tiersPath != "" {
		n, err := loadTiers(ctx, service, *tiersPath)
		if err != nil {
			logx.Fatal().Err(err).Str("file", *tiersPath).Msg("tier import failed")
		}
		logx.Info().Int("rows", n).Bool("dry_run", *dryRun).Msg("price tiers imported")
	}
}

func openCSV(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	if _, err := r.Read(); err != nil { // header
		f.Close()
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	return r, f, nil
}

func loadProducts(ctx context.Context, service catalog.Service, path string) (int, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 5 {
			return count, fmt.Errorf("line %d: expected 5 columns, got %d", line, len(record))
		}
		_, err = service.ImportProduct(ctx, catalog.ImportProductRequest{
			Name:       strings.TrimSpace(record[0]),
			Category:   strings.TrimSpace(record[1]),
			Dimensions: strings.TrimSpace(record[2]),
			Material:   strings.TrimSpace(record[3]),
			Color:      strings.TrimSpace(record[4]),
		})
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
}

func loadTiers(ctx context.Context, service catalog.Service, path string) (int, error) {
	r, f, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 9 {
			return count, fmt.Errorf("line %d: expected 9 columns, got %d", line, len(record))
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return count, fmt.Errorf("line %d: quantity: %w", line, err)
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			return count, fmt.Errorf("line %d: unit_price: %w", line, err)
		}
		daysMin, err := strconv.Atoi(strings.TrimSpace(record[6]))
		if err != nil {
			return count, fmt.Errorf("line %d: delivery_days_min: %w", line, err)
		}
		daysMax, err := strconv.Atoi(strings.TrimSpace(record[7]))
		if err != nil {
			return count, fmt.Errorf("line %d: delivery_days_max: %w", line, err)
		}
		isMOQ, err := strconv.ParseBool(strings.TrimSpace(record[8]))
		if err != nil {
			return count, fmt.Errorf("line %d: is_moq: %w", line, err)
		}
		_, err = service.ImportTier(ctx, catalog.ImportTierRequest{
			ProductName:     strings.TrimSpace(record[0]),
			PrintOption:     strings.TrimSpace(record[1]),
			DeliveryClass:   strings.TrimSpace(record[2]),
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			Currency:        strings.TrimSpace(record[5]),
			DeliveryDaysMin: daysMin,
			DeliveryDaysMax: daysMax,
			IsMOQ:           isMOQ,
		})
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
}
