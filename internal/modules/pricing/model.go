package pricing

import (
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

// Confidence tags how a product matched the query, strongest first.
type Confidence string

const (
	ConfidenceExact            Confidence = "exact"
	ConfidenceExactInsensitive Confidence = "exact_insensitive"
	ConfidenceFuzzy            Confidence = "fuzzy"
)

// MatchResult pairs a matched product with its confidence tier.
type MatchResult struct {
	Product    *catalog.Product `json:"product"`
	Confidence Confidence       `json:"confidence"`
}

// TierView is one row of a variant's price curve as exposed to callers.
type TierView struct {
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Currency        string  `json:"currency"`
	DeliveryDaysMin int     `json:"delivery_days_min"`
	DeliveryDaysMax int     `json:"delivery_days_max"`
	IsMOQ           bool    `json:"is_moq"`
}

// MOQInfo reports the minimum order quantity tier of a variant.
type MOQInfo struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ResolvedQuote is the priced outcome for one variant. UnitPrice and
// TotalPrice are nil when no single tier applies: TotalPrice is always nil
// when the requested quantity is below the minimum order quantity, and both
// are nil when no quantity was requested at all.
type ResolvedQuote struct {
	ProductName       string                `json:"product_name"`
	PrintOption       string                `json:"print_option"`
	DeliveryClass     catalog.DeliveryClass `json:"delivery_class"`
	RequestedQuantity int                   `json:"requested_quantity,omitempty"`
	TierQuantity      int                   `json:"tier_quantity,omitempty"`
	UnitPrice         *float64              `json:"unit_price,omitempty"`
	TotalPrice        *float64              `json:"total_price,omitempty"`
	Currency          string                `json:"currency"`
	DeliveryDaysMin   int                   `json:"delivery_days_min,omitempty"`
	DeliveryDaysMax   int                   `json:"delivery_days_max,omitempty"`
	BelowMinimum      bool                  `json:"below_minimum_order,omitempty"`
	Note              string                `json:"note,omitempty"`
	MOQ               *MOQInfo              `json:"moq"`
	AllTiers          []TierView            `json:"all_tiers"`
}

// Alternative is a sibling product in the same category with a comparable
// price point.
type Alternative struct {
	ProductName   string                `json:"product_name"`
	Category      string                `json:"category,omitempty"`
	PrintOption   string                `json:"print_option"`
	DeliveryClass catalog.DeliveryClass `json:"delivery_class"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     float64               `json:"unit_price"`
	Currency      string                `json:"currency"`
	IsMOQ         bool                  `json:"is_moq"`
}

// Outcome distinguishes the structured "not found" shapes from success.
// Zero-result outcomes are data, not errors.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeNoProductMatch    Outcome = "no_product_match"
	OutcomeNoPriceForVariant Outcome = "no_price_for_variant"
)

// CandidateQuote is one matched product with its resolved price.
type CandidateQuote struct {
	Product    *catalog.Product `json:"product"`
	Confidence Confidence       `json:"confidence"`
	Quote      *ResolvedQuote   `json:"quote"`
}

// QuoteResponse is the payload for both quote operations.
type QuoteResponse struct {
	Outcome      Outcome           `json:"outcome"`
	Results      []*CandidateQuote `json:"results,omitempty"`
	Suggestions  []string          `json:"suggestions,omitempty"`
	Alternatives []Alternative     `json:"alternatives,omitempty"`
}

// StructuredRequest is a direct, unambiguous lookup: the product name is
// taken as exact and no alternatives are fetched.
type StructuredRequest struct {
	ProductName   string `json:"product_name"`
	PrintOption   string `json:"print_option,omitempty"`
	DeliveryClass string `json:"delivery_class,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
}
