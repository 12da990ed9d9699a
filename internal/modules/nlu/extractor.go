package nlu

import (
	"context"
	"errors"
	"net/http"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
)

// ParsedQuery is the structured output of the text-understanding service:
// what the user wants priced. Zero values mean "not mentioned".
type ParsedQuery struct {
	Product     string `json:"product"`
	Quantity    int    `json:"quantity,omitempty"`
	PrintOption string `json:"print_option,omitempty"`
	LeadTime    string `json:"lead_time,omitempty"`
}

// Extractor turns a free-text pricing question into a ParsedQuery. A query
// from which no product can be extracted fails with errx.ErrParseFailure;
// the engine surfaces that to the caller and never retries it.
type Extractor interface {
	Extract(ctx context.Context, text string) (*ParsedQuery, error)
}

// Config holds the Gemini extractor settings, sourced from environment variables.
type Config struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
	Model   string `envconfig:"NLU_MODEL" default:"gemini-2.0-flash"`
}

type unavailable struct{}

func (unavailable) Extract(ctx context.Context, text string) (*ParsedQuery, error) {
	return nil, errx.New(errors.New("no extractor configured"),
		http.StatusServiceUnavailable, "free-text extraction is not configured")
}

// Unavailable returns an Extractor that rejects every request. Used when the
// service runs without an NLU credential; structured lookups still work.
func Unavailable() Extractor { return unavailable{} }
