package pricing

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
	"github.com/georgemunganga/printa-quotes/internal/modules/nlu"
)

const (
	matchLimit       = 5
	suggestionLimit  = 5
	alternativeLimit = 5
)

// Service is the pricing orchestrator: the only surface exposed to transport.
type Service interface {
	// ResolveFreeText prices an already-extracted free-text request. Zero
	// matches come back as a structured no-results outcome with name
	// suggestions, never as an error.
	ResolveFreeText(ctx context.Context, parsed nlu.ParsedQuery) (*QuoteResponse, error)

	// ResolveStructured prices a direct lookup. The product name is taken as
	// exact; the matcher and alternatives are skipped.
	ResolveStructured(ctx context.Context, req StructuredRequest) (*QuoteResponse, error)
}

type service struct {
	repo    catalog.Repository
	matcher *Matcher
	prints  *PrintOptionResolver
	cascade *DeliveryFallbackCascade
	alts    *AlternativesFinder
	cache   *QuoteCache
}

// NewService wires the resolution components around one injected store.
// cache may be nil.
func NewService(repo catalog.Repository, cache *QuoteCache) Service {
	return &service{
		repo:    repo,
		matcher: NewMatcher(repo),
		prints:  NewPrintOptionResolver(repo),
		cascade: NewDeliveryFallbackCascade(NewQuantityTierResolver(repo)),
		alts:    NewAlternativesFinder(repo),
		cache:   cache,
	}
}

func (s *service) ResolveFreeText(ctx context.Context, parsed nlu.ParsedQuery) (*QuoteResponse, error) {
	product := strings.TrimSpace(parsed.Product)
	if product == "" {
		return nil, errx.Invalid("product is required")
	}

	matches, err := s.matcher.Match(ctx, product, MatchOptions{Limit: matchLimit})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		suggestions, err := s.suggestions(ctx, product)
		if err != nil {
			return nil, err
		}
		return &QuoteResponse{Outcome: OutcomeNoProductMatch, Suggestions: suggestions}, nil
	}

	preferred := parseLeadTime(parsed.LeadTime)

	// Per-candidate resolution is independent: fan out, but keep the final
	// ordering by match order, not completion order. Cancelling the request
	// cancels the whole group.
	quotes := make([]*ResolvedQuote, len(matches))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range matches {
		g.Go(func() error {
			quote, err := s.resolveCandidate(gctx, m.Product, parsed.PrintOption, preferred, parsed.Quantity)
			if err != nil {
				return err
			}
			quotes[i] = quote
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &QuoteResponse{Outcome: OutcomeOK}
	for i, m := range matches {
		if quotes[i] == nil {
			continue
		}
		resp.Results = append(resp.Results, &CandidateQuote{
			Product:    m.Product,
			Confidence: m.Confidence,
			Quote:      quotes[i],
		})
	}
	if len(resp.Results) == 0 {
		resp.Outcome = OutcomeNoPriceForVariant
		return resp, nil
	}

	alternatives, err := s.alts.Find(ctx, resp.Results[0].Quote.ProductName, parsed.Quantity, alternativeLimit)
	if err != nil {
		return nil, err
	}
	resp.Alternatives = alternatives
	return resp, nil
}

func (s *service) ResolveStructured(ctx context.Context, req StructuredRequest) (*QuoteResponse, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, errx.Invalid("product_name is required")
	}
	preferred := catalog.DeliveryLocal
	if req.DeliveryClass != "" {
		class, ok := catalog.ParseDeliveryClass(req.DeliveryClass)
		if !ok {
			return nil, errx.Invalid("unknown delivery_class " + req.DeliveryClass)
		}
		preferred = class
	}

	if cached := s.cache.Get(ctx, req); cached != nil {
		return cached, nil
	}

	p, err := s.repo.GetProductByName(ctx, req.ProductName)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if p == nil {
		return &QuoteResponse{Outcome: OutcomeNoProductMatch}, nil
	}

	quote, err := s.resolveCandidate(ctx, p, req.PrintOption, preferred, req.Quantity)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return &QuoteResponse{Outcome: OutcomeNoPriceForVariant}, nil
	}

	resp := &QuoteResponse{
		Outcome: OutcomeOK,
		Results: []*CandidateQuote{{Product: p, Confidence: ConfidenceExact, Quote: quote}},
	}
	s.cache.Set(ctx, req, resp)
	return resp, nil
}

// resolveCandidate runs one product through print-option resolution and the
// delivery cascade. Print options are recorded per delivery class, so when
// the preferred class has none recorded the same priority order is walked to
// find the first class that does; the cascade then starts there. A demanded
// colour notation that the resolved option lacks drops the candidate rather
// than substituting an unrelated print method.
func (s *service) resolveCandidate(ctx context.Context, p *catalog.Product, printText string, preferred catalog.DeliveryClass, quantity int) (*ResolvedQuote, error) {
	var option string
	start := preferred
	for _, class := range cascadeOrder(preferred) {
		opt, err := s.prints.Resolve(ctx, p.Name, printText, class)
		if err != nil {
			return nil, err
		}
		if opt != "" {
			option = opt
			start = class
			break
		}
	}
	if option == "" {
		return nil, nil
	}

	if want := ColorNotation(printText); want != "" && !HasColorNotation(option, want) {
		return nil, nil
	}

	return s.cascade.Resolve(ctx, p.Name, option, start, quantity)
}

// suggestions is a loose substring search for user correction: the whole
// query first, then each significant word. No validation filter applies.
func (s *service) suggestions(ctx context.Context, product string) ([]string, error) {
	terms := append([]string{product}, significantWords(product)...)
	seen := map[string]bool{}
	var names []string
	for _, term := range terms {
		loose, err := s.repo.SearchProductsBySubstring(ctx, term, suggestionLimit)
		if err != nil {
			return nil, errx.WrapStore(err)
		}
		for _, p := range loose {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			names = append(names, p.Name)
			if len(names) >= suggestionLimit {
				return names, nil
			}
		}
	}
	return names, nil
}

// parseLeadTime maps a free-text delivery preference onto a delivery class.
// Unrecognised or absent preferences default to local, the fastest class.
func parseLeadTime(leadTime string) catalog.DeliveryClass {
	text := strings.ToLower(strings.TrimSpace(leadTime))
	if text == "" {
		return catalog.DeliveryLocal
	}
	if class, ok := catalog.ParseDeliveryClass(text); ok {
		return class
	}
	switch {
	case strings.Contains(text, "sea"), strings.Contains(text, "ship"), strings.Contains(text, "boat"):
		return catalog.DeliveryOverseasSea
	case strings.Contains(text, "air"), strings.Contains(text, "fly"), strings.Contains(text, "flight"):
		return catalog.DeliveryOverseasAir
	default:
		return catalog.DeliveryLocal
	}
}
