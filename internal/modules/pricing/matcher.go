package pricing

import (
	"context"
	"strings"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

// MatchOptions narrows a product match. Limit caps the result count;
// Category, when set, restricts matches to that category.
type MatchOptions struct {
	Limit    int
	Category string
}

const defaultMatchLimit = 10

// Matcher resolves a free-text product query to catalog products, each tagged
// with a confidence tier. Tiers are evaluated in strict priority — exact,
// case-insensitive exact, fuzzy — and evaluation stops at the first tier that
// yields a result, so a short common substring can never shadow an exact hit.
type Matcher struct {
	repo catalog.Repository
}

func NewMatcher(repo catalog.Repository) *Matcher { return &Matcher{repo: repo} }

// Match returns matched products ordered by confidence then catalog order.
// An empty or whitespace-only query returns no results without touching the store.
func (m *Matcher) Match(ctx context.Context, query string, opts MatchOptions) ([]MatchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	// Tier 1: byte-for-byte equality
	p, err := m.repo.GetProductByName(ctx, query)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if p != nil && categoryOK(p, opts.Category) {
		return []MatchResult{{Product: p, Confidence: ConfidenceExact}}, nil
	}

	// Tier 2: equality ignoring case, no substring matching
	p, err = m.repo.GetProductByNameFold(ctx, query)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	if p != nil && categoryOK(p, opts.Category) {
		return []MatchResult{{Product: p, Confidence: ConfidenceExactInsensitive}}, nil
	}

	// Tier 3: fuzzy by significant words
	words := significantWords(query)
	var candidates []*catalog.Product
	if len(words) == 0 {
		// nothing to score against, accept loose substring candidates unfiltered
		candidates, err = m.repo.SearchProductsBySubstring(ctx, query, limit)
	} else {
		candidates, err = m.repo.SearchProductsByWords(ctx, words, limit)
	}
	if err != nil {
		return nil, errx.WrapStore(err)
	}

	var results []MatchResult
	for _, c := range candidates {
		if !categoryOK(c, opts.Category) {
			continue
		}
		if len(words) > 0 && wordOverlap(words, c.Name) < 0.5 {
			continue
		}
		results = append(results, MatchResult{Product: c, Confidence: ConfidenceFuzzy})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func categoryOK(p *catalog.Product, category string) bool {
	return category == "" || p.Category == category
}

const wordCutset = ",.!?;:()[]\"'"

// significantWords splits the query into case-folded words longer than two
// characters, trimming surrounding punctuation.
func significantWords(query string) []string {
	var words []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		w := strings.Trim(f, wordCutset)
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// wordOverlap computes the fraction of query words that have some substring
// overlap, in either direction, with a word of the candidate name. Candidates
// below 0.5 are cross-category false positives and get rejected.
func wordOverlap(queryWords []string, candidateName string) float64 {
	nameWords := strings.Fields(strings.ToLower(candidateName))
	matched := 0
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			nw = strings.Trim(nw, wordCutset)
			if nw == "" {
				continue
			}
			if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryWords))
}
