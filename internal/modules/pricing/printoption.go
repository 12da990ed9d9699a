package pricing

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
)

var colorNotationRe = regexp.MustCompile(`(\d+)\s*[cC]\s*[xX]\s*(\d+)\s*[cC]`)

// ColorNotation extracts the first front/back colour-count pattern from s and
// returns it in the normalised form "2c x 1c", or "" when none is present.
func ColorNotation(s string) string {
	m := colorNotationRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%sc x %sc", m[1], m[2])
}

// HasColorNotation reports whether any colour-count pattern in s normalises
// to exactly want.
func HasColorNotation(s, want string) bool {
	for _, m := range colorNotationRe.FindAllStringSubmatch(s, -1) {
		if fmt.Sprintf("%sc x %sc", m[1], m[2]) == want {
			return true
		}
	}
	return false
}

// keywordRule maps trigger phrases in user text to a substring of a recorded
// print option. Rules are evaluated top-to-bottom and short-circuit: order is
// semantically significant, so this stays an ordered list, not a map.
type keywordRule struct {
	triggers []string
	target   string
}

var keywordRules = []keywordRule{
	{[]string{"no print", "without print", "plain", "blank", "unprinted"}, "no print"},
	{[]string{"silkscreen", "silk screen", "screen print", "screenprint"}, "silkscreen"},
	{[]string{"heat transfer", "vinyl"}, "heat transfer"},
	{[]string{"sublimation", "dye sub"}, "sublimation"},
	{[]string{"embroidery", "embroider", "stitch"}, "embroidery"},
	{[]string{"laser", "engrave", "engraving", "etch"}, "laser"},
	{[]string{"uv print", "uv "}, "uv"},
	{[]string{"pad print"}, "pad print"},
	{[]string{"digital", "full color", "full colour"}, "digital"},
	{[]string{"emboss", "deboss"}, "emboss"},
	{[]string{"foil", "hot stamp"}, "foil"},
}

func (r keywordRule) triggered(text string) bool {
	for _, t := range r.triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// PrintOptionResolver maps free-text print specifications onto the canonical
// print-option strings actually recorded for a product and delivery class.
type PrintOptionResolver struct {
	repo catalog.Repository
}

func NewPrintOptionResolver(repo catalog.Repository) *PrintOptionResolver {
	return &PrintOptionResolver{repo: repo}
}

// Resolve returns the best-matching recorded print option, or "" when the
// product has no options recorded for the delivery class. Signals are tried
// in decreasing precision: colour notation, keyword rules, direct substring,
// then the first recorded option — a caller that did not care about print
// must still get a price. Callers that demanded an explicit colour notation
// must reject a result that lacks it (see HasColorNotation).
func (r *PrintOptionResolver) Resolve(ctx context.Context, productName, userText string, class catalog.DeliveryClass) (string, error) {
	options, err := r.repo.ListPrintOptions(ctx, productName, class)
	if err != nil {
		return "", errx.WrapStore(err)
	}
	if len(options) == 0 {
		return "", nil
	}

	text := strings.ToLower(strings.TrimSpace(userText))

	// Colour notation is the highest-precision signal and bypasses keywords.
	if want := ColorNotation(text); want != "" {
		for _, opt := range options {
			if HasColorNotation(opt, want) {
				return opt, nil
			}
		}
	}

	if text != "" {
		for _, rule := range keywordRules {
			if !rule.triggered(text) {
				continue
			}
			for _, opt := range options {
				if strings.Contains(strings.ToLower(opt), rule.target) {
					return opt, nil
				}
			}
		}

		for _, opt := range options {
			lower := strings.ToLower(opt)
			if strings.Contains(lower, text) || strings.Contains(text, lower) {
				return opt, nil
			}
		}
	}

	return options[0], nil
}
