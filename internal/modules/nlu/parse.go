package nlu

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
)

// basic safety limits to avoid pathological model outputs
const (
	maxContentLen = 64 * 1024
	maxFieldLen   = 512
)

// ParseExtraction parses the model's JSON reply into a ParsedQuery. The model
// is told to emit bare JSON, but replies are still treated as hostile: size
// capped, code fences stripped, field types coerced. A reply with no product
// is a parse failure, not an empty result.
func ParseExtraction(content string) (*ParsedQuery, error) {
	if len(content) > maxContentLen {
		content = content[:maxContentLen]
	}
	content = stripFences(strings.TrimSpace(content))

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, errx.ParseFailure(errors.New("no JSON object in reply"))
	}

	var raw struct {
		Product     *string         `json:"product"`
		Quantity    json.RawMessage `json:"quantity"`
		PrintOption *string         `json:"print_option"`
		LeadTime    *string         `json:"lead_time"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, errx.ParseFailure(err)
	}

	parsed := &ParsedQuery{
		Product:     cleanField(raw.Product),
		PrintOption: cleanField(raw.PrintOption),
		LeadTime:    cleanField(raw.LeadTime),
		Quantity:    parseQuantity(raw.Quantity),
	}
	if parsed.Product == "" {
		return nil, errx.ParseFailure(errors.New("no product extracted"))
	}
	return parsed, nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanField(p *string) string {
	if p == nil {
		return ""
	}
	s := strings.TrimSpace(*p)
	if len(s) > maxFieldLen {
		s = s[:maxFieldLen]
	}
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

// parseQuantity tolerates a number, a numeric string, or a string with
// thousands separators. Anything else counts as "not mentioned".
func parseQuantity(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n > 0 {
			return int(n)
		}
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
