package nlu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/nlu"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    nlu.ParsedQuery
	}{
		{
			name:    "plain JSON",
			content: `{"product":"tote bag","quantity":500,"print_option":"silkscreen","lead_time":"local"}`,
			want:    nlu.ParsedQuery{Product: "tote bag", Quantity: 500, PrintOption: "silkscreen", LeadTime: "local"},
		},
		{
			name: "code-fenced reply",
			content: "```json\n" +
				`{"product": "mug", "quantity": null, "print_option": null, "lead_time": null}` +
				"\n```",
			want: nlu.ParsedQuery{Product: "mug"},
		},
		{
			name:    "quantity as a string with separators",
			content: `{"product":"lanyard","quantity":"1,000"}`,
			want:    nlu.ParsedQuery{Product: "lanyard", Quantity: 1000},
		},
		{
			name:    "prose around the object",
			content: `Here is the extraction: {"product":"cap"} Hope that helps!`,
			want:    nlu.ParsedQuery{Product: "cap"},
		},
		{
			name:    "fractional quantity truncates",
			content: `{"product":"cap","quantity":250.0}`,
			want:    nlu.ParsedQuery{Product: "cap", Quantity: 250},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := nlu.ParseExtraction(tc.content)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseExtractionFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty reply", ""},
		{"no JSON object", "I could not understand the question."},
		{"null product", `{"product":null,"quantity":10}`},
		{"literal null string", `{"product":"null"}`},
		{"malformed JSON", `{"product":"tote bag",`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nlu.ParseExtraction(tc.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, errx.ErrParseFailure)
		})
	}
}
