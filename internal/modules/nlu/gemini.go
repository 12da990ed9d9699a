package nlu

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	logx "github.com/georgemunganga/printa-quotes/pkg/logger"
)

const extractionPrompt = `You extract structured pricing requests from customer messages for a print shop.
Reply with a single JSON object and nothing else:
{"product": string or null, "quantity": number or null, "print_option": string or null, "lead_time": string or null}

- "product" is the product the customer wants priced, as close to their wording as possible.
- "quantity" is the number of pieces, if mentioned.
- "print_option" is the printing specification, e.g. "silkscreen", "no print", "1c x 0c".
- "lead_time" is any delivery or shipping preference, e.g. "local", "by sea", "air freight".
Use null for anything the message does not mention.

Customer message:
`

type geminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor builds the Gemini-backed text-understanding client.
func NewGeminiExtractor(ctx context.Context, cfg Config) (Extractor, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return &geminiExtractor{client: client, model: cfg.Model}, nil
}

func (e *geminiExtractor) Extract(ctx context.Context, text string) (*ParsedQuery, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(extractionPrompt+text),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr(float32(0)),
		})
	if err != nil {
		logx.Error().Err(err).Str("component", "nlu").Msg("extraction request failed")
		return nil, errx.New(err, http.StatusBadGateway, "text understanding service unavailable")
	}

	parsed, err := ParseExtraction(resp.Text())
	if err != nil {
		logx.Warn().Err(err).Str("component", "nlu").Msg("extraction output rejected")
		return nil, err
	}
	return parsed, nil
}
