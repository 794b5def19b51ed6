package receipt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
)

const receiptPrompt = `Extract the purchase from this receipt image. Respond with only a JSON object:
{"amount": 12.34, "date": "2006-01-02", "category": "Food", "note": "Merchant name"}
Omit any key you cannot read from the receipt. Pick category from common expense categories.`

// anthropicParser implements Parser against the Anthropic messages API.
type anthropicParser struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// NewAnthropicParser creates a receipt parser backed by the Anthropic API.
func NewAnthropicParser(cfg Config) (Parser, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key is required", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}

	return &anthropicParser{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     strings.TrimRight(baseURL, "/"),
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Parse sends the image to the vision model and extracts whatever fields
// it could read.
func (p *anthropicParser) Parse(ctx context.Context, image []byte, mediaType string) (Partial, error) {
	requestBody := map[string]any{
		"model":       p.model,
		"max_tokens":  p.maxTokens,
		"temperature": p.temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": mediaType,
							"data":       base64.StdEncoding.EncodeToString(image),
						},
					},
					{
						"type": "text",
						"text": receiptPrompt,
					},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return Partial{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", strings.NewReader(string(jsonBody)))
	if err != nil {
		return Partial{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Partial{}, fmt.Errorf("%w: %v", common.ErrReceiptParse, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Partial{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return Partial{}, common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return Partial{}, fmt.Errorf("%w: API error (status %d): %s", common.ErrReceiptParse, resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return Partial{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(response.Content) == 0 {
		return Partial{}, fmt.Errorf("%w: no content in response", common.ErrReceiptParse)
	}

	return parsePartial(response.Content[0].Text)
}

// parsePartial extracts whichever draft fields the model reported.
func parsePartial(content string) (Partial, error) {
	var raw struct {
		Amount   *float64 `json:"amount"`
		Date     *string  `json:"date"`
		Category *string  `json:"category"`
		Note     *string  `json:"note"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Partial{}, fmt.Errorf("%w: malformed extraction: %v", common.ErrReceiptParse, err)
	}

	var out Partial
	if raw.Amount != nil {
		amount := decimal.NewFromFloat(*raw.Amount)
		if amount.IsPositive() {
			out.Amount = &amount
		}
	}
	if raw.Date != nil {
		if ts, err := time.ParseInLocation("2006-01-02", *raw.Date, time.Local); err == nil {
			out.Date = &ts
		}
	}
	if raw.Category != nil && *raw.Category != "" {
		out.Category = raw.Category
	}
	if raw.Note != nil && *raw.Note != "" {
		out.Note = raw.Note
	}

	return out, nil
}

// cleanMarkdownWrapper strips a ```json fence the model sometimes wraps
// around its output.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}
