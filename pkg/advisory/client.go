// Package advisory wraps the external text-generation API used for product
// descriptions and restock suggestions.
//
// The advisory service is best-effort only: it never touches inventory state,
// and every failure mode (missing configuration, network error, bad response)
// degrades to a fixed fallback string instead of an error. Callers can treat
// the returned text as always usable.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
)

// Fallback strings returned when the advisory API cannot be used.
const (
	FallbackNotConfigured = "The advisory feature is not configured. Set ADVISORY_API_URL and ADVISORY_API_KEY to enable it."
	FallbackDescription   = "Description generation is temporarily unavailable. Please write a description manually."
	FallbackRestock       = "Restock suggestions are temporarily unavailable. Review the low-stock list manually."
	NoLowStockMessage     = "No items are running low, so there is nothing to restock."
)

// LowStockItem is the slice of product state the restock prompt needs.
type LowStockItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Client calls an OpenAI-compatible chat-completions endpoint.
// A zero-value URL disables the client; both methods then return
// FallbackNotConfigured without any network activity.
type Client struct {
	url     string
	apiKey  string
	model   string
	httpc   *http.Client
	log     logger.Logger
	enabled bool
}

// NewClient builds a Client from config. Missing URL or key disables the
// client rather than failing startup.
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	timeout := time.Duration(cfg.AdvisoryTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:     cfg.AdvisoryAPIURL,
		apiKey:  cfg.AdvisoryAPIKey,
		model:   cfg.AdvisoryModel,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
		enabled: cfg.AdvisoryAPIURL != "" && cfg.AdvisoryAPIKey != "",
	}
}

// GenerateDescription returns marketing copy for a product, or a fallback
// string on any failure.
func (c *Client) GenerateDescription(ctx context.Context, name, category, keywords string) string {
	if !c.enabled {
		return FallbackNotConfigured
	}

	prompt := fmt.Sprintf(`Write a short, compelling product description for an e-commerce listing.
- Product name: %s
- Category: %s
- Keywords: %s

The description must be professional and engaging. Do not repeat the product name or category; write only the description body.`,
		name, category, keywords)

	text, err := c.complete(ctx, prompt, 0.7, 150)
	if err != nil {
		c.log.WarnContext(ctx, "advisory: description generation failed", "error", err)
		return FallbackDescription
	}
	return text
}

// SuggestRestock returns a short restock-priority summary for the given
// low-stock items, or a fallback string on any failure.
func (c *Client) SuggestRestock(ctx context.Context, items []LowStockItem) string {
	if !c.enabled {
		return FallbackNotConfigured
	}
	if len(items) == 0 {
		return NoLowStockMessage
	}

	var list strings.Builder
	for _, it := range items {
		fmt.Fprintf(&list, "- %s (remaining: %d, price: %s)\n", it.Name, it.Quantity, it.Price.StringFixed(0))
	}

	prompt := fmt.Sprintf(`As a warehouse management expert, analyze this list of low-stock items and suggest which to prioritize for restocking.

Low-stock items:
%s
Give a concise, professional summary of 2-3 sentences focused on the main recommendations.`,
		list.String())

	text, err := c.complete(ctx, prompt, 0.5, 200)
	if err != nil {
		c.log.WarnContext(ctx, "advisory: restock suggestion failed", "error", err)
		return FallbackRestock
	}
	return text
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call advisory API: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisory API returned %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("advisory API returned no choices")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("advisory API returned empty text")
	}
	return text, nil
}
