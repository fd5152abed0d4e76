package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestClient(url string) *Client {
	return NewClient(&config.Config{
		AdvisoryAPIURL:    url,
		AdvisoryAPIKey:    "test-key",
		AdvisoryModel:     "test-model",
		AdvisoryTimeoutMS: 2000,
	}, testLogger())
}

func completionServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		resp := chatResponse{}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: text}}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateDescription_Success(t *testing.T) {
	srv := completionServer(t, "  A bright, grassy organic green tea.  ")
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateDescription(context.Background(), "Organic Green Tea", "Beverages", "fresh, healthy")
	if got != "A bright, grassy organic green tea." {
		t.Errorf("unexpected description: %q", got)
	}
}

func TestGenerateDescription_NotConfigured(t *testing.T) {
	c := NewClient(&config.Config{}, testLogger())
	got := c.GenerateDescription(context.Background(), "X", "Y", "Z")
	if got != FallbackNotConfigured {
		t.Errorf("expected not-configured fallback, got %q", got)
	}
}

func TestGenerateDescription_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got := newTestClient(srv.URL).GenerateDescription(context.Background(), "X", "Y", "Z")
	if got != FallbackDescription {
		t.Errorf("expected description fallback, got %q", got)
	}
}

func TestGenerateDescription_UnreachableFallsBack(t *testing.T) {
	got := newTestClient("http://127.0.0.1:1").GenerateDescription(context.Background(), "X", "Y", "Z")
	if got != FallbackDescription {
		t.Errorf("expected description fallback, got %q", got)
	}
}

func TestSuggestRestock_Success(t *testing.T) {
	srv := completionServer(t, "Prioritize sourdough bread; it sells out fastest.")
	defer srv.Close()

	items := []LowStockItem{
		{Name: "Sourdough Bread", Quantity: 8, Price: decimal.NewFromInt(85000)},
		{Name: "Aged Cheddar", Quantity: 5, Price: decimal.NewFromInt(350000)},
	}
	got := newTestClient(srv.URL).SuggestRestock(context.Background(), items)
	if got != "Prioritize sourdough bread; it sells out fastest." {
		t.Errorf("unexpected suggestion: %q", got)
	}
}

func TestSuggestRestock_NoLowStockItems(t *testing.T) {
	srv := completionServer(t, "should not be called")
	defer srv.Close()

	got := newTestClient(srv.URL).SuggestRestock(context.Background(), nil)
	if got != NoLowStockMessage {
		t.Errorf("expected no-low-stock message, got %q", got)
	}
}

func TestSuggestRestock_EmptyChoicesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	items := []LowStockItem{{Name: "X", Quantity: 1, Price: decimal.NewFromInt(1)}}
	got := newTestClient(srv.URL).SuggestRestock(context.Background(), items)
	if got != FallbackRestock {
		t.Errorf("expected restock fallback, got %q", got)
	}
}
