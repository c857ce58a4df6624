package push

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
	"github.com/immxrko/fc-patron-sub000/internal/platform/resilience"
	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

func testEvent() usecase.ResultSavedEvent {
	return usecase.ResultSavedEvent{
		MatchID:      42,
		SeasonID:     1,
		OpponentName: "SV Donau",
		Squad:        "KM",
		Date:         calendar.New(2025, time.August, 16),
		Result:       "3:1",
		IsHome:       true,
	}
}

func TestNotifyResultSaved_DeliversPayload(t *testing.T) {
	var gotAuth, gotEventID string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotEventID = r.Header.Get("X-Event-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL: srv.URL,
		Token:      "hook-token",
		Timeout:    2 * time.Second,
	}, nil, logging.NewNop())

	if err := client.NotifyResultSaved(t.Context(), testEvent()); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if gotAuth != "Bearer hook-token" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if gotEventID == "" {
		t.Fatalf("expected X-Event-Id header")
	}

	var payload map[string]any
	if err := sonic.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got, _ := payload["matchId"].(float64); got != 42 {
		t.Fatalf("expected matchId 42, got %v", payload["matchId"])
	}
	if got, _ := payload["result"].(string); got != "3:1" {
		t.Fatalf("expected result 3:1, got %v", payload["result"])
	}
	if got, _ := payload["date"].(string); got != "2025-08-16" {
		t.Fatalf("expected date 2025-08-16, got %v", payload["date"])
	}
}

func TestNotifyResultSaved_ServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{WebhookURL: srv.URL, Timeout: 2 * time.Second}, nil, logging.NewNop())

	if err := client.NotifyResultSaved(t.Context(), testEvent()); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestNotifyResultSaved_CircuitOpensAfterFailures(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		WebhookURL: srv.URL,
		Timeout:    2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil, logging.NewNop())

	for i := 0; i < 2; i++ {
		if err := client.NotifyResultSaved(t.Context(), testEvent()); err == nil {
			t.Fatalf("expected failure on call %d", i+1)
		}
	}
	if err := client.NotifyResultSaved(t.Context(), testEvent()); err == nil {
		t.Fatalf("expected circuit breaker rejection")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", got)
	}
}

func TestNotifyResultSaved_MissingWebhookURL(t *testing.T) {
	client := NewClient(ClientConfig{}, nil, logging.NewNop())
	if err := client.NotifyResultSaved(t.Context(), testEvent()); err == nil {
		t.Fatalf("expected error when webhook URL is unset")
	}
}
