package hooprelay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Usage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/usage" {
			t.Errorf("path = %q, want /api/usage", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"today":7,"todayRemaining":93,"month":42,"dailyLimit":100}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	snap, err := client.Usage(context.Background())
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if snap.Today != 7 || snap.TodayRemaining != 93 || snap.Month != 42 || snap.DailyLimit != 100 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"hooprelay","usage":{"today":1,"todayRemaining":99,"month":1,"dailyLimit":100}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	h, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.Status != "ok" {
		t.Errorf("Status = %q, want ok", h.Status)
	}
	if h.Service != "hooprelay" {
		t.Errorf("Service = %q, want hooprelay", h.Service)
	}
	if h.Usage.TodayRemaining != 99 {
		t.Errorf("Usage.TodayRemaining = %d, want 99", h.Usage.TodayRemaining)
	}
}

func TestClient_RatingsSeasonForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ratings" {
			t.Errorf("path = %q, want /api/ratings", r.URL.Path)
		}
		if got := r.URL.Query().Get("season"); got != "2024" {
			t.Errorf("season = %q, want 2024", got)
		}
		_, _ = w.Write([]byte(`[{"team":"Gonzaga"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	raw, err := client.Ratings(context.Background(), "2024")
	if err != nil {
		t.Fatalf("Ratings: %v", err)
	}
	if string(raw) != `[{"team":"Gonzaga"}]` {
		t.Errorf("unexpected body: %s", raw)
	}
}

func TestClient_GamesEmptySeasonOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty (proxy applies the default season)", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	if _, err := client.Games(context.Background(), ""); err != nil {
		t.Fatalf("Games: %v", err)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"ODDS_API_KEY not configured"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Odds(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"error":"ODDS_API_KEY not configured"}` {
		t.Errorf("Body = %s", apiErr.Body)
	}
}

func TestClient_RelayedErrorBodyPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"season out of range"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Teams(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"message":"season out of range"}` {
		t.Errorf("relayed body not preserved: %s", apiErr.Body)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/usage" {
			t.Errorf("path = %q, want /api/usage", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"today":0,"todayRemaining":100,"month":0,"dailyLimit":100}`))
	}))
	defer srv.Close()

	client := New(srv.URL + "/")

	if _, err := client.Usage(context.Background()); err != nil {
		t.Fatalf("Usage: %v", err)
	}
}
