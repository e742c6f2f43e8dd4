package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/logging/logger"
)

func testSource(url string) *config.Source {
	return &config.Source{BaseURL: url, Token: "secret", Timeout: time.Second}
}

func TestAlertsClient_ListAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/alerts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("missing bearer token, got %q", got)
		}
		if got := r.URL.Query().Get("silenced"); got != "false" {
			t.Errorf("expected silenced=false, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"CPU Usage","severity":"critical","duration":8}]`))
	}))
	defer srv.Close()

	c := NewAlertsClient(testSource(srv.URL), logger.StdLogger())
	silenced := false

	alerts, err := c.ListAlerts(context.Background(), &AlertListOptions{Silenced: &silenced})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 || alerts[0]["severity"] != "critical" {
		t.Fatalf("unexpected alerts: %v", alerts)
	}
}

func TestAlertsClient_SilenceLifecycle(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v2/silences":
			if got := r.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("expected json content type, got %q", got)
			}
			w.Write([]byte(`{"silenceID":"abc-123"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v2/silence/abc-123":
			w.Write([]byte(`{"id":"abc-123","status":{"state":"active"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v2/silence/abc-123":
			deleted = true
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewAlertsClient(testSource(srv.URL), logger.StdLogger())

	created, err := c.CreateSilence(ctx, map[string]any{"comment": "maintenance"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created["silenceID"] != "abc-123" {
		t.Fatalf("unexpected create response: %v", created)
	}

	got, err := c.GetSilence(ctx, "abc-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["id"] != "abc-123" {
		t.Fatalf("unexpected silence: %v", got)
	}

	if err := c.DeleteSilence(ctx, "abc-123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("delete never reached upstream")
	}
}

func TestMetricsClient_ListRulesFlattensGroups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/rules" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"groups":[
			{"name":"node","file":"node.yaml","rules":[{"name":"HighCPU","type":"alerting"}]},
			{"name":"disk","file":"disk.yaml","rules":[{"name":"DiskFull","type":"alerting"},{"name":"disk:usage","type":"recording"}]}
		]}}`))
	}))
	defer srv.Close()

	c := NewMetricsClient(testSource(srv.URL), logger.StdLogger())

	rules, err := c.ListRules(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 flattened rules, got %d", len(rules))
	}
	if rules[0]["group"] != "node" || rules[0]["file"] != "node.yaml" {
		t.Errorf("rule not annotated with its group: %v", rules[0])
	}
	if rules[2]["name"] != "disk:usage" {
		t.Errorf("unexpected rule order: %v", rules[2])
	}
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "silence not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewAlertsClient(testSource(srv.URL), logger.StdLogger())

	_, err := c.GetSilence(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestClient_BreakerOpensOnRepeatedFailure(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewAlertsClient(testSource(srv.URL), logger.StdLogger())

	for i := 0; i < 3; i++ {
		if _, err := c.ListAlerts(ctx, nil); err == nil {
			t.Fatal("expected upstream failure")
		}
	}

	_, err := c.ListAlerts(ctx, nil)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("open breaker must not reach upstream, saw %d hits", hits)
	}
}
