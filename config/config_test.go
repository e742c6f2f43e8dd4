package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app_name: monigate-test
run_mode: debug
port: 9090
logger:
  format: text
  output: stderr
upstream:
  alerts:
    base_url: http://alerts.local:9093
    token: sekrit
    timeout: 5s
  metrics:
    base_url: http://metrics.local:9090
cache:
  addr: localhost:6379
  ttl: 45s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppName != "monigate-test" {
		t.Errorf("app_name = %q", cfg.AppName)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.Upstream == nil || cfg.Upstream.Alerts == nil {
		t.Fatal("upstream section missing")
	}
	if cfg.Upstream.Alerts.BaseURL != "http://alerts.local:9093" {
		t.Errorf("alerts base_url = %q", cfg.Upstream.Alerts.BaseURL)
	}
	if cfg.Upstream.Alerts.Timeout != 5*time.Second {
		t.Errorf("alerts timeout = %v", cfg.Upstream.Alerts.Timeout)
	}
	if cfg.Upstream.Metrics.Timeout != 10*time.Second {
		t.Errorf("metrics timeout default = %v", cfg.Upstream.Metrics.Timeout)
	}
	if cfg.Cache.TTL != 45*time.Second {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// No config.yaml on the search path: defaults apply.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port default = %d", cfg.Port)
	}
	if cfg.AppName != "monigate" {
		t.Errorf("app_name default = %q", cfg.AppName)
	}
	if cfg.Logger == nil || cfg.Logger.Format != "json" {
		t.Errorf("logger defaults missing: %+v", cfg.Logger)
	}
}
