package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SQLITE_PATH", "")

	cfg := Load()
	if cfg.Addr != ":3000" {
		t.Fatalf("unexpected default addr: %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("unexpected default api base url: %q", cfg.APIBaseURL)
	}
	if cfg.SQLitePath != "pharmadesk.db" {
		t.Fatalf("unexpected default sqlite path: %q", cfg.SQLitePath)
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000/api/v1/")

	cfg := Load()
	if cfg.APIBaseURL != "http://backend:9000/api/v1" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
}
