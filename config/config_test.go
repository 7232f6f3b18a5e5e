package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("RABBITMQ_URL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBMaxConnLife != time.Hour {
		t.Errorf("expected DBMaxConnLife 1h, got %v", cfg.DBMaxConnLife)
	}
	if cfg.RabbitMQURL != "" {
		t.Errorf("expected publishing disabled by default, got %q", cfg.RabbitMQURL)
	}
	if cfg.APIPrefix != "" {
		t.Errorf("expected empty API prefix, got %q", cfg.APIPrefix)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DB_MAX_CONN_LIFETIME", "forever")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg := Load()

	if cfg.DBMaxConns != 10 {
		t.Errorf("expected DBMaxConns fallback 10, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMaxConnLife != time.Hour {
		t.Errorf("expected DBMaxConnLife fallback 1h, got %v", cfg.DBMaxConnLife)
	}
	if !cfg.DebugMetricsEnabled {
		t.Error("expected DebugMetricsEnabled fallback true")
	}
}

func TestLoad_GinMode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "release"},
		{raw: "debug", want: "debug"},
		{raw: "test", want: "test"},
		{raw: "verbose", want: "release"},
	}

	for _, tt := range tests {
		t.Setenv("GIN_MODE", tt.raw)
		if got := Load().GinMode; got != tt.want {
			t.Errorf("GIN_MODE=%q: expected %s, got %s", tt.raw, tt.want, got)
		}
	}
}

func TestLoad_TrimsAPIPrefix(t *testing.T) {
	t.Setenv("API_PREFIX", "/api/")

	if got := Load().APIPrefix; got != "/api" {
		t.Fatalf("expected /api, got %q", got)
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Parallel()

	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "dir", DBSSLMode: "disable"}
	if got, want := cfg.PostgresDSN(), "postgres://u:p@db:5433/dir?sslmode=disable"; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	cfg.DatabaseURL = "postgres://other/db"
	if got := cfg.PostgresDSN(); got != "postgres://other/db" {
		t.Fatalf("expected DATABASE_URL to win, got %s", got)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty allows all", raw: "", want: nil},
		{name: "wildcard allows all", raw: "https://a.example, *", want: nil},
		{name: "list", raw: " https://a.example ,https://b.example,, ", want: []string{"https://a.example", "https://b.example"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := (&Config{CORSAllowedOrigins: tt.raw}).CORSOrigins()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
			if tt.want == nil && got != nil {
				t.Fatalf("expected nil, got %v", got)
			}
		})
	}
}
