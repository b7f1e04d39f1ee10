package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SOURCE_HTML_PATH", "SOURCE_URL", "RATES_JSON_PATH", "TABLE_SELECTOR",
		"MAX_RETRIES", "FETCH_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultSourceHTMLPath, cfg.SourceHTMLPath)
	assert.Equal(t, "./data/gst-goods-rates.json", cfg.RatesJSONPath)
	assert.Equal(t, "#goods_table", cfg.TableSelector)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 90*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.Debug())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RATES_JSON_PATH", "/tmp/rates.json")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("FETCH_TIMEOUT", "45")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "/tmp/rates.json", cfg.RatesJSONPath)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 45*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.Debug())
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_RETRIES", "many")
	if got := getEnvInt("MAX_RETRIES", 3); got != 3 {
		t.Errorf("getEnvInt = %d; want 3", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Minute},
		{"2m", 2 * time.Minute},
		{"10", 10 * time.Second},
		{"soon", time.Minute},
	}

	for _, tt := range tests {
		t.Setenv("FETCH_TIMEOUT", tt.raw)
		if got := getEnvDuration("FETCH_TIMEOUT", time.Minute); got != tt.want {
			t.Errorf("getEnvDuration(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "rates", PostgresSSLMode: "disable",
	}
	want := "host=db port=5432 user=u password=p dbname=rates sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q; want %q", got, want)
	}
}
