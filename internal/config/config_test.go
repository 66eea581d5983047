package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/az-ai-labs/numerizer/numerize"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}

	if cfg.Locale != "en" || cfg.System != "latn" {
		t.Errorf("locale/system = %q/%q, want en/latn", cfg.Locale, cfg.System)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, 1<<20)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.IsDevelopment() {
		t.Error("defaults should not be development")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("NUMERIZE_ADDR", "127.0.0.1:9000")
	t.Setenv("NUMERIZE_CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("NUMERIZE_MAX_BODY_BYTES", "2048")
	t.Setenv("NUMERIZE_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(cfg.Server.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %q, want %q", cfg.Server.CORSOrigins, want)
	}
	if cfg.Server.MaxBodyBytes != 2048 || cfg.Smoketest.Workers != 8 {
		t.Errorf("MaxBodyBytes/Workers = %d/%d", cfg.Server.MaxBodyBytes, cfg.Smoketest.Workers)
	}
	if cfg.LogLevel != "debug" || !cfg.IsDevelopment() {
		t.Errorf("LogLevel/Env = %q/%q", cfg.LogLevel, cfg.Env)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numerize.yaml")
	content := "log_level: warn\nserver:\n  addr: \":7000\"\n  cors_origins: [\"https://x.example\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("NUMERIZE_ADDR", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	if cfg.LogLevel != "warn" || cfg.Server.Addr != ":7000" {
		t.Errorf("LogLevel/Addr = %q/%q", cfg.LogLevel, cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://x.example" {
		t.Errorf("CORSOrigins = %q", cfg.Server.CORSOrigins)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Smoketest.Workers != 4 || cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("defaults lost: workers=%d write_timeout=%v", cfg.Smoketest.Workers, cfg.Server.WriteTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("colour: blue\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		env  map[string]string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml")},
		{name: "unknown key", path: unknown},
		{name: "bad locale", env: map[string]string{"NUMERIZE_LOCALE": "fr"}},
		{name: "bad system", env: map[string]string{"NUMERIZE_SYSTEM": "arab"}},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "bad body size", env: map[string]string{"NUMERIZE_MAX_BODY_BYTES": "lots"}},
		{name: "zero body size", env: map[string]string{"NUMERIZE_MAX_BODY_BYTES": "0"}},
		{name: "zero workers", env: map[string]string{"NUMERIZE_WORKERS": "0"}},
		{name: "bad workers", env: map[string]string{"NUMERIZE_WORKERS": "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Locale = "de"
	if err := cfg.Validate(); !errors.Is(err, numerize.ErrUnsupportedLocale) {
		t.Errorf("Validate() error = %v, want ErrUnsupportedLocale", err)
	}
}

func TestNumerizer(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	n, err := cfg.Numerizer()
	if err != nil {
		t.Fatalf("Numerizer() error = %v", err)
	}
	if got := n.Numerize("sixty six"); got != "66" {
		t.Errorf("Numerize = %q, want 66", got)
	}

	cfg.System = "roman"
	if _, err := cfg.Numerizer(); !errors.Is(err, numerize.ErrUnsupportedNumberingSystem) {
		t.Errorf("Numerizer() error = %v, want ErrUnsupportedNumberingSystem", err)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("NUMERIZE_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NUMERIZE_TEST_DOTENV", "")
	os.Unsetenv("NUMERIZE_TEST_DOTENV")

	if err := LoadDotenv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotenv() error = %v", err)
	}
	if got := os.Getenv("NUMERIZE_TEST_DOTENV"); got != "loaded" {
		t.Errorf("NUMERIZE_TEST_DOTENV = %q, want %q", got, "loaded")
	}
}
