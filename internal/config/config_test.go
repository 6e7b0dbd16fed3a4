package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("AUTH_CRON_SECRET", "cron-secret-16-chars+")
	t.Setenv("GEN_OPENAI_API_KEY", "sk-test")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  cron_secret: "cron-secret-16-chars+"

generation:
  openai_api_key: "sk-yaml"
  provider_timeout: "20s"
  judge_timeout: "10s"

publish:
  timeout: "15s"
  retry_delay: "10m"

scanner:
  concurrency: 2
  sweep_limit: 25

log:
  level: "debug"
  format: "text"
`

func TestLoad_EnvOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("explicit missing CONFIG_PATH should fail")
	}

	// Without CONFIG_PATH the loader falls back to env + defaults.
	t.Setenv("CONFIG_PATH", "")
	os.Unsetenv("CONFIG_PATH")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Generation.ProviderTimeout != 45*time.Second {
		t.Errorf("default provider timeout: got %v", cfg.Generation.ProviderTimeout)
	}
	if cfg.Publish.RetryDelay != 5*time.Minute {
		t.Errorf("default retry delay: got %v", cfg.Publish.RetryDelay)
	}
	if cfg.Scanner.Concurrency != 4 {
		t.Errorf("default scanner concurrency: got %d", cfg.Scanner.Concurrency)
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	// ENV wins over YAML.
	if cfg.Server.Port != 7070 {
		t.Errorf("port: got %d, want 7070 (env override)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host: got %q, want yaml value", cfg.Server.Host)
	}
	if cfg.Generation.ProviderTimeout != 20*time.Second {
		t.Errorf("provider timeout: got %v, want 20s from yaml", cfg.Generation.ProviderTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q, want debug", cfg.Log.Level)
	}
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	validEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "short")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("short jwt secret should fail validation")
	}
}

func TestValidate_NoProviders(t *testing.T) {
	validEnv(t)
	t.Setenv("GEN_OPENAI_API_KEY", "")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("config without any generation provider should fail validation")
	}
}

func TestGenerationConfig_ProviderNames(t *testing.T) {
	t.Parallel()

	g := GenerationConfig{
		OpenAIAPIKey:    "a",
		GeminiAPIKey:    "b",
		AnthropicAPIKey: "c",
	}
	names := g.ProviderNames()
	if len(names) != 3 {
		t.Fatalf("provider names: got %v, want 3 entries", names)
	}

	if got := (GenerationConfig{}).ProviderNames(); len(got) != 0 {
		t.Errorf("no keys should yield no providers, got %v", got)
	}
}
