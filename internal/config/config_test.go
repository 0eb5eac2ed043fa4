package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CALABASH_AUTH_CODE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CALABASH_DB", "")
	t.Setenv("CALABASH_DEV_MODE", "")

	cfg := Load()

	if cfg.AuthorizationCode != DefaultAuthorizationCode {
		t.Errorf("auth code = %q, want default", cfg.AuthorizationCode)
	}
	if cfg.DevMode {
		t.Error("dev mode should default to false")
	}
	if cfg.DBPath != "" {
		t.Errorf("db path = %q, want empty", cfg.DBPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CALABASH_AUTH_CODE", "ROTATED-CODE-1")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CALABASH_DB", "/tmp/custom.db")
	t.Setenv("CALABASH_DEV_MODE", "true")

	cfg := Load()

	if cfg.AuthorizationCode != "ROTATED-CODE-1" {
		t.Errorf("auth code = %q, want ROTATED-CODE-1", cfg.AuthorizationCode)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("gemini key = %q, want test-key", cfg.GeminiAPIKey)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if !cfg.DevMode {
		t.Error("dev mode should be true")
	}
}
