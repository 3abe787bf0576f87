package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gh-mcp.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
host: https://github.example.com
toolsets:
  - repos
  - issues
read_only: true
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Host != "https://github.example.com" {
		t.Fatalf("unexpected host: %q", cfg.Host)
	}
	if len(cfg.Toolsets) != 2 || cfg.Toolsets[0] != "repos" {
		t.Fatalf("unexpected toolsets: %v", cfg.Toolsets)
	}
	if !cfg.ReadOnly {
		t.Fatal("expected read_only true")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if got := cfg.EnabledToolsets(); len(got) != len(AllToolsets) {
		t.Fatalf("expected all toolsets by default, got %v", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "host: https://file.example.com\nread_only: false\n")

	t.Setenv("GITHUB_HOST", "https://env.example.com")
	t.Setenv("GH_MCP_READ_ONLY", "true")
	t.Setenv("GH_MCP_TOOLSETS", "search, users")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Host != "https://env.example.com" {
		t.Fatalf("env override lost: %q", cfg.Host)
	}
	if !cfg.ReadOnly {
		t.Fatal("expected env read-only override")
	}
	if len(cfg.Toolsets) != 2 || cfg.Toolsets[1] != "users" {
		t.Fatalf("unexpected toolsets: %v", cfg.Toolsets)
	}
}

func TestTokenFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_PERSONAL_ACCESS_TOKEN", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Token != "" {
		t.Fatalf("expected empty token, got %q", cfg.Token)
	}

	t.Setenv("GITHUB_PERSONAL_ACCESS_TOKEN", "ghp_fallback")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Token != "ghp_fallback" {
		t.Fatalf("expected fallback token, got %q", cfg.Token)
	}

	t.Setenv("GITHUB_TOKEN", "ghp_primary")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Token != "ghp_primary" {
		t.Fatalf("expected GITHUB_TOKEN to win, got %q", cfg.Token)
	}
}

func TestUnknownToolsetRejected(t *testing.T) {
	path := writeConfig(t, "toolsets: [gists]\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown toolset")
	}
}

func TestUnknownLogLevelRejected(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestMalformedYAMLRejected(t *testing.T) {
	path := writeConfig(t, "toolsets: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
