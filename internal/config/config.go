// Package config loads the gh-mcp configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllToolsets lists every tool family, in registration order.
var AllToolsets = []string{"repos", "issues", "pulls", "search", "users"}

// Config holds the server configuration.
//
// The GitHub token is intentionally not a YAML field: it is read from the
// environment only, so a committed config file can never leak a credential.
type Config struct {
	// Host is an optional GitHub Enterprise base URL. Empty means github.com.
	Host string `yaml:"host"`

	// Toolsets selects which tool families are registered. Empty means all.
	Toolsets []string `yaml:"toolsets"`

	// ReadOnly skips registration of mutating tools.
	ReadOnly bool `yaml:"read_only"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`

	// Token is the GitHub bearer credential, environment-only.
	Token string `yaml:"-"`
}

// Load reads the config file at path if it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{LogLevel: "info"}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env-only configuration.
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("GITHUB_HOST"); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv("GH_MCP_TOOLSETS"); ok {
		cfg.Toolsets = splitList(v)
	}
	if v, ok := os.LookupEnv("GH_MCP_READ_ONLY"); ok {
		cfg.ReadOnly = strings.EqualFold(v, "true") || v == "1"
	}
	if v, ok := os.LookupEnv("GH_MCP_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	cfg.Token = os.Getenv("GITHUB_TOKEN")
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_PERSONAL_ACCESS_TOKEN")
	}
}

func (c *Config) validate() error {
	valid := make(map[string]bool, len(AllToolsets))
	for _, ts := range AllToolsets {
		valid[ts] = true
	}
	for _, ts := range c.Toolsets {
		if !valid[ts] {
			return fmt.Errorf("unknown toolset %q (valid: %s)", ts, strings.Join(AllToolsets, ", "))
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// EnabledToolsets returns the toolsets to register, defaulting to all.
func (c *Config) EnabledToolsets() []string {
	if len(c.Toolsets) == 0 {
		return AllToolsets
	}
	return c.Toolsets
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
