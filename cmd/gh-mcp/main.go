// gh-mcp — GitHub MCP Server
//
// Exposes GitHub repository, issue, pull request, search, and user operations
// as MCP tools over stdio, for use by AI agents and other MCP clients.
//
// Usage:
//
//	GITHUB_TOKEN=ghp_xxx gh-mcp             # serve over stdio
//	gh-mcp --read-only                      # without mutating tools
//	gh-mcp --toolsets repos,issues          # only selected tool families
//	gh-mcp version                          # print the build version
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RobinCoderZhao/gh-mcp/internal/config"
	"github.com/RobinCoderZhao/gh-mcp/internal/gh"
	"github.com/RobinCoderZhao/gh-mcp/internal/server"
)

var version = "dev"

func main() {
	var (
		configPath string
		host       string
		toolsets   string
		readOnly   bool
	)

	rootCmd := &cobra.Command{
		Use:   "gh-mcp",
		Short: "GitHub MCP Server",
		Long:  "gh-mcp serves GitHub operations as MCP tools over stdio. It requires a GitHub token in GITHUB_TOKEN.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(configPath, host, toolsets, readOnly)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", ".gh-mcp.yaml", "path to the YAML config file")
	rootCmd.Flags().StringVar(&host, "host", "", "GitHub Enterprise base URL (defaults to github.com)")
	rootCmd.Flags().StringVar(&toolsets, "toolsets", "", "comma-separated toolsets to enable (default: all)")
	rootCmd.Flags().BoolVar(&readOnly, "read-only", false, "register only read-only tools")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gh-mcp %s\n", version)
		},
	}
}

func run(configPath, host, toolsets string, readOnly bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override both the file and the environment.
	if host != "" {
		cfg.Host = host
	}
	if toolsets != "" {
		cfg.Toolsets = nil
		for _, part := range strings.Split(toolsets, ",") {
			if p := strings.TrimSpace(part); p != "" {
				cfg.Toolsets = append(cfg.Toolsets, p)
			}
		}
	}
	if readOnly {
		cfg.ReadOnly = true
	}

	logger := newLogger(cfg.LogLevel)

	// Missing credential is the one fatal condition, checked before any
	// transport is opened. The token value itself is never logged.
	if cfg.Token == "" {
		logger.Error("no GitHub token configured; set GITHUB_TOKEN")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := gh.NewClient(ctx, cfg.Token, cfg.Host)
	if err != nil {
		return fmt.Errorf("create GitHub client: %w", err)
	}

	s := server.New(cfg, client, logger, version)
	logger.Info("starting gh-mcp", "version", version, "host", hostLabel(cfg.Host))

	if err := server.RunStdio(ctx, s); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// newLogger builds the diagnostic logger. Log output goes to stderr only:
// stdout belongs to the MCP transport.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func hostLabel(host string) string {
	if host == "" {
		return "github.com"
	}
	return host
}
