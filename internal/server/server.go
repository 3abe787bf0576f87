// Package server is the composition root: it assembles the enabled toolsets
// into an MCP server and runs it over stdio. No tool logic lives here.
package server

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/server"

	"github.com/RobinCoderZhao/gh-mcp/internal/config"
	"github.com/RobinCoderZhao/gh-mcp/internal/tools"
)

// Assemble resolves the configured toolsets into the final tool list,
// honoring read-only mode. Registration order follows config.AllToolsets so
// the advertised tool list is deterministic.
func Assemble(cfg *config.Config, deps tools.Deps) []server.ServerTool {
	enabled := make(map[string]bool)
	for _, name := range cfg.EnabledToolsets() {
		enabled[name] = true
	}

	sets := tools.All(deps)
	var out []server.ServerTool
	for _, name := range config.AllToolsets {
		if !enabled[name] {
			continue
		}
		out = append(out, sets[name].Tools(cfg.ReadOnly)...)
	}
	return out
}

// New builds the MCP server with all configured tools registered.
func New(cfg *config.Config, client *github.Client, logger *slog.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"gh-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	deps := tools.Deps{Client: client, Logger: logger}
	registered := Assemble(cfg, deps)
	s.AddTools(registered...)

	logger.Info("tools registered",
		"count", len(registered),
		"toolsets", cfg.EnabledToolsets(),
		"read_only", cfg.ReadOnly)
	return s
}

// RunStdio serves MCP over stdin/stdout until the stream closes or the
// context is cancelled. Diagnostics go to stderr; stdout carries only the
// protocol.
func RunStdio(ctx context.Context, s *server.MCPServer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(os.Stderr, "[gh-mcp] ", log.LstdFlags))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
