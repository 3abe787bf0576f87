// Package tools defines the GitHub operations exposed over MCP: each tool
// declares an input schema, validates and defaults its arguments, calls the
// GitHub API, and projects the response into a uniform text envelope.
//
// Tools are grouped into named toolsets so deployments can expose only the
// families they need, and mutating tools are separated from read-only ones so
// a read-only server never registers them.
package tools

import (
	"log/slog"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/server"
)

// Deps carries the shared, read-only dependencies every handler needs. The
// client and logger are fixed at startup; handlers keep no state of their own.
type Deps struct {
	Client *github.Client
	Logger *slog.Logger
}

// Toolset is a named group of related tools, split by mutability.
type Toolset struct {
	Name  string
	Read  []server.ServerTool
	Write []server.ServerTool
}

// Tools returns the registrable tools, omitting mutating ones in read-only
// mode.
func (ts Toolset) Tools(readOnly bool) []server.ServerTool {
	if readOnly {
		return ts.Read
	}
	return append(append([]server.ServerTool{}, ts.Read...), ts.Write...)
}

// All returns every toolset keyed by name.
func All(deps Deps) map[string]Toolset {
	sets := []Toolset{
		RepoToolset(deps),
		IssueToolset(deps),
		PullToolset(deps),
		SearchToolset(deps),
		UserToolset(deps),
	}
	out := make(map[string]Toolset, len(sets))
	for _, ts := range sets {
		out[ts.Name] = ts
	}
	return out
}
