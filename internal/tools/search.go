package tools

import (
	"context"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SearchToolset exposes global repository and issue search.
func SearchToolset(deps Deps) Toolset {
	t := &searchTools{deps: deps}
	return Toolset{
		Name: "search",
		Read: []server.ServerTool{
			{Tool: searchRepositoriesTool(), Handler: t.searchRepositories},
			{Tool: searchIssuesTool(), Handler: t.searchIssues},
		},
	}
}

type searchTools struct {
	deps Deps
}

func searchRepositoriesTool() mcp.Tool {
	return mcp.NewTool(
		"search_repositories",
		mcp.WithDescription("Search repositories across GitHub"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query using GitHub search syntax")),
		mcp.WithString("sort",
			mcp.Description("Sort field"),
			mcp.Enum("stars", "forks", "help-wanted-issues", "updated"),
			mcp.DefaultString("stars")),
		mcp.WithString("order",
			mcp.Description("Sort order"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)"), mcp.DefaultNumber(defaultPerPage)),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.DefaultNumber(1)),
	)
}

func (t *searchTools) searchRepositories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	query, err := requireString(args, "query")
	if err != nil {
		return invalidArgument(err), nil
	}
	sort, err := optEnum(args, "sort", "stars", "stars", "forks", "help-wanted-issues", "updated")
	if err != nil {
		return invalidArgument(err), nil
	}
	order, err := optEnum(args, "order", "desc", "asc", "desc")
	if err != nil {
		return invalidArgument(err), nil
	}

	opts := &github.SearchOptions{
		Sort:        sort,
		Order:       order,
		ListOptions: listOptions(args),
	}
	result, _, err := t.deps.Client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "search_repositories", err), nil
	}

	out := repoSearchResult{
		TotalCount: result.GetTotal(),
		Items:      make([]repoSearchItem, 0, len(result.Repositories)),
	}
	for _, r := range result.Repositories {
		out.Items = append(out.Items, repoSearchItem{
			FullName:        r.GetFullName(),
			Description:     r.GetDescription(),
			HTMLURL:         r.GetHTMLURL(),
			StargazersCount: r.GetStargazersCount(),
			Language:        r.GetLanguage(),
		})
	}
	return jsonResult(out), nil
}

func searchIssuesTool() mcp.Tool {
	return mcp.NewTool(
		"search_issues",
		mcp.WithDescription("Search issues and pull requests across GitHub"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query using GitHub search syntax")),
		mcp.WithString("sort",
			mcp.Description("Sort field"),
			mcp.Enum("created", "updated", "comments"),
			mcp.DefaultString("created")),
		mcp.WithString("order",
			mcp.Description("Sort order"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)"), mcp.DefaultNumber(defaultPerPage)),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.DefaultNumber(1)),
	)
}

func (t *searchTools) searchIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	query, err := requireString(args, "query")
	if err != nil {
		return invalidArgument(err), nil
	}
	sort, err := optEnum(args, "sort", "created", "created", "updated", "comments")
	if err != nil {
		return invalidArgument(err), nil
	}
	order, err := optEnum(args, "order", "desc", "asc", "desc")
	if err != nil {
		return invalidArgument(err), nil
	}

	opts := &github.SearchOptions{
		Sort:        sort,
		Order:       order,
		ListOptions: listOptions(args),
	}
	result, _, err := t.deps.Client.Search.Issues(ctx, query, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "search_issues", err), nil
	}

	out := issueSearchResult{
		TotalCount: result.GetTotal(),
		Items:      make([]issueSearchItem, 0, len(result.Issues)),
	}
	for _, i := range result.Issues {
		out.Items = append(out.Items, issueSearchItem{
			Number:        i.GetNumber(),
			Title:         i.GetTitle(),
			State:         i.GetState(),
			HTMLURL:       i.GetHTMLURL(),
			RepositoryURL: i.GetRepositoryURL(),
		})
	}
	return jsonResult(out), nil
}
