package tools

import (
	"context"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PullToolset exposes pull request listing and creation.
func PullToolset(deps Deps) Toolset {
	t := &pullTools{deps: deps}
	return Toolset{
		Name: "pulls",
		Read: []server.ServerTool{
			{Tool: listPullRequestsTool(), Handler: t.listPullRequests},
		},
		Write: []server.ServerTool{
			{Tool: createPullRequestTool(), Handler: t.createPullRequest},
		},
	}
}

type pullTools struct {
	deps Deps
}

func listPullRequestsTool() mcp.Tool {
	return mcp.NewTool(
		"list_pull_requests",
		mcp.WithDescription("List pull requests in a repository"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("state",
			mcp.Description("Pull request state filter"),
			mcp.Enum("open", "closed", "all"),
			mcp.DefaultString("open")),
		mcp.WithString("head", mcp.Description("Filter by head, in user:ref-name form")),
		mcp.WithString("base", mcp.Description("Filter by base branch name")),
		mcp.WithString("sort",
			mcp.Description("Sort field"),
			mcp.Enum("created", "updated", "popularity", "long-running"),
			mcp.DefaultString("created")),
		mcp.WithString("direction",
			mcp.Description("Sort direction"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)"), mcp.DefaultNumber(defaultPerPage)),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.DefaultNumber(1)),
	)
}

func (t *pullTools) listPullRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	repo, err := requireString(args, "repo")
	if err != nil {
		return invalidArgument(err), nil
	}
	state, err := optEnum(args, "state", "open", "open", "closed", "all")
	if err != nil {
		return invalidArgument(err), nil
	}
	sort, err := optEnum(args, "sort", "created", "created", "updated", "popularity", "long-running")
	if err != nil {
		return invalidArgument(err), nil
	}
	direction, err := optEnum(args, "direction", "desc", "asc", "desc")
	if err != nil {
		return invalidArgument(err), nil
	}

	opts := &github.PullRequestListOptions{
		State:       state,
		Head:        optString(args, "head", ""),
		Base:        optString(args, "base", ""),
		Sort:        sort,
		Direction:   direction,
		ListOptions: listOptions(args),
	}
	pulls, _, err := t.deps.Client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "list_pull_requests", err), nil
	}

	out := make([]pullSummary, 0, len(pulls))
	for _, p := range pulls {
		out = append(out, shapePullSummary(p))
	}
	return jsonResult(out), nil
}

func createPullRequestTool() mcp.Tool {
	return mcp.NewTool(
		"create_pull_request",
		mcp.WithDescription("Open a pull request"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Pull request title")),
		mcp.WithString("head", mcp.Required(), mcp.Description("Branch with the changes")),
		mcp.WithString("base", mcp.Required(), mcp.Description("Branch to merge into")),
		mcp.WithString("body", mcp.Description("Pull request body in Markdown")),
		mcp.WithBoolean("draft", mcp.Description("Open as a draft"), mcp.DefaultBool(false)),
		mcp.WithBoolean("maintainer_can_modify", mcp.Description("Allow maintainer edits")),
	)
}

func (t *pullTools) createPullRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	repo, err := requireString(args, "repo")
	if err != nil {
		return invalidArgument(err), nil
	}
	title, err := requireString(args, "title")
	if err != nil {
		return invalidArgument(err), nil
	}
	head, err := requireString(args, "head")
	if err != nil {
		return invalidArgument(err), nil
	}
	base, err := requireString(args, "base")
	if err != nil {
		return invalidArgument(err), nil
	}

	pullReq := &github.NewPullRequest{
		Title: github.String(title),
		Head:  github.String(head),
		Base:  github.String(base),
		Draft: github.Bool(optBool(args, "draft", false)),
	}
	if body := optString(args, "body", ""); body != "" {
		pullReq.Body = github.String(body)
	}
	if v, ok := args["maintainer_can_modify"].(bool); ok {
		pullReq.MaintainerCanModify = github.Bool(v)
	}

	pull, _, err := t.deps.Client.PullRequests.Create(ctx, owner, repo, pullReq)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "create_pull_request", err), nil
	}
	return jsonResult(shapeCreatedPull(pull)), nil
}
