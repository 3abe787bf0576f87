package tools

import (
	"context"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// IssueToolset exposes issue listing, creation, and updates.
func IssueToolset(deps Deps) Toolset {
	t := &issueTools{deps: deps}
	return Toolset{
		Name: "issues",
		Read: []server.ServerTool{
			{Tool: listIssuesTool(), Handler: t.listIssues},
		},
		Write: []server.ServerTool{
			{Tool: createIssueTool(), Handler: t.createIssue},
			{Tool: updateIssueTool(), Handler: t.updateIssue},
		},
	}
}

type issueTools struct {
	deps Deps
}

func listIssuesTool() mcp.Tool {
	return mcp.NewTool(
		"list_issues",
		mcp.WithDescription("List issues in a repository"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("state",
			mcp.Description("Issue state filter"),
			mcp.Enum("open", "closed", "all"),
			mcp.DefaultString("open")),
		mcp.WithArray("labels",
			mcp.Description("Only issues with all of these labels"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("sort",
			mcp.Description("Sort field"),
			mcp.Enum("created", "updated", "comments"),
			mcp.DefaultString("created")),
		mcp.WithString("direction",
			mcp.Description("Sort direction"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)"), mcp.DefaultNumber(defaultPerPage)),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.DefaultNumber(1)),
	)
}

func (t *issueTools) listIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	labels, err := stringSlice(args, "labels")
	if err != nil {
		return invalidArgument(err), nil
	}
	sort, err := optEnum(args, "sort", "created", "created", "updated", "comments")
	if err != nil {
		return invalidArgument(err), nil
	}
	direction, err := optEnum(args, "direction", "desc", "asc", "desc")
	if err != nil {
		return invalidArgument(err), nil
	}

	opts := &github.IssueListByRepoOptions{
		State:       state,
		Labels:      labels,
		Sort:        sort,
		Direction:   direction,
		ListOptions: listOptions(args),
	}
	issues, _, err := t.deps.Client.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "list_issues", err), nil
	}

	out := make([]issueSummary, 0, len(issues))
	for _, i := range issues {
		out = append(out, shapeIssueSummary(i))
	}
	return jsonResult(out), nil
}

func createIssueTool() mcp.Tool {
	return mcp.NewTool(
		"create_issue",
		mcp.WithDescription("Create an issue in a repository"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Issue title")),
		mcp.WithString("body", mcp.Description("Issue body in Markdown")),
		mcp.WithArray("labels",
			mcp.Description("Labels to apply"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("assignees",
			mcp.Description("Logins to assign"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("milestone", mcp.Description("Milestone number")),
	)
}

func (t *issueTools) createIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	labels, err := stringSlice(args, "labels")
	if err != nil {
		return invalidArgument(err), nil
	}
	assignees, err := stringSlice(args, "assignees")
	if err != nil {
		return invalidArgument(err), nil
	}

	issueReq := &github.IssueRequest{Title: github.String(title)}
	if body := optString(args, "body", ""); body != "" {
		issueReq.Body = github.String(body)
	}
	if labels != nil {
		issueReq.Labels = &labels
	}
	if assignees != nil {
		issueReq.Assignees = &assignees
	}
	if m, ok := args["milestone"].(float64); ok {
		issueReq.Milestone = github.Int(int(m))
	}

	issue, _, err := t.deps.Client.Issues.Create(ctx, owner, repo, issueReq)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "create_issue", err), nil
	}
	return jsonResult(shapeIssueRef(issue)), nil
}

func updateIssueTool() mcp.Tool {
	return mcp.NewTool(
		"update_issue",
		mcp.WithDescription("Update an existing issue; only provided fields change"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithNumber("issue_number", mcp.Required(), mcp.Description("Issue number")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("body", mcp.Description("New body")),
		mcp.WithString("state",
			mcp.Description("New state"),
			mcp.Enum("open", "closed")),
		mcp.WithArray("labels",
			mcp.Description("Replacement label set"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("assignees",
			mcp.Description("Replacement assignee set"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("milestone", mcp.Description("Milestone number")),
	)
}

func (t *issueTools) updateIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	repo, err := requireString(args, "repo")
	if err != nil {
		return invalidArgument(err), nil
	}
	number, err := requireInt(args, "issue_number")
	if err != nil {
		return invalidArgument(err), nil
	}

	// The patch carries only the fields the caller provided.
	issueReq := &github.IssueRequest{}
	if title := optString(args, "title", ""); title != "" {
		issueReq.Title = github.String(title)
	}
	if body := optString(args, "body", ""); body != "" {
		issueReq.Body = github.String(body)
	}
	if _, ok := args["state"]; ok {
		state, err := optEnum(args, "state", "open", "open", "closed")
		if err != nil {
			return invalidArgument(err), nil
		}
		issueReq.State = github.String(state)
	}
	labels, err := stringSlice(args, "labels")
	if err != nil {
		return invalidArgument(err), nil
	}
	if labels != nil {
		issueReq.Labels = &labels
	}
	assignees, err := stringSlice(args, "assignees")
	if err != nil {
		return invalidArgument(err), nil
	}
	if assignees != nil {
		issueReq.Assignees = &assignees
	}
	if m, ok := args["milestone"].(float64); ok {
		issueReq.Milestone = github.Int(int(m))
	}

	issue, _, err := t.deps.Client.Issues.Edit(ctx, owner, repo, number, issueReq)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "update_issue", err), nil
	}
	return jsonResult(shapeUpdatedIssue(issue)), nil
}
