package tools

import (
	"context"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RepoToolset exposes repository listing, retrieval, creation, and file
// content access.
func RepoToolset(deps Deps) Toolset {
	t := &repoTools{deps: deps}
	return Toolset{
		Name: "repos",
		Read: []server.ServerTool{
			{Tool: listRepositoriesTool(), Handler: t.listRepositories},
			{Tool: getRepositoryTool(), Handler: t.getRepository},
			{Tool: getFileContentsTool(), Handler: t.getFileContents},
		},
		Write: []server.ServerTool{
			{Tool: createRepositoryTool(), Handler: t.createRepository},
		},
	}
}

type repoTools struct {
	deps Deps
}

func listRepositoriesTool() mcp.Tool {
	return mcp.NewTool(
		"list_repositories",
		mcp.WithDescription("List repositories for a user or organization"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("User or organization login")),
		mcp.WithString("sort",
			mcp.Description("Sort field"),
			mcp.Enum("created", "updated", "pushed", "full_name"),
			mcp.DefaultString("updated")),
		mcp.WithString("direction",
			mcp.Description("Sort direction"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)"), mcp.DefaultNumber(defaultPerPage)),
		mcp.WithNumber("page", mcp.Description("Page number"), mcp.DefaultNumber(1)),
	)
}

func (t *repoTools) listRepositories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	sort, err := optEnum(args, "sort", "updated", "created", "updated", "pushed", "full_name")
	if err != nil {
		return invalidArgument(err), nil
	}
	direction, err := optEnum(args, "direction", "desc", "asc", "desc")
	if err != nil {
		return invalidArgument(err), nil
	}

	opts := &github.RepositoryListOptions{
		Sort:        sort,
		Direction:   direction,
		ListOptions: listOptions(args),
	}
	repos, _, err := t.deps.Client.Repositories.List(ctx, owner, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "list_repositories", err), nil
	}

	out := make([]repoSummary, 0, len(repos))
	for _, r := range repos {
		out = append(out, shapeRepoSummary(r))
	}
	return jsonResult(out), nil
}

func getRepositoryTool() mcp.Tool {
	return mcp.NewTool(
		"get_repository",
		mcp.WithDescription("Get details for a single repository"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
	)
}

func (t *repoTools) getRepository(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	repo, err := requireString(args, "repo")
	if err != nil {
		return invalidArgument(err), nil
	}

	r, _, err := t.deps.Client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "get_repository", err), nil
	}
	return jsonResult(shapeRepoDetail(r)), nil
}

func createRepositoryTool() mcp.Tool {
	return mcp.NewTool(
		"create_repository",
		mcp.WithDescription("Create a repository under the authenticated user"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("description", mcp.Description("Repository description")),
		mcp.WithBoolean("private", mcp.Description("Create a private repository"), mcp.DefaultBool(false)),
		mcp.WithBoolean("has_issues", mcp.Description("Enable issues"), mcp.DefaultBool(true)),
		mcp.WithBoolean("has_projects", mcp.Description("Enable projects"), mcp.DefaultBool(true)),
		mcp.WithBoolean("has_wiki", mcp.Description("Enable the wiki"), mcp.DefaultBool(true)),
		mcp.WithBoolean("auto_init", mcp.Description("Initialize with an empty README"), mcp.DefaultBool(false)),
	)
}

func (t *repoTools) createRepository(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	name, err := requireString(args, "name")
	if err != nil {
		return invalidArgument(err), nil
	}

	repo := &github.Repository{
		Name:        github.String(name),
		Private:     github.Bool(optBool(args, "private", false)),
		HasIssues:   github.Bool(optBool(args, "has_issues", true)),
		HasProjects: github.Bool(optBool(args, "has_projects", true)),
		HasWiki:     github.Bool(optBool(args, "has_wiki", true)),
		AutoInit:    github.Bool(optBool(args, "auto_init", false)),
	}
	if desc := optString(args, "description", ""); desc != "" {
		repo.Description = github.String(desc)
	}

	created, _, err := t.deps.Client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "create_repository", err), nil
	}
	return jsonResult(shapeCreatedRepo(created)), nil
}
