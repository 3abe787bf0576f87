package tools

import (
	"context"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
)

func getFileContentsTool() mcp.Tool {
	return mcp.NewTool(
		"get_file_contents",
		mcp.WithDescription("Get the contents of a file or directory in a repository"),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Repository owner")),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository name")),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file or directory")),
		mcp.WithString("ref", mcp.Description("Branch, tag, or commit SHA (defaults to the default branch)")),
	)
}

// getFileContents resolves the upstream response into exactly one of three
// shapes: a directory listing, a decoded file, or a typed reference for
// symlinks and submodules.
func (t *repoTools) getFileContents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	owner, err := requireString(args, "owner")
	if err != nil {
		return invalidArgument(err), nil
	}
	repo, err := requireString(args, "repo")
	if err != nil {
		return invalidArgument(err), nil
	}
	path, err := requireString(args, "path")
	if err != nil {
		return invalidArgument(err), nil
	}

	var opts *github.RepositoryContentGetOptions
	if ref := optString(args, "ref", ""); ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, dir, _, err := t.deps.Client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "get_file_contents", err), nil
	}

	switch {
	case dir != nil:
		entries := make([]dirEntry, 0, len(dir))
		for _, e := range dir {
			entries = append(entries, dirEntry{
				Name: e.GetName(),
				Path: e.GetPath(),
				Type: e.GetType(),
				Size: e.GetSize(),
			})
		}
		return jsonResult(entries), nil

	case file != nil && file.GetType() == "file":
		// Upstream delivers file bodies base64-encoded; GetContent decodes.
		decoded, err := file.GetContent()
		if err != nil {
			return upstreamFailure(t.deps.Logger, "get_file_contents", err), nil
		}
		return jsonResult(fileContents{
			Name:    file.GetName(),
			Path:    file.GetPath(),
			Size:    file.GetSize(),
			SHA:     file.GetSHA(),
			Content: decoded,
		}), nil

	case file != nil:
		// Symlinks and submodules carry no decodable content; report what
		// they are and where they point.
		return jsonResult(otherContents{
			Path: file.GetPath(),
			Type: file.GetType(),
		}), nil

	default:
		return errorResult("GitHub returned no content for " + path), nil
	}
}
