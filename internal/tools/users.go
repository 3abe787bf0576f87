package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// UserToolset exposes user profile lookup.
func UserToolset(deps Deps) Toolset {
	t := &userTools{deps: deps}
	return Toolset{
		Name: "users",
		Read: []server.ServerTool{
			{Tool: getUserTool(), Handler: t.getUser},
		},
	}
}

type userTools struct {
	deps Deps
}

func getUserTool() mcp.Tool {
	return mcp.NewTool(
		"get_user",
		mcp.WithDescription("Get a GitHub user's public profile"),
		mcp.WithString("username", mcp.Required(), mcp.Description("User login")),
	)
}

func (t *userTools) getUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argMap(req)

	username, err := requireString(args, "username")
	if err != nil {
		return invalidArgument(err), nil
	}

	user, _, err := t.deps.Client.Users.Get(ctx, username)
	if err != nil {
		return upstreamFailure(t.deps.Logger, "get_user", err), nil
	}
	return jsonResult(shapeUserProfile(user)), nil
}
