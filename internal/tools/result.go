package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/RobinCoderZhao/gh-mcp/internal/gh"
)

// Every handler returns one of these envelopes; no error ever propagates to
// the transport as a Go error.

// jsonResult serializes a projected response into the text envelope.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("serialize response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult wraps a message in the uniform error envelope.
func errorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + msg)
}

// invalidArgument converts a validation failure into an error envelope.
func invalidArgument(err error) *mcp.CallToolResult {
	return errorResult(err.Error())
}

// upstreamFailure logs a failed GitHub call and converts it into an error
// envelope. The log line carries the tool name and the raw error, never the
// credential (go-github errors do not embed the token).
func upstreamFailure(logger *slog.Logger, tool string, err error) *mcp.CallToolResult {
	msg := gh.ErrorMessage(err)
	logger.Error("github call failed", "tool", tool, "error", err)
	return errorResult(msg)
}
