package tools

import (
	"fmt"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
)

// Pagination defaults mirror the GitHub REST API's own conventions. They are
// deliberately kept in one place: if GitHub ever changes its defaults, this
// is the only file to touch.
const (
	defaultPerPage = 30
	maxPerPage     = 100
)

// argMap extracts the raw argument mapping from a tool call. A call without
// arguments yields an empty map so lookups stay nil-safe.
func argMap(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	if args == nil {
		args = make(map[string]any)
	}
	return args
}

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return s, nil
}

func requireInt(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing required argument %q", key)
	}
	// JSON numbers decode as float64.
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number", key)
	}
	return int(f), nil
}

func optString(args map[string]any, key, def string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return def
}

func optInt(args map[string]any, key string, def int) int {
	if f, ok := args[key].(float64); ok {
		return int(f)
	}
	return def
}

func optBool(args map[string]any, key string, def bool) bool {
	if b, ok := args[key].(bool); ok {
		return b
	}
	return def
}

// optEnum applies the default when absent and rejects values outside the
// closed set. Enum checks run before any upstream call.
func optEnum(args map[string]any, key, def string, allowed ...string) (string, error) {
	v := optString(args, key, def)
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid value %q for argument %q (expected one of %v)", v, key, allowed)
}

// stringSlice reads an optional array-of-strings argument. A missing key
// returns nil; a present key with non-string elements is an error.
func stringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// listOptions builds pagination options with the per_page clamp applied.
func listOptions(args map[string]any) github.ListOptions {
	perPage := optInt(args, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := optInt(args, "page", 1)
	if page < 1 {
		page = 1
	}
	return github.ListOptions{Page: page, PerPage: perPage}
}
