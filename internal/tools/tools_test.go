package tools

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-github/v60/github"
	"github.com/mark3labs/mcp-go/mcp"
)

// testDeps points a real go-github client at a local test server, so handler
// tests exercise the same request encoding the production client uses and can
// count upstream calls.
func testDeps(t *testing.T, handler http.Handler) Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	client.BaseURL = base
	client.UploadURL = base

	return Deps{
		Client: client,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// unusedDeps is for validation-failure tests: any upstream call fails the test.
func unusedDeps(t *testing.T) Deps {
	t.Helper()
	return testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		http.Error(w, "unexpected", http.StatusTeapot)
	}))
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil {
		t.Fatal("expected a result envelope, got nil")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func wantSuccess(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	text := resultText(t, res)
	if res.IsError {
		t.Fatalf("expected success, got error envelope: %s", text)
	}
	return text
}

func wantError(t *testing.T, res *mcp.CallToolResult, contains string) {
	t.Helper()
	text := resultText(t, res)
	if !res.IsError {
		t.Fatalf("expected error envelope, got success: %s", text)
	}
	if !strings.HasPrefix(text, "Error: ") {
		t.Fatalf("error envelope missing prefix: %s", text)
	}
	if !strings.Contains(text, contains) {
		t.Fatalf("error envelope %q does not contain %q", text, contains)
	}
}

// jsonKeys unmarshals a success envelope and returns the top-level field set
// of the given object, for projection assertions.
func jsonKeys(t *testing.T, text string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		t.Fatalf("envelope is not a JSON object: %v\n%s", err, text)
	}
	return m
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode test response: %v", err)
	}
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"message": "Not Found"}`))
}
