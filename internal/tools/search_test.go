package tools

import (
	"context"
	"net/http"
	"net/url"
	"testing"
)

func TestSearchRepositoriesDefaults(t *testing.T) {
	var gotQuery url.Values
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		writeJSON(t, w, map[string]any{
			"total_count": 1,
			"items": []map[string]any{{
				"full_name":        "octocat/hello-world",
				"html_url":         "https://github.com/octocat/hello-world",
				"stargazers_count": 42,
				"language":         "Go",
			}},
		})
	}))
	tools := &searchTools{deps: deps}

	res, err := tools.searchRepositories(context.Background(), callReq(map[string]any{
		"query": "mcp in:name",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := jsonKeys(t, wantSuccess(t, res))

	if gotQuery.Get("q") != "mcp in:name" {
		t.Fatalf("unexpected q: %q", gotQuery.Get("q"))
	}
	if gotQuery.Get("sort") != "stars" || gotQuery.Get("order") != "desc" {
		t.Fatalf("expected default sort=stars order=desc, got %v", gotQuery)
	}
	if got["total_count"] != float64(1) {
		t.Fatalf("unexpected total_count: %v", got["total_count"])
	}
	items, ok := got["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected items: %v", got["items"])
	}
}

func TestSearchRepositoriesMissingQuery(t *testing.T) {
	tools := &searchTools{deps: unusedDeps(t)}

	res, err := tools.searchRepositories(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantError(t, res, `missing required argument "query"`)
}

func TestSearchIssuesDefaults(t *testing.T) {
	var gotQuery url.Values
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/issues" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		writeJSON(t, w, map[string]any{
			"total_count": 2,
			"items": []map[string]any{
				{"number": 1, "title": "a", "state": "open", "html_url": "u1", "repository_url": "r1"},
				{"number": 2, "title": "b", "state": "closed", "html_url": "u2", "repository_url": "r2"},
			},
		})
	}))
	tools := &searchTools{deps: deps}

	res, err := tools.searchIssues(context.Background(), callReq(map[string]any{
		"query": "is:open label:bug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := jsonKeys(t, wantSuccess(t, res))

	if gotQuery.Get("sort") != "created" {
		t.Fatalf("expected default sort=created, got %q", gotQuery.Get("sort"))
	}
	if got["total_count"] != float64(2) {
		t.Fatalf("unexpected total_count: %v", got["total_count"])
	}
}

func TestSearchIssuesInvalidOrder(t *testing.T) {
	tools := &searchTools{deps: unusedDeps(t)}

	res, err := tools.searchIssues(context.Background(), callReq(map[string]any{
		"query": "bug",
		"order": "upwards",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantError(t, res, `invalid value "upwards" for argument "order"`)
}
