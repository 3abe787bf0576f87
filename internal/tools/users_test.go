package tools

import (
	"context"
	"net/http"
	"testing"
)

func TestGetUser(t *testing.T) {
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{
			"login":        "octocat",
			"name":         "The Octocat",
			"company":      "GitHub",
			"public_repos": 8,
			"followers":    1000,
			"following":    9,
			"html_url":     "https://github.com/octocat",
			"node_id":      "MDQ6VXNlcjE=",
		})
	}))
	tools := &userTools{deps: deps}

	res, err := tools.getUser(context.Background(), callReq(map[string]any{"username": "octocat"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := jsonKeys(t, wantSuccess(t, res))

	if got["login"] != "octocat" || got["followers"] != float64(1000) {
		t.Fatalf("unexpected projection: %v", got)
	}
	if _, ok := got["node_id"]; ok {
		t.Fatal("projection leaked an undocumented upstream field")
	}
}

func TestGetUserMissingUsername(t *testing.T) {
	tools := &userTools{deps: unusedDeps(t)}

	res, err := tools.getUser(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantError(t, res, `missing required argument "username"`)
}

func TestGetUserUpstreamFailure(t *testing.T) {
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	}))
	tools := &userTools{deps: deps}

	res, err := tools.getUser(context.Background(), callReq(map[string]any{"username": "ghost"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantError(t, res, "Error: Not Found")
}
