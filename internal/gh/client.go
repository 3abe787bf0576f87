// Package gh constructs the authenticated GitHub API client the tools call
// into. Authentication and transport concerns live in go-github and oauth2;
// this package only wires them together.
package gh

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// NewClient builds a GitHub client from a bearer token. host, when non-empty,
// points the client at a GitHub Enterprise deployment instead of github.com.
func NewClient(ctx context.Context, token, host string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	if host != "" {
		var err error
		client, err = client.WithEnterpriseURLs(host, host)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise host %s: %w", host, err)
		}
	}
	return client, nil
}

// fallbackMessage is used when the upstream failure carries no message of its
// own, so callers always get a human-readable envelope.
const fallbackMessage = "GitHub API request failed"

// ErrorMessage extracts a human-readable message from a go-github error.
// API errors surface GitHub's own message field when present; transport
// errors surface their error text.
func ErrorMessage(err error) string {
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Response != nil {
			return fmt.Sprintf("%s (HTTP %d)", fallbackMessage, apiErr.Response.StatusCode)
		}
		return fallbackMessage
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return "GitHub API rate limit exceeded"
	}
	if err == nil || err.Error() == "" {
		return fallbackMessage
	}
	return err.Error()
}
