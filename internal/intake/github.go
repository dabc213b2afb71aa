// Package intake turns approved GitHub issue submissions into the projects
// JSON data file consumed by the site builder.
//
// The workflow: a participant submits a project through the issue form, an
// admin adds an approval label, and the next fetch publishes the project.
// Closing the issue archives the project but keeps it on the site.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Issue is the subset of the GitHub issues API payload the intake needs.
type Issue struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	State     string  `json:"state"`
	HTMLURL   string  `json:"html_url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Labels    []Label `json:"labels"`
}

// Label is a GitHub issue label.
type Label struct {
	Name string `json:"name"`
}

// HasLabel reports whether the issue carries the named label.
func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the issue carries at least one of the names.
func (i Issue) HasAnyLabel(names []string) bool {
	for _, n := range names {
		if i.HasLabel(n) {
			return true
		}
	}
	return false
}

// Client fetches submission issues from the GitHub REST API.
type Client struct {
	BaseURL string // e.g. https://api.github.com
	Repo    string // owner/name
	Token   string // optional; raises rate limits
	HTTP    *http.Client
}

// perPage is the GitHub maximum page size.
const perPage = 100

// ListProjectIssues fetches every issue labeled with projectLabel, both
// open and closed, following pagination. Closed issues represent archived
// projects that stay on the site.
func (c *Client) ListProjectIssues(ctx context.Context, projectLabel string) ([]Issue, error) {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	var all []Issue
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("labels", projectLabel)
		q.Set("state", "all")
		q.Set("per_page", strconv.Itoa(perPage))
		q.Set("page", strconv.Itoa(page))

		endpoint := fmt.Sprintf("%s/repos/%s/issues?%s", c.BaseURL, c.Repo, q.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("building issues request: %w", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching issues page %d: %w", page, err)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("github api returned %d for %s: %s", resp.StatusCode, c.Repo, string(body))
		}

		var pageIssues []Issue
		err = json.NewDecoder(resp.Body).Decode(&pageIssues)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding issues page %d: %w", page, err)
		}

		all = append(all, pageIssues...)
		if len(pageIssues) < perPage {
			return all, nil
		}
	}
}
