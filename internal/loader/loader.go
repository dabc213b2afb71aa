// Package loader fetches and decodes the projects JSON data file.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// TransportError reports a non-success HTTP response for the data file.
type TransportError struct {
	URL    string
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
}

// ParseError reports a response or file body that is not a valid projects
// JSON array.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing projects from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Fetch retrieves the projects JSON array from url. A non-2xx response
// yields a *TransportError; an undecodable body yields a *ParseError.
// There is no retry: the caller renders an error state instead.
func Fetch(ctx context.Context, client *http.Client, url string) ([]projects.Project, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	var list []projects.Project
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, &ParseError{Source: url, Err: err}
	}
	return list, nil
}

// LoadFile reads the projects JSON array from a local path, with the same
// decode semantics as Fetch. The static site builder reads from disk.
func LoadFile(path string) ([]projects.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var list []projects.Project
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return list, nil
}
