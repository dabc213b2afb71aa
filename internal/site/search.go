package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// SearchEntry represents one searchable project for the client-side
// search box.
type SearchEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Leaders string `json:"leaders,omitempty"`
	Topics  string `json:"topics,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// summaryLimit keeps the index small; the page only shows a snippet.
const summaryLimit = 200

// BuildSearchIndex builds the search index over the project list.
func BuildSearchIndex(list []projects.Project) []SearchEntry {
	entries := make([]SearchEntry, 0, len(list))
	for i, p := range list {
		e := SearchEntry{
			ID:    p.CardID(i),
			Title: strings.TrimSpace(p.Title),
		}
		if projects.HasContent(p.Leaders) {
			e.Leaders = strings.TrimSpace(p.Leaders)
		}
		if projects.HasContent(p.Topics) {
			e.Topics = projects.CleanList(p.Topics)
		}
		if projects.HasContent(p.Description) {
			summary := strings.TrimSpace(p.Description)
			if len(summary) > summaryLimit {
				summary = summary[:summaryLimit] + "..."
			}
			e.Summary = summary
		}
		entries = append(entries, e)
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
