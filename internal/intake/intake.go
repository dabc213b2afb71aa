package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/brainhack-marseille/brainhack-site/internal/archive"
	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// Syncer runs one intake pass: fetch labeled issues, keep the approved
// ones, archive them, and write the projects data file.
type Syncer struct {
	Client         *Client
	Store          *archive.Store // optional; nil skips archiving
	ApprovalLabels []string
	ProjectLabel   string
	DataPath       string
	DryRun         bool
}

// Result summarizes a sync run.
type Result struct {
	Fetched  int // issues carrying the project label
	Approved int // of those, carrying an approval label
	Written  int // projects written to the data file
	RunID    string
}

// Sync fetches, filters, archives, and writes the projects JSON. With a
// store configured, the written list is the full archive, so projects whose
// issues were closed (or even deleted) stay on the site.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	started := time.Now().UTC()

	issues, err := s.Client.ListProjectIssues(ctx, s.ProjectLabel)
	if err != nil {
		return nil, err
	}

	var approved []Issue
	for _, issue := range issues {
		if issue.HasAnyLabel(s.ApprovalLabels) {
			approved = append(approved, issue)
		}
	}
	log.Printf("intake: %d issue(s) with label %q, %d approved", len(issues), s.ProjectLabel, len(approved))

	bar := progressbar.NewOptions(len(approved),
		progressbar.OptionSetDescription("Parsing submissions"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	fresh := make([]projects.Project, 0, len(approved))
	for i, issue := range approved {
		p := BuildProject(issue)
		fresh = append(fresh, p)

		if s.Store != nil && !s.DryRun {
			if err := s.Store.Upsert(ctx, i, p, issue.State); err != nil {
				return nil, err
			}
		}
		_ = bar.Add(1)
	}

	// The archive, once populated, is the source of truth for what the
	// site shows.
	out := fresh
	if s.Store != nil && !s.DryRun {
		archived, err := s.Store.List(ctx)
		if err != nil {
			return nil, err
		}
		out = archived
	}

	res := &Result{Fetched: len(issues), Approved: len(approved), Written: len(out)}

	if s.DryRun {
		return res, nil
	}

	if err := writeProjectsJSON(s.DataPath, out); err != nil {
		return nil, err
	}

	if s.Store != nil {
		runID, err := s.Store.RecordSyncRun(ctx, archive.SyncRun{
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
			Fetched:    len(issues),
			Approved:   len(approved),
			Archived:   len(out),
		})
		if err != nil {
			return nil, err
		}
		res.RunID = runID
	}

	return res, nil
}

// writeProjectsJSON writes the data file the site builder and page consume.
// An empty list still writes a valid empty array.
func writeProjectsJSON(path string, list []projects.Project) error {
	if list == nil {
		list = []projects.Project{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
