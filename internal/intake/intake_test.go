package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brainhack-marseille/brainhack-site/internal/archive"
	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

func githubStub(t *testing.T, issues []Issue) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/org/repo/issues" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("state"); got != "all" {
			t.Errorf("state = %q, want all", got)
		}
		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		if page != "1" {
			fmt.Fprint(w, "[]")
			return
		}
		json.NewEncoder(w).Encode(issues)
	}))
}

func TestSync(t *testing.T) {
	issues := []Issue{
		{
			Number:  1,
			Title:   "Approved project",
			Body:    "### Title\n\nApproved project\n",
			State:   "open",
			HTMLURL: "https://github.com/org/repo/issues/1",
			Labels:  []Label{{Name: "project"}, {Name: "project:approved"}},
		},
		{
			Number: 2,
			Title:  "Pending project",
			State:  "open",
			Labels: []Label{{Name: "project"}},
		},
	}
	srv := githubStub(t, issues)
	defer srv.Close()

	dataPath := filepath.Join(t.TempDir(), "data", "projects.json")
	syncer := &Syncer{
		Client:         &Client{BaseURL: srv.URL, Repo: "org/repo", HTTP: srv.Client()},
		ProjectLabel:   "project",
		ApprovalLabels: []string{"project:approved"},
		DataPath:       dataPath,
	}

	res, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Fetched != 2 || res.Approved != 1 || res.Written != 1 {
		t.Errorf("result = %+v", res)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	var list []projects.Project
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("data file not valid JSON: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Approved project" {
		t.Errorf("data file = %+v", list)
	}
}

func TestSyncDryRun(t *testing.T) {
	srv := githubStub(t, nil)
	defer srv.Close()

	dataPath := filepath.Join(t.TempDir(), "projects.json")
	syncer := &Syncer{
		Client:         &Client{BaseURL: srv.URL, Repo: "org/repo", HTTP: srv.Client()},
		ProjectLabel:   "project",
		ApprovalLabels: []string{"project:approved"},
		DataPath:       dataPath,
		DryRun:         true,
	}

	if _, err := syncer.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if _, err := os.Stat(dataPath); !os.IsNotExist(err) {
		t.Error("dry run must not write the data file")
	}
}

func TestSyncMergesArchive(t *testing.T) {
	// The archive already knows a project whose issue no longer appears.
	db, err := archive.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	store := archive.NewStore(db)

	old := projects.Project{ID: "99", Title: "Closed long ago"}
	if err := store.Upsert(context.Background(), 0, old, "closed"); err != nil {
		t.Fatal(err)
	}

	issues := []Issue{
		{
			Number: 1,
			Title:  "Fresh project",
			Body:   "### Title\n\nFresh project\n",
			State:  "open",
			Labels: []Label{{Name: "project"}, {Name: "project:approved"}},
		},
	}
	srv := githubStub(t, issues)
	defer srv.Close()

	dataPath := filepath.Join(t.TempDir(), "projects.json")
	syncer := &Syncer{
		Client:         &Client{BaseURL: srv.URL, Repo: "org/repo", HTTP: srv.Client()},
		Store:          store,
		ProjectLabel:   "project",
		ApprovalLabels: []string{"project:approved"},
		DataPath:       dataPath,
	}

	res, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Written != 2 {
		t.Errorf("written = %d, want archived + fresh = 2", res.Written)
	}
	if res.RunID == "" {
		t.Error("sync run should be recorded")
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("archive holds %d projects, want 2", len(list))
	}
}

func TestSyncEmptyWritesEmptyArray(t *testing.T) {
	srv := githubStub(t, nil)
	defer srv.Close()

	dataPath := filepath.Join(t.TempDir(), "projects.json")
	syncer := &Syncer{
		Client:         &Client{BaseURL: srv.URL, Repo: "org/repo", HTTP: srv.Client()},
		ProjectLabel:   "project",
		ApprovalLabels: []string{"project:approved"},
		DataPath:       dataPath,
	}

	if _, err := syncer.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatal(err)
	}
	var list []projects.Project
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("want empty array, got %v", list)
	}
}
