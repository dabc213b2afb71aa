package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brainhack-marseille/brainhack-site/internal/config"
)

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	root := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Site.Title = "Brainhack Testville"
	cfg.Site.Year = 2026
	cfg.Data.Path = filepath.Join(root, "data", "projects.json")
	cfg.OutputDir = filepath.Join(root, "site")
	cfg.PagesDir = filepath.Join(root, "pages")
	cfg.Assets.Dir = filepath.Join(root, "assets")

	return cfg, root
}

func writeData(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	cfg, _ := testConfig(t)
	writeData(t, cfg.Data.Path, `[{"id": 1, "title": "Atlas"}, {"id": 2, "title": "Pipelines"}]`)

	gen := NewGenerator(cfg, "")
	pages, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	html := string(index)

	for _, want := range []string{
		"Brainhack Testville",
		`id="projects-container"`,
		`id="loading-indicator"`,
		"Atlas",
		"Pipelines",
		`id="details-1"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(html, `project-details open`) {
		t.Error("static build should render all panels closed")
	}

	for _, asset := range []string{"style.css", "cards.js", "projects.json", "search-index.json"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, asset)); err != nil {
			t.Errorf("missing asset %s: %v", asset, err)
		}
	}

	var entries []SearchEntry
	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "search-index.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("search index not valid JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].Title != "Atlas" {
		t.Errorf("search index = %+v", entries)
	}
}

func TestGenerateEmptyData(t *testing.T) {
	cfg, _ := testConfig(t)
	writeData(t, cfg.Data.Path, `[]`)

	gen := NewGenerator(cfg, "")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	if !strings.Contains(html, "empty-state") {
		t.Error("empty data should render the empty-state block")
	}
	if strings.Contains(html, "project-card") {
		t.Error("empty data should create no cards")
	}
}

func TestGenerateBadData(t *testing.T) {
	cfg, _ := testConfig(t)
	writeData(t, cfg.Data.Path, `{broken`)

	gen := NewGenerator(cfg, "")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate should not fail on bad data: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	if !strings.Contains(html, "error-state") {
		t.Error("unparsable data should render the error-state block")
	}
	if strings.Contains(html, "project-card") {
		t.Error("unparsable data should create no cards")
	}
}

func TestGenerateInfoPages(t *testing.T) {
	cfg, _ := testConfig(t)
	writeData(t, cfg.Data.Path, `[]`)
	writeData(t, filepath.Join(cfg.PagesDir, "venue.md"), "# Getting there\n\nTake the *metro*.\n")

	gen := NewGenerator(cfg, "")
	pages, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want index + venue", pages)
	}

	venue, err := os.ReadFile(filepath.Join(cfg.OutputDir, "venue.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(venue)
	if !strings.Contains(html, "Getting there") {
		t.Error("info page missing heading")
	}
	if !strings.Contains(html, "<em>metro</em>") {
		t.Error("info page markdown not rendered")
	}
	if !strings.Contains(html, "Brainhack Testville") {
		t.Error("info page missing site shell")
	}
}

func TestGenerateCopiesAssets(t *testing.T) {
	cfg, _ := testConfig(t)
	writeData(t, cfg.Data.Path, `[]`)
	writeData(t, filepath.Join(cfg.Assets.Dir, "images", "logo.png"), "png-bytes")
	writeData(t, filepath.Join(cfg.Assets.Dir, "notes.md"), "excluded")
	cfg.Assets.Include = []string{"**"}
	cfg.Assets.Exclude = []string{"**/*.md", "*.md"}

	gen := NewGenerator(cfg, "")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	copied := filepath.Join(cfg.OutputDir, "assets", "images", "logo.png")
	if _, err := os.Stat(copied); err != nil {
		t.Errorf("asset not copied: %v", err)
	}
	excluded := filepath.Join(cfg.OutputDir, "assets", "notes.md")
	if _, err := os.Stat(excluded); !os.IsNotExist(err) {
		t.Error("excluded asset was copied")
	}
}

func TestBuildSearchIndexSkipsSentinels(t *testing.T) {
	entries := BuildSearchIndex(nil)
	if len(entries) != 0 {
		t.Errorf("nil list should index nothing, got %v", entries)
	}
}
