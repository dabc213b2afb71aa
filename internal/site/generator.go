// Package site builds the static event website and serves it locally
// during development.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/brainhack-marseille/brainhack-site/internal/config"
	"github.com/brainhack-marseille/brainhack-site/internal/loader"
	"github.com/brainhack-marseille/brainhack-site/internal/panel"
	"github.com/brainhack-marseille/brainhack-site/internal/projects"
	"github.com/brainhack-marseille/brainhack-site/internal/render"
)

// Generator builds the full static site: the projects page, the shared
// assets, the search index, optional markdown info pages, and a copy of
// the data file and static assets.
type Generator struct {
	Cfg       *config.Config
	OutputDir string
}

// NewGenerator creates a Generator writing to outputDir (the configured
// output dir when empty).
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	return &Generator{Cfg: cfg, OutputDir: outputDir}
}

// pageData holds the data passed to the page shell template.
type pageData struct {
	Title       string
	SiteTitle   string
	Year        int
	Description string
	Grid        template.HTML
	Content     template.HTML
	IsIndex     bool
}

// Generate builds the site. Returns the number of HTML pages written.
// A missing or unparsable data file does not abort the build: the index
// page is written with the error-state block, matching what the page
// shows when the browser-side fetch fails.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	list, loadErr := loader.LoadFile(g.Cfg.Data.Path)
	if loadErr != nil {
		var perr *loader.ParseError
		if errors.As(loadErr, &perr) {
			log.Printf("site: data file unparsable, rendering error state: %v", perr)
		} else {
			log.Printf("site: data file unreadable, rendering error state: %v", loadErr)
		}
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	pages := 0

	// Index page with the card grid (or the empty/error block).
	grid := render.ErrorBlock()
	if loadErr == nil {
		grid = render.RenderGrid(list, controllerFor(list))
	}
	if err := g.writePage(tmpl, "index.html", pageData{
		Title:       g.Cfg.Site.Title,
		SiteTitle:   g.Cfg.Site.Title,
		Year:        g.Cfg.Site.Year,
		Description: g.Cfg.Site.Description,
		Grid:        grid,
		IsIndex:     true,
	}); err != nil {
		return 0, err
	}
	pages++

	// Shared assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "cards.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	// Search index and a copy of the data file, so the deployed page can
	// fetch both relative to the site root.
	if loadErr == nil {
		if err := WriteSearchIndex(BuildSearchIndex(list), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
			return 0, fmt.Errorf("writing search index: %w", err)
		}
		if err := copyFile(g.Cfg.Data.Path, filepath.Join(g.OutputDir, "projects.json")); err != nil {
			return 0, fmt.Errorf("copying data file: %w", err)
		}
	}

	// Markdown info pages.
	n, err := g.renderInfoPages(tmpl)
	if err != nil {
		return 0, err
	}
	pages += n

	// Static assets (images etc.) filtered by the configured globs.
	if err := g.copyAssets(); err != nil {
		return 0, err
	}

	return pages, nil
}

// controllerFor builds a panel controller over the full card set. The
// static build renders everything closed; the dev server opens one panel
// for deep links.
func controllerFor(list []projects.Project) *panel.Controller {
	ctrl := panel.New()
	for i, p := range list {
		ctrl.Register(p.CardID(i))
	}
	return ctrl
}

// writePage renders one page through the shell template.
func (g *Generator) writePage(tmpl *template.Template, name string, data pageData) error {
	outPath := filepath.Join(g.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

// renderInfoPages converts every markdown file under PagesDir into an HTML
// page with the site shell. Returns the number of pages written.
func (g *Generator) renderInfoPages(tmpl *template.Template) (int, error) {
	if g.Cfg.PagesDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(g.Cfg.PagesDir); os.IsNotExist(err) {
		return 0, nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	count := 0
	err := filepath.Walk(g.Cfg.PagesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := md.Convert(content, &buf); err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}

		rel, err := filepath.Rel(g.Cfg.PagesDir, path)
		if err != nil {
			return err
		}
		htmlName := strings.TrimSuffix(filepath.ToSlash(rel), ".md") + ".html"

		if err := g.writePage(tmpl, htmlName, pageData{
			Title:     pageTitle(string(content), rel),
			SiteTitle: g.Cfg.Site.Title,
			Year:      g.Cfg.Site.Year,
			Content:   template.HTML(buf.String()),
		}); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

// pageTitle pulls the first # heading from markdown content, or falls back
// to the filename.
func pageTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
