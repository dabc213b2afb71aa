package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brainhack-marseille/brainhack-site/internal/config"
	"github.com/brainhack-marseille/brainhack-site/internal/loader"
	"github.com/brainhack-marseille/brainhack-site/internal/render"
)

// Server is the local development server. It serves the generated site
// directory, renders the projects page live from the data file (so edits
// show up without a rebuild), and pushes a reload signal to connected
// pages when the data file changes.
type Server struct {
	cfg    *config.Config
	dir    string
	router chi.Router
	hub    *reloadHub
	tmpl   *template.Template
}

// NewServer creates a dev server for the generated site in dir.
func NewServer(cfg *config.Config, dir string) (*Server, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Server{
		cfg:  cfg,
		dir:  dir,
		hub:  newReloadHub(),
		tmpl: tmpl,
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/projects", s.handleProjects)
	r.Get("/ws", s.hub.handleWebSocket)

	// The projects page renders live so data edits and ?project= deep
	// links work without a rebuild.
	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)

	r.Handle("/*", http.FileServer(http.Dir(s.dir)))

	return r
}

// Router returns the chi router, mostly for tests.
func (s *Server) Router() chi.Router { return s.router }

// ListenAndServe starts the data-file watcher and the HTTP server. It
// blocks until the server stops.
func (s *Server) ListenAndServe(port int) error {
	go watchFile(s.cfg.Data.Path, func() {
		log.Printf("serve: %s changed, reloading clients", s.cfg.Data.Path)
		s.hub.broadcast("reload")
	})

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving site at http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop.")
	return http.ListenAndServe(addr, s.router)
}

// handleProjects serves the decoded projects data file as JSON.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := loader.LoadFile(s.cfg.Data.Path)
	if err != nil {
		log.Printf("serve: loading projects: %v", err)
		http.Error(w, `{"error":"projects data unavailable"}`, http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// handleIndex renders the projects page. A ?project=<id> query opens that
// card's details panel server-side through the panel controller.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	list, err := loader.LoadFile(s.cfg.Data.Path)

	grid := render.ErrorBlock()
	if err == nil {
		ctrl := controllerFor(list)
		if open := r.URL.Query().Get("project"); open != "" {
			ctrl.Open(open)
		}
		grid = render.RenderGrid(list, ctrl)
	} else {
		log.Printf("serve: loading projects: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderErr := s.tmpl.Execute(w, pageData{
		Title:       s.cfg.Site.Title,
		SiteTitle:   s.cfg.Site.Title,
		Year:        s.cfg.Site.Year,
		Description: s.cfg.Site.Description,
		Grid:        grid,
		IsIndex:     true,
	})
	if renderErr != nil {
		log.Printf("serve: rendering index: %v", renderErr)
	}
}

// watchFile polls the file's mtime and calls onChange when it moves.
// Polling keeps the watcher trivial and portable; the data file changes a
// few times a day at most.
func watchFile(path string, onChange func()) {
	var last time.Time
	for {
		if info, err := statFile(path); err == nil {
			if !last.IsZero() && info.After(last) {
				onChange()
			}
			last = info
		}
		time.Sleep(time.Second)
	}
}
