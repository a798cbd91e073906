// Package server exposes a read-only preview of the batch output: generated
// images, the run report and the dataset format documentation.
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sciplot/internal/charts"
	"sciplot/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
)

// Server serves the output directory over HTTP
type Server struct {
	cfg    *config.Config
	router chi.Router
}

// New creates the preview server
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/plots/*", http.StripPrefix("/plots/",
		http.FileServer(http.Dir(cfg.Paths.OutputDir))))
	r.Get("/report", s.handleReport)
	r.Get("/datasets", s.handleDatasets)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/report", http.StatusFound)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the preview
func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] preview listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleReport(w http.ResponseWriter, req *http.Request) {
	path := filepath.Join(s.cfg.Paths.OutputDir, "report.html")
	html, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "no report yet: run the batch first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// handleDatasets renders the dataset format documentation, built from the
// same Specs the loader validates against
func (s *Server) handleDatasets(w http.ResponseWriter, req *http.Request) {
	var b strings.Builder
	b.WriteString("# Dataset Formats\n\n")
	for _, family := range charts.Families() {
		fmt.Fprintf(&b, "## %s\n\n", family.Name)
		for _, v := range family.Variants {
			fmt.Fprintf(&b, "### %s\n\n", v.Spec.Name)
			fmt.Fprintf(&b, "- File: `%s`\n", v.Spec.File)
			fmt.Fprintf(&b, "- Required columns: `%s`\n", strings.Join(v.Spec.Columns, ", "))
			fmt.Fprintf(&b, "- Purpose: %s\n\n", v.Spec.Description)
			fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimSpace(v.Spec.Example))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(markdown.ToHTML([]byte(b.String()), nil, nil))
}
