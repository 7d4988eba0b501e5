package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/workflowdoc/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a directory for local viewing of the workflow outputs.
type Server struct {
	router chi.Router
	files  http.FileSystem
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server rooted at cfg.ServeRoot.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	root := cfg.ServeRoot
	if root == "" {
		root = "."
	}
	s := &Server{
		files: http.Dir(root),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(CORS)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/pages", s.handleListPages)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/view/*", s.handleView)

	static := http.FileServer(s.files)
	r.Get("/*", static.ServeHTTP)
	r.Head("/*", static.ServeHTTP)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
