package api

import (
	"net/http"

	"github.com/dgallion1/workflowdoc/internal/graph"
)

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ServeGraphDB == "" {
		jsonError(w, "graph database not configured", http.StatusServiceUnavailable)
		return
	}

	g, err := graph.ExportFile(r.Context(), s.cfg.ServeGraphDB, s.log)
	if err != nil {
		s.log.Error("graph export failed", "db", s.cfg.ServeGraphDB, "error", err)
		jsonError(w, "graph export failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, g)
}
