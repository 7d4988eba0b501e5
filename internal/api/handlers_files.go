package api

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dgallion1/workflowdoc/internal/parser"
	"github.com/go-chi/chi/v5"
)

var viewTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Page is one HTML file found under the served root.
type Page struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// handleView renders a markdown file under the root as an HTML page.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + chi.URLParam(r, "*"))
	if !parser.IsSupportedExtension(name) || strings.HasSuffix(strings.ToLower(name), ".txt") {
		jsonError(w, "only markdown files can be viewed", http.StatusBadRequest)
		return
	}

	src, err := s.readFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			jsonError(w, "not found: "+name, http.StatusNotFound)
			return
		}
		jsonError(w, "failed to read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var body bytes.Buffer
	if err := parser.RenderHTML(src, &body); err != nil {
		jsonError(w, "failed to render markdown: "+err.Error(), http.StatusInternalServerError)
		return
	}
	title := parser.HeadingTitle(src)
	if title == "" {
		title = path.Base(name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viewTemplate.Execute(w, map[string]any{
		"Title": title,
		"Body":  template.HTML(body.String()),
	}); err != nil {
		s.log.Error("render view", "path", name, "error", err)
	}
}

// handleListPages lists the HTML pages under the root with their titles.
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	root := s.cfg.ServeRoot
	if root == "" {
		root = "."
	}

	pages := []Page{}
	err := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		title := ""
		if src, err := s.readFile("/" + p); err == nil {
			title, _ = parser.HTMLTitle(bytes.NewReader(src))
		}
		pages = append(pages, Page{Path: "/" + p, Title: title})
		return nil
	})
	if err != nil {
		jsonError(w, "failed to list pages: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	writeJSON(w, map[string]any{"pages": pages})
}

func (s *Server) readFile(name string) ([]byte, error) {
	f, err := s.files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fs.ErrNotExist
	}
	return io.ReadAll(f)
}
