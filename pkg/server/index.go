package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/matzehuels/pathfinder/pkg/buildinfo"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// exampleRequest prefills the editor on the index page.
const exampleRequest = `{
  "start": "A",
  "end": "D",
  "graph": {
    "nodes": {"A": {"x": 40, "y": 40}, "B": {"x": 200, "y": 40}, "C": {"x": 200, "y": 200}, "D": {"x": 360, "y": 200}},
    "edges": {"A": ["B", "C"], "B": ["C"], "C": ["D"]},
    "weights": {"A,B": 1, "B,C": 2, "A,C": 5, "C,D": 1}
  }
}`

type indexData struct {
	Version string
	Example string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, indexData{Version: buildinfo.Version, Example: exampleRequest}); err != nil {
		s.logger.Error("render index", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
