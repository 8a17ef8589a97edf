package webif

import (
	"embed"
	"html/template"
	"io"
	"net/http"
)

//go:embed web
var webFS embed.FS

//go:embed web/style.css
var styleCSS string

//go:embed web/webif.js
var webifJS string

// pageTemplates holds one compiled template set per page, each sharing
// the layout and its defines.
var pageTemplates = make(map[string]*template.Template)

func init() {
	pages := []string{"home", "list", "config", "printing", "media", "supplies", "jobs", "cancel", "cancelall"}
	for _, page := range pages {
		pageTemplates[page] = template.Must(
			template.New("layout.tmpl").ParseFS(webFS, "web/layout.tmpl", "web/"+page+".tmpl"))
	}
}

func (wi *WebIF) handleStyle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, styleCSS)
}

func (wi *WebIF) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = io.WriteString(w, webifJS)
}
