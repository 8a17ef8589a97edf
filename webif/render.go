package webif

import (
	"bytes"
	"fmt"
	"net/http"

	"printdesk/server/printer"
)

// navLink is one entry in the printer page header.
type navLink struct {
	Path   string
	Label  string
	Active bool
}

// pageData is the envelope every template receives; Content carries the
// page-specific view model.
type pageData struct {
	Title      string
	Heading    string
	SystemName string
	Refresh    int
	Banner     string
	Nav        []navLink
	Version    string
	Root       string
	Session    string
	Content    any
}

// headerPages lists the printer pages shown in the header, in order.
// Supplies is skipped for printers that do not report supply levels.
var headerPages = []struct {
	page  string
	label string
}{
	{"config", "Configuration"},
	{"media", "Media"},
	{"printing", "Printing Defaults"},
	{"supplies", "Supplies"},
}

func (wi *WebIF) nav(p *printer.Printer, active string) []navLink {
	links := make([]navLink, 0, len(headerPages))
	for _, hp := range headerPages {
		if hp.page == "supplies" && !p.HasSupplies() {
			continue
		}
		links = append(links, navLink{
			Path:   wi.pagePath(p, hp.page),
			Label:  hp.label,
			Active: hp.page == active,
		})
	}
	return links
}

// pageTitle builds the <title> text: the printer name stands in when a
// page has no title of its own, and multi-queue servers qualify the
// title with the printer name.
func (wi *WebIF) pageTitle(p *printer.Printer, title string) string {
	if title == "" {
		return p.Name()
	}
	if wi.multi {
		return fmt.Sprintf("%s - %s", title, p.Name())
	}
	return title
}

// render executes a printer page template inside the shared layout.
func (wi *WebIF) render(w http.ResponseWriter, r *http.Request, p *printer.Printer, page, title string, refresh int, banner string, content any) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		wi.log.Error("web template missing", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := pageData{
		Title:      wi.pageTitle(p, title),
		Heading:    title,
		SystemName: wi.system.Name(),
		Refresh:    refresh,
		Banner:     banner,
		Nav:        wi.nav(p, page),
		Version:    wi.version,
		Root:       wi.printerPath(p),
		Session:    wi.formToken(r),
		Content:    content,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		wi.log.Error("web template failed", "page", page, "printer", p.Name(), "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// renderSystem executes the multi-queue landing page, which has no
// printer scope.
func (wi *WebIF) renderSystem(w http.ResponseWriter, content any) {
	tmpl, ok := pageTemplates["list"]
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := pageData{
		Title:      wi.system.Name(),
		Heading:    "Printers",
		SystemName: wi.system.Name(),
		Version:    wi.version,
		Content:    content,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		wi.log.Error("web template failed", "page", "list", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
