// Package webif serves the administrative web pages of a print server:
// printer status, configuration, printing defaults, ready media,
// supplies, and the job queue.
package webif

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"printdesk/server/logger"
	"printdesk/server/printer"
)

// Options configures the web interface. The hook functions let the
// caller bolt on authentication and anti-forgery checks without this
// package knowing how sessions work.
type Options struct {
	// Logger receives request and update logs. Required.
	Logger *logger.Logger

	// Authenticate wraps every page handler when set. A nil value
	// leaves pages open, which is only sensible on localhost.
	Authenticate func(http.HandlerFunc) http.HandlerFunc

	// FormToken supplies the anti-forgery token embedded in every
	// form, and ValidateForm vets a parsed submission before it is
	// applied. When unset, a per-instance session key is generated
	// and checked against the form's "session" field.
	FormToken    func(r *http.Request) string
	ValidateForm func(r *http.Request, fields url.Values) bool

	// MultiQueue switches printer pages from root paths to
	// /printers/<name>/... paths and turns the landing page into a
	// printer list.
	MultiQueue bool

	// Version is shown in the single-queue page header.
	Version string
}

// WebIF renders and applies the administrative pages for the printers
// of one System.
type WebIF struct {
	system     *printer.System
	log        *logger.Logger
	auth       func(http.HandlerFunc) http.HandlerFunc
	token      func(*http.Request) string
	validate   func(*http.Request, url.Values) bool
	sessionKey string
	multi      bool
	version    string
}

// New wires a web interface over system. It fails fast on missing
// required collaborators rather than panicking mid-request.
func New(system *printer.System, opts Options) (*WebIF, error) {
	if system == nil {
		return nil, errors.New("webif: system is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("webif: logger is required")
	}
	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("webif: session key: %w", err)
	}
	return &WebIF{
		system:     system,
		log:        opts.Logger,
		auth:       opts.Authenticate,
		token:      opts.FormToken,
		validate:   opts.ValidateForm,
		sessionKey: hex.EncodeToString(key),
		multi:      opts.MultiQueue,
		version:    opts.Version,
	}, nil
}

// formToken returns the token to embed in forms for this request.
func (wi *WebIF) formToken(r *http.Request) string {
	if wi.token != nil {
		return wi.token(r)
	}
	return wi.sessionKey
}

// validForm checks a parsed submission's anti-forgery state.
func (wi *WebIF) validForm(r *http.Request, form Form) bool {
	if wi.validate != nil {
		return wi.validate(r, form.Values())
	}
	session, _ := form.Get("session")
	return session == wi.sessionKey
}

type pageFunc func(*WebIF, http.ResponseWriter, *http.Request, *printer.Printer)

// printerPages maps the trailing path element of a printer URL to its
// handler. The empty key is the printer home page.
var printerPages = map[string]pageFunc{
	"":          (*WebIF).handleHome,
	"config":    (*WebIF).handleConfig,
	"media":     (*WebIF).handleMedia,
	"printing":  (*WebIF).handleDefaults,
	"supplies":  (*WebIF).handleSupplies,
	"jobs":      (*WebIF).handleJobs,
	"cancel":    (*WebIF).handleCancel,
	"cancelall": (*WebIF).handleCancelAll,
}

// RegisterRoutes attaches all web pages to mux. A nil mux falls back
// to http.DefaultServeMux.
func (wi *WebIF) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil {
		mux = http.DefaultServeMux
	}

	mux.HandleFunc("/", wi.wrap(wi.handleRoot))
	if wi.multi {
		mux.HandleFunc("/printers/", wi.wrap(wi.handlePrinters))
	} else {
		for page := range printerPages {
			if page == "" {
				continue
			}
			name := page
			mux.HandleFunc("/"+name, wi.wrap(func(w http.ResponseWriter, r *http.Request) {
				wi.dispatch(w, r, wi.defaultPrinter(), name)
			}))
		}
	}
	mux.HandleFunc("/style.css", wi.handleStyle)
	mux.HandleFunc("/webif.js", wi.handleScript)
}

// wrap applies the authentication hook when one is configured.
func (wi *WebIF) wrap(h http.HandlerFunc) http.HandlerFunc {
	if wi.auth != nil {
		return wi.auth(h)
	}
	return h
}

// handleRoot serves the landing page: the sole printer's home page in
// single-queue mode, the printer list otherwise.
func (wi *WebIF) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if wi.multi {
		wi.handleSystemHome(w, r)
		return
	}
	wi.dispatch(w, r, wi.defaultPrinter(), "")
}

// handlePrinters resolves /printers/<name>[/<page>] and dispatches to
// the page handler.
func (wi *WebIF) handlePrinters(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/printers/")
	namePart, page, _ := strings.Cut(rest, "/")
	name, err := url.PathUnescape(namePart)
	if err != nil || name == "" {
		http.NotFound(w, r)
		return
	}
	p, ok := wi.system.Printer(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	wi.dispatch(w, r, p, page)
}

func (wi *WebIF) dispatch(w http.ResponseWriter, r *http.Request, p *printer.Printer, page string) {
	if p == nil {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handler, ok := printerPages[page]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if page == "supplies" && !p.HasSupplies() {
		http.NotFound(w, r)
		return
	}
	handler(wi, w, r, p)
}

// defaultPrinter returns the printer that owns the root paths in
// single-queue mode.
func (wi *WebIF) defaultPrinter() *printer.Printer {
	printers := wi.system.Printers()
	if len(printers) == 0 {
		return nil
	}
	return printers[0]
}

// printerPath returns the URL prefix for a printer's pages: empty in
// single-queue mode, /printers/<name> otherwise.
func (wi *WebIF) printerPath(p *printer.Printer) string {
	if !wi.multi {
		return ""
	}
	return "/printers/" + url.PathEscape(p.Name())
}

// pagePath joins a printer's URL prefix with a page name.
func (wi *WebIF) pagePath(p *printer.Printer, page string) string {
	root := wi.printerPath(p)
	if page == "" {
		if root == "" {
			return "/"
		}
		return root
	}
	return root + "/" + page
}
