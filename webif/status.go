package webif

import (
	"net/http"

	"printdesk/server/printer"
)

// statusView is the status block shown on the printer home page and in
// the printer list: icon, one-line summary, and quick links.
type statusView struct {
	Name       string
	HomePath   string
	StateClass string
	StatusLine string
	Buttons    []navLink
}

func (wi *WebIF) statusViewFor(p *printer.Printer) statusView {
	buttons := []navLink{
		{Path: wi.pagePath(p, "media"), Label: "Media"},
		{Path: wi.pagePath(p, "printing"), Label: "Printing Defaults"},
	}
	if p.HasSupplies() {
		buttons = append(buttons, navLink{Path: wi.pagePath(p, "supplies"), Label: "Supplies"})
	}
	return statusView{
		Name:       p.Name(),
		HomePath:   wi.pagePath(p, ""),
		StateClass: stateClass(p.State()),
		StatusLine: statusLine(p.State(), p.Reasons(), p.ActiveJobCount()),
		Buttons:    buttons,
	}
}

// configInfoView is the read-only configuration summary on the home
// page. Empty fields are omitted by the template.
type configInfoView struct {
	Location         string
	GeoLocation      string
	Organization     string
	ContactName      string
	ContactEmail     string
	ContactTelephone string
}

func configInfo(id printer.Identity) configInfoView {
	org := id.Organization
	if org != "" && id.OrganizationalUnit != "" {
		org += ", " + id.OrganizationalUnit
	} else if org == "" {
		org = id.OrganizationalUnit
	}
	return configInfoView{
		Location:         id.Location,
		GeoLocation:      id.GeoLocation,
		Organization:     org,
		ContactName:      id.Contact.Name,
		ContactEmail:     id.Contact.Email,
		ContactTelephone: id.Contact.Telephone,
	}
}

type homeView struct {
	Status     statusView
	Config     configInfoView
	ConfigPath string
	Jobs       jobsTableView
	JobsPath   string
}

func (wi *WebIF) handleHome(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	refresh := 0
	if p.State() == printer.StateProcessing {
		refresh = 10
	}
	view := homeView{
		Status:     wi.statusViewFor(p),
		Config:     configInfo(p.Identity()),
		ConfigPath: wi.pagePath(p, "config"),
		Jobs:       wi.jobsTable(p, p.Jobs(), "Pages"),
		JobsPath:   wi.pagePath(p, "jobs"),
	}
	wi.render(w, r, p, "home", "", refresh, "", view)
}

type listView struct {
	Printers []statusView
}

// handleSystemHome lists every printer with its status block.
func (wi *WebIF) handleSystemHome(w http.ResponseWriter, _ *http.Request) {
	var view listView
	for _, p := range wi.system.Printers() {
		view.Printers = append(view.Printers, wi.statusViewFor(p))
	}
	wi.renderSystem(w, view)
}
