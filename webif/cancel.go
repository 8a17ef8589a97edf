package webif

import (
	"net/http"
	"strconv"

	"printdesk/server/printer"
)

type cancelView struct {
	JobID int
	Row   *jobRow
}

// lookupJob resolves the job-id form field to an existing job. A
// missing field, an unparsable or zero id, and an unknown id all fail
// the same way.
func lookupJob(p *printer.Printer, form Form) (printer.JobSummary, int, bool) {
	v, ok := form.Get("job-id")
	if !ok {
		return printer.JobSummary{}, 0, false
	}
	id, err := strconv.Atoi(v)
	if err != nil || id == 0 {
		return printer.JobSummary{}, 0, false
	}
	job, found := p.FindJob(id)
	if !found {
		return printer.JobSummary{}, 0, false
	}
	return job, id, true
}

func (wi *WebIF) handleCancel(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	var banner string
	var view cancelView

	switch r.Method {
	case http.MethodPost:
		form, ok := parseForm(r)
		switch {
		case !ok:
			banner = bannerInvalidFormData
		case !wi.validForm(r, form):
			banner = bannerInvalidFormSubmission
		default:
			_, id, found := lookupJob(p, form)
			if !found {
				banner = bannerInvalidJobID
				break
			}
			if err := p.CancelJob(id); err != nil {
				banner = bannerInvalidJobID
				break
			}
			wi.log.Info("job canceled", "printer", p.Name(), "job_id", id)
			http.Redirect(w, r, wi.pagePath(p, "jobs"), http.StatusFound)
			return
		}
	default:
		form, ok := parseForm(r)
		if !ok {
			banner = bannerInvalidGetData
			break
		}
		job, id, found := lookupJob(p, form)
		if !found {
			banner = bannerInvalidJobID
			break
		}
		row := wi.jobRowFor(p, job)
		view = cancelView{JobID: id, Row: &row}
	}

	wi.render(w, r, p, "cancel", "Cancel Job", 0, banner, view)
}

type cancelAllView struct {
	Active int
}

func (wi *WebIF) handleCancelAll(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	var banner string

	if r.Method == http.MethodPost {
		form, ok := parseForm(r)
		switch {
		case !ok:
			banner = bannerInvalidFormData
		case !wi.validForm(r, form):
			banner = bannerInvalidFormSubmission
		default:
			p.CancelAllJobs()
			wi.log.Info("all jobs canceled", "printer", p.Name())
			http.Redirect(w, r, wi.pagePath(p, "jobs"), http.StatusFound)
			return
		}
	}

	view := cancelAllView{Active: p.ActiveJobCount()}
	wi.render(w, r, p, "cancelall", "Cancel All Jobs", 0, banner, view)
}
