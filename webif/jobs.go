package webif

import (
	"fmt"
	"net/http"

	"printdesk/server/printer"
)

// jobRow is one line of a job table; CancelPath is empty when the job
// can no longer be canceled.
type jobRow struct {
	ID          int
	Name        string
	Username    string
	Impressions int
	When        string
	CancelPath  string
}

type jobsTableView struct {
	ImpressionsHeader string
	Rows              []jobRow
	Empty             string
}

// jobWhen describes where a job is in its lifecycle, anchored to the
// relevant timestamp.
func jobWhen(j printer.JobSummary) string {
	switch j.State {
	case printer.JobPending, printer.JobHeld:
		return fmt.Sprintf("Queued at %s", clockTime(j.CreatedAt))
	case printer.JobProcessing, printer.JobStopped:
		if j.Canceled {
			return fmt.Sprintf("Canceling at %s", clockTime(j.ProcessingAt))
		}
		return fmt.Sprintf("Started at %s", clockTime(j.ProcessingAt))
	case printer.JobCanceled:
		return fmt.Sprintf("Canceled at %s", clockTime(j.CompletedAt))
	case printer.JobAborted:
		return fmt.Sprintf("Aborted at %s", clockTime(j.CompletedAt))
	default:
		return fmt.Sprintf("Completed at %s", clockTime(j.CompletedAt))
	}
}

func (wi *WebIF) jobRowFor(p *printer.Printer, j printer.JobSummary) jobRow {
	row := jobRow{
		ID:          j.ID,
		Name:        j.Name,
		Username:    j.Username,
		Impressions: j.ImpressionsCompleted,
		When:        jobWhen(j),
	}
	if j.CancelEligible() {
		row.CancelPath = fmt.Sprintf("%s/cancel?job-id=%d", wi.printerPath(p), j.ID)
	}
	return row
}

func (wi *WebIF) jobsTable(p *printer.Printer, jobs []printer.JobSummary, impressionsHeader string) jobsTableView {
	view := jobsTableView{
		ImpressionsHeader: impressionsHeader,
		Empty:             "No jobs in history.",
	}
	for _, j := range jobs {
		view.Rows = append(view.Rows, wi.jobRowFor(p, j))
	}
	return view
}

type jobsView struct {
	Jobs          jobsTableView
	CancelAllPath string
}

func (wi *WebIF) handleJobs(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	refresh := 0
	if p.State() == printer.StateProcessing {
		refresh = 10
	}
	view := jobsView{
		Jobs: wi.jobsTable(p, p.Jobs(), "Pages Completed"),
	}
	if p.ActiveJobCount() > 0 {
		view.CancelAllPath = wi.pagePath(p, "cancelall")
	}
	wi.render(w, r, p, "jobs", "Jobs", refresh, "", view)
}
