package webif

import (
	"strings"
	"testing"

	"printdesk/server/printer"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name    string
		state   printer.State
		reasons printer.ReasonSet
		jobs    int
		want    string
	}{
		{"idle no jobs", printer.StateIdle, 0, 0, "Idle, 0 jobs"},
		{"processing one job", printer.StateProcessing, 0, 1, "Printing, 1 job"},
		{"stopped with reasons", printer.StateStopped,
			printer.Reasons(printer.ReasonMediaJam, printer.ReasonCoverOpen), 2,
			"Stopped, 2 jobs, Cover Open, Media Jam"},
		{"idle low toner", printer.StateIdle,
			printer.Reasons(printer.ReasonTonerLow), 3,
			"Idle, 3 jobs, Low Toner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLine(tt.state, tt.reasons, tt.jobs); got != tt.want {
				t.Errorf("statusLine = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every reason set must render as the fixed table filtered in ascending
// bit order, with no reordering or substitutions.
func TestStatusLineReasonOrder(t *testing.T) {
	all := printer.Reasons(printer.AllReasons()...)
	got := statusLine(printer.StateIdle, all, 0)
	want := "Idle, 0 jobs, Other, Cover Open, Tray Missing, Out of Ink, Low Ink, " +
		"Waste Tank Almost Full, Waste Tank Full, Media Empty, Media Jam, Media Low, " +
		"Media Needed, Too Many Jobs, Out of Toner, Low Toner"
	if got != want {
		t.Fatalf("all reasons = %q, want %q", got, want)
	}

	partial := printer.Reasons(printer.ReasonTonerLow, printer.ReasonOther, printer.ReasonMediaEmpty)
	got = statusLine(printer.StateStopped, partial, 5)
	if want := "Stopped, 5 jobs, Other, Media Empty, Low Toner"; got != want {
		t.Fatalf("partial reasons = %q, want %q", got, want)
	}
}

func TestReasonLabelTableCoversAllReasons(t *testing.T) {
	if got, want := len(reasonLabels), len(printer.AllReasons()); got != want {
		t.Fatalf("reason label table has %d entries, want %d", got, want)
	}
	for i, r := range printer.AllReasons() {
		if reasonLabels[i].reason != r {
			t.Errorf("reasonLabels[%d] = %v, want %v", i, reasonLabels[i].reason, r)
		}
	}
}

func TestStateClass(t *testing.T) {
	for state, want := range map[printer.State]string{
		printer.StateIdle:       "idle",
		printer.StateProcessing: "processing",
		printer.StateStopped:    "stopped",
	} {
		if got := stateClass(state); got != want {
			t.Errorf("stateClass(%v) = %q, want %q", state, got, want)
		}
	}
}

func TestStatusLineInStatusView(t *testing.T) {
	p := printer.NewPrinter("Test Printer", "test", testDriver())
	p.SetState(printer.StateStopped)
	p.SetReason(printer.ReasonMediaNeeded, true)
	p.Submit("doc.pdf", "alice")

	wi := newTestWebIF(t, p)
	view := wi.statusViewFor(p)
	if view.StateClass != "stopped" {
		t.Errorf("StateClass = %q, want %q", view.StateClass, "stopped")
	}
	if want := "Stopped, 1 job, Media Needed"; view.StatusLine != want {
		t.Errorf("StatusLine = %q, want %q", view.StatusLine, want)
	}
	var labels []string
	for _, b := range view.Buttons {
		labels = append(labels, b.Label)
	}
	if got := strings.Join(labels, ","); got != "Media,Printing Defaults" {
		t.Errorf("buttons = %q, want Media,Printing Defaults", got)
	}
}
