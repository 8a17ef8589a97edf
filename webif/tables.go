package webif

import (
	"fmt"
	"time"

	"printdesk/server/printer"
)

// stateLabels and reasonLabels drive the status line; reasons render in
// ascending bit order after the job count.
var stateLabels = map[printer.State]string{
	printer.StateIdle:       "Idle",
	printer.StateProcessing: "Printing",
	printer.StateStopped:    "Stopped",
}

var reasonLabels = []struct {
	reason printer.Reason
	label  string
}{
	{printer.ReasonOther, "Other"},
	{printer.ReasonCoverOpen, "Cover Open"},
	{printer.ReasonInputTrayMissing, "Tray Missing"},
	{printer.ReasonMarkerSupplyEmpty, "Out of Ink"},
	{printer.ReasonMarkerSupplyLow, "Low Ink"},
	{printer.ReasonMarkerWasteAlmostFull, "Waste Tank Almost Full"},
	{printer.ReasonMarkerWasteFull, "Waste Tank Full"},
	{printer.ReasonMediaEmpty, "Media Empty"},
	{printer.ReasonMediaJam, "Media Jam"},
	{printer.ReasonMediaLow, "Media Low"},
	{printer.ReasonMediaNeeded, "Media Needed"},
	{printer.ReasonSpoolAreaFull, "Too Many Jobs"},
	{printer.ReasonTonerEmpty, "Out of Toner"},
	{printer.ReasonTonerLow, "Low Toner"},
}

var orientationLabels = []struct {
	value printer.Orientation
	label string
}{
	{printer.OrientationPortrait, "Portrait"},
	{printer.OrientationLandscape, "Landscape"},
	{printer.OrientationReverseLandscape, "Reverse Landscape"},
	{printer.OrientationReversePortrait, "Reverse Portrait"},
	{printer.OrientationNone, "Auto"},
}

// statusLine formats the one-line summary shown on every printer page,
// e.g. "Stopped, 2 jobs, Cover Open, Media Jam".
func statusLine(state printer.State, reasons printer.ReasonSet, jobs int) string {
	label, ok := stateLabels[state]
	if !ok {
		label = "Unknown"
	}
	noun := "jobs"
	if jobs == 1 {
		noun = "job"
	}
	line := fmt.Sprintf("%s, %d %s", label, jobs, noun)
	for _, rl := range reasonLabels {
		if reasons.Has(rl.reason) {
			line += ", " + rl.label
		}
	}
	return line
}

// stateClass names the status icon style for a printer state.
func stateClass(state printer.State) string {
	return state.String()
}

// clockTime renders a timestamp the way job tables show it.
func clockTime(t time.Time) string {
	return t.Local().Format("15:04:05")
}
