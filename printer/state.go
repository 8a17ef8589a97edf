package printer

import "fmt"

// State is the IPP printer-state value.
type State int

const (
	StateIdle       State = 3
	StateProcessing State = 4
	StateStopped    State = 5
)

// String returns the IPP keyword for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Reason is a single printer-state-reasons bit.
type Reason int

const (
	ReasonOther                 Reason = 0x0001
	ReasonCoverOpen             Reason = 0x0002
	ReasonInputTrayMissing      Reason = 0x0004
	ReasonMarkerSupplyEmpty     Reason = 0x0008
	ReasonMarkerSupplyLow       Reason = 0x0010
	ReasonMarkerWasteAlmostFull Reason = 0x0020
	ReasonMarkerWasteFull       Reason = 0x0040
	ReasonMediaEmpty            Reason = 0x0080
	ReasonMediaJam              Reason = 0x0100
	ReasonMediaLow              Reason = 0x0200
	ReasonMediaNeeded           Reason = 0x0400
	ReasonSpoolAreaFull         Reason = 0x0800
	ReasonTonerEmpty            Reason = 0x1000
	ReasonTonerLow              Reason = 0x2000
)

// AllReasons lists every state reason in ascending bit order. Status
// rendering walks this slice and appends labels for present bits, so the
// displayed order always follows the bit order.
func AllReasons() []Reason {
	return []Reason{
		ReasonOther,
		ReasonCoverOpen,
		ReasonInputTrayMissing,
		ReasonMarkerSupplyEmpty,
		ReasonMarkerSupplyLow,
		ReasonMarkerWasteAlmostFull,
		ReasonMarkerWasteFull,
		ReasonMediaEmpty,
		ReasonMediaJam,
		ReasonMediaLow,
		ReasonMediaNeeded,
		ReasonSpoolAreaFull,
		ReasonTonerEmpty,
		ReasonTonerLow,
	}
}

// String returns the IPP keyword for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonOther:
		return "other"
	case ReasonCoverOpen:
		return "cover-open"
	case ReasonInputTrayMissing:
		return "input-tray-missing"
	case ReasonMarkerSupplyEmpty:
		return "marker-supply-empty"
	case ReasonMarkerSupplyLow:
		return "marker-supply-low"
	case ReasonMarkerWasteAlmostFull:
		return "marker-waste-almost-full"
	case ReasonMarkerWasteFull:
		return "marker-waste-full"
	case ReasonMediaEmpty:
		return "media-empty"
	case ReasonMediaJam:
		return "media-jam"
	case ReasonMediaLow:
		return "media-low"
	case ReasonMediaNeeded:
		return "media-needed"
	case ReasonSpoolAreaFull:
		return "spool-area-full"
	case ReasonTonerEmpty:
		return "toner-empty"
	case ReasonTonerLow:
		return "toner-low"
	}
	return ""
}

// ReasonSet is a printer-state-reasons bitmask.
type ReasonSet int

// Has reports whether the set contains r.
func (s ReasonSet) Has(r Reason) bool { return int(s)&int(r) != 0 }

// With returns the set with r added.
func (s ReasonSet) With(r Reason) ReasonSet { return s | ReasonSet(r) }

// Without returns the set with r removed.
func (s ReasonSet) Without(r Reason) ReasonSet { return s &^ ReasonSet(r) }

// IsEmpty reports whether no reason is present.
func (s ReasonSet) IsEmpty() bool { return s == 0 }

// Reasons builds a set from the given reasons.
func Reasons(reasons ...Reason) ReasonSet {
	var s ReasonSet
	for _, r := range reasons {
		s = s.With(r)
	}
	return s
}

// JobState is the IPP job-state value.
type JobState int

const (
	JobPending    JobState = 3
	JobHeld       JobState = 4
	JobProcessing JobState = 5
	JobStopped    JobState = 6
	JobCanceled   JobState = 7
	JobAborted    JobState = 8
	JobCompleted  JobState = 9
)

// String returns the IPP keyword for the job state.
func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobHeld:
		return "pending-held"
	case JobProcessing:
		return "processing"
	case JobStopped:
		return "processing-stopped"
	case JobCanceled:
		return "canceled"
	case JobAborted:
		return "aborted"
	case JobCompleted:
		return "completed"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Terminated reports whether the job has reached a terminal state.
func (s JobState) Terminated() bool { return s >= JobCanceled }

// Orientation is the IPP orientation-requested value.
type Orientation int

const (
	OrientationPortrait         Orientation = 3
	OrientationLandscape        Orientation = 4
	OrientationReverseLandscape Orientation = 5
	OrientationReversePortrait  Orientation = 6
	OrientationNone             Orientation = 7
)

// String returns the IPP keyword for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	case OrientationReverseLandscape:
		return "reverse-landscape"
	case OrientationReversePortrait:
		return "reverse-portrait"
	case OrientationNone:
		return "none"
	}
	return ""
}

// Quality is the IPP print-quality value.
type Quality int

const (
	QualityDraft  Quality = 3
	QualityNormal Quality = 4
	QualityHigh   Quality = 5
)

// String returns the IPP keyword for the quality.
func (q Quality) String() string {
	switch q {
	case QualityDraft:
		return "draft"
	case QualityNormal:
		return "normal"
	case QualityHigh:
		return "high"
	}
	return ""
}

// ParseQuality maps an IPP keyword to a quality value.
func ParseQuality(s string) (Quality, bool) {
	switch s {
	case "draft":
		return QualityDraft, true
	case "normal":
		return QualityNormal, true
	case "high":
		return QualityHigh, true
	}
	return 0, false
}

// Resolution is a printer resolution in dots per inch.
type Resolution struct {
	X int
	Y int
}

// String formats the resolution the way the web forms and IPP do:
// "300dpi" for square resolutions, "600x300dpi" otherwise.
func (r Resolution) String() string {
	if r.X == r.Y {
		return fmt.Sprintf("%ddpi", r.X)
	}
	return fmt.Sprintf("%dx%ddpi", r.X, r.Y)
}
