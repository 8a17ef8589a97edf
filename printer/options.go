package printer

// MediaCol describes one media configuration: a size plus margins,
// offsets, tracking, source, and type. Dimensions and margins are in
// hundredths of millimeters.
type MediaCol struct {
	SizeName     string   `json:"size_name"`
	Width        int      `json:"width"`
	Length       int      `json:"length"`
	BottomMargin int      `json:"bottom_margin"`
	LeftMargin   int      `json:"left_margin"`
	RightMargin  int      `json:"right_margin"`
	TopMargin    int      `json:"top_margin"`
	LeftOffset   int      `json:"left_offset"`
	TopOffset    int      `json:"top_offset"`
	Tracking     Tracking `json:"tracking,omitempty"`
	Source       string   `json:"source"`
	Type         string   `json:"type"`
}

// IsZero reports whether the entry is unconfigured.
func (m MediaCol) IsZero() bool { return m == MediaCol{} }

// DriverOptions is the driver-reported capability and default option set
// for a printer. It is mutated only through Printer.UpdateDriver so that
// concurrent readers always see a consistent snapshot.
type DriverOptions struct {
	ColorSupported ColorModeSet `json:"color_supported"`
	ColorDefault   ColorMode    `json:"color_default"`

	ContentDefault ContentOptimize `json:"content_default"`
	ScalingDefault Scaling         `json:"scaling_default"`

	SidesSupported SidesSet `json:"sides_supported"`
	SidesDefault   Sides    `json:"sides_default"`

	OrientationDefault Orientation `json:"orientation_default"`
	QualityDefault     Quality     `json:"quality_default"`

	// DarknessSupported is the number of discrete darkness steps; zero
	// means darkness is not adjustable. DarknessConfigured is a percent.
	DarknessConfigured int `json:"darkness_configured"`
	DarknessSupported  int `json:"darkness_supported"`

	// Speeds are in hundredths of millimeters per second; a zero max
	// means speed is not adjustable.
	SpeedDefault   int    `json:"speed_default"`
	SpeedSupported [2]int `json:"speed_supported"`

	ResolutionDefault Resolution   `json:"resolution_default"`
	Resolutions       []Resolution `json:"resolutions"`

	// MediaSupported holds PWG self-describing size names, including any
	// custom_/roll_ min/max range markers. TypeSupported holds media type
	// keywords. Sources is ordered and index-aligned with MediaReady.
	MediaSupported []string `json:"media_supported"`
	TypeSupported  []string `json:"type_supported"`
	Sources        []string `json:"sources"`

	MediaDefault MediaCol   `json:"media_default"`
	MediaReady   []MediaCol `json:"media_ready"`

	// Default margins applied to non-borderless media: BottomTop for the
	// bottom/top margins, LeftRight for left/right.
	BottomTop int `json:"bottom_top"`
	LeftRight int `json:"left_right"`

	Borderless bool `json:"borderless"`

	// Supported offset ranges in hundredths of millimeters; a zero upper
	// bound means offsets are not adjustable.
	LeftOffsetSupported [2]int `json:"left_offset_supported"`
	TopOffsetSupported  [2]int `json:"top_offset_supported"`

	TrackingSupported TrackingSet `json:"tracking_supported"`

	HasSupplies bool `json:"has_supplies"`
}

// Clone returns a deep copy of the options, detaching every slice.
func (d DriverOptions) Clone() DriverOptions {
	c := d
	c.Resolutions = append([]Resolution(nil), d.Resolutions...)
	c.MediaSupported = append([]string(nil), d.MediaSupported...)
	c.TypeSupported = append([]string(nil), d.TypeSupported...)
	c.Sources = append([]string(nil), d.Sources...)
	c.MediaReady = append([]MediaCol(nil), d.MediaReady...)
	return c
}

// SourceIndex returns the position of the named source, or -1.
func (d DriverOptions) SourceIndex(name string) int {
	for i, s := range d.Sources {
		if s == name {
			return i
		}
	}
	return -1
}

// normalizeReady grows or trims MediaReady so it stays index-aligned
// with Sources.
func (d *DriverOptions) normalizeReady() {
	for len(d.MediaReady) < len(d.Sources) {
		d.MediaReady = append(d.MediaReady, MediaCol{})
	}
	if len(d.MediaReady) > len(d.Sources) {
		d.MediaReady = d.MediaReady[:len(d.Sources)]
	}
}
