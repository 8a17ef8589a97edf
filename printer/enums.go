// Package printer holds the printer object model: capability enums,
// driver options, ready media, job queue, and the system registry that
// the web interface and storage layer operate on.
package printer

// ColorMode is a single print-color-mode capability bit.
type ColorMode int

const (
	ColorModeAuto              ColorMode = 0x0001 // autodetect color/monochrome
	ColorModeAutoMonochrome    ColorMode = 0x0002 // internal auto-selected monochrome, never user-facing
	ColorModeBiLevel           ColorMode = 0x0004
	ColorModeColor             ColorMode = 0x0008
	ColorModeMonochrome        ColorMode = 0x0010
	ColorModeProcessMonochrome ColorMode = 0x0020
)

// AllColorModes lists every color mode in ascending bit order. Renderers
// must iterate in this order.
func AllColorModes() []ColorMode {
	return []ColorMode{
		ColorModeAuto,
		ColorModeAutoMonochrome,
		ColorModeBiLevel,
		ColorModeColor,
		ColorModeMonochrome,
		ColorModeProcessMonochrome,
	}
}

// String returns the IPP keyword for the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorModeAuto:
		return "auto"
	case ColorModeAutoMonochrome:
		return "auto-monochrome"
	case ColorModeBiLevel:
		return "bi-level"
	case ColorModeColor:
		return "color"
	case ColorModeMonochrome:
		return "monochrome"
	case ColorModeProcessMonochrome:
		return "process-monochrome"
	}
	return ""
}

// ParseColorMode maps an IPP keyword to a color mode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "auto":
		return ColorModeAuto, true
	case "auto-monochrome":
		return ColorModeAutoMonochrome, true
	case "bi-level":
		return ColorModeBiLevel, true
	case "color":
		return ColorModeColor, true
	case "monochrome":
		return ColorModeMonochrome, true
	case "process-monochrome":
		return ColorModeProcessMonochrome, true
	}
	return 0, false
}

// ColorModeSet is a set of supported color modes.
type ColorModeSet int

// Has reports whether the set contains mode.
func (s ColorModeSet) Has(m ColorMode) bool { return int(s)&int(m) != 0 }

// With returns the set with mode added.
func (s ColorModeSet) With(m ColorMode) ColorModeSet { return s | ColorModeSet(m) }

// IsEmpty reports whether no mode is present.
func (s ColorModeSet) IsEmpty() bool { return s == 0 }

// ColorModes builds a set from the given modes.
func ColorModes(modes ...ColorMode) ColorModeSet {
	var s ColorModeSet
	for _, m := range modes {
		s = s.With(m)
	}
	return s
}

// Sides is a single sides (duplex) capability bit.
type Sides int

const (
	SidesOneSided          Sides = 0x01
	SidesTwoSidedLongEdge  Sides = 0x02
	SidesTwoSidedShortEdge Sides = 0x04
)

// AllSides lists every sides value in ascending bit order.
func AllSides() []Sides {
	return []Sides{SidesOneSided, SidesTwoSidedLongEdge, SidesTwoSidedShortEdge}
}

// String returns the IPP keyword for the sides value.
func (v Sides) String() string {
	switch v {
	case SidesOneSided:
		return "one-sided"
	case SidesTwoSidedLongEdge:
		return "two-sided-long-edge"
	case SidesTwoSidedShortEdge:
		return "two-sided-short-edge"
	}
	return ""
}

// ParseSides maps an IPP keyword to a sides value.
func ParseSides(s string) (Sides, bool) {
	switch s {
	case "one-sided":
		return SidesOneSided, true
	case "two-sided-long-edge":
		return SidesTwoSidedLongEdge, true
	case "two-sided-short-edge":
		return SidesTwoSidedShortEdge, true
	}
	return 0, false
}

// SidesSet is a set of supported sides values.
type SidesSet int

// Has reports whether the set contains v.
func (s SidesSet) Has(v Sides) bool { return int(s)&int(v) != 0 }

// With returns the set with v added.
func (s SidesSet) With(v Sides) SidesSet { return s | SidesSet(v) }

// IsEmpty reports whether no value is present.
func (s SidesSet) IsEmpty() bool { return s == 0 }

// SidesValues builds a set from the given values.
func SidesValues(values ...Sides) SidesSet {
	var s SidesSet
	for _, v := range values {
		s = s.With(v)
	}
	return s
}

// OnlyOneSided reports whether one-sided is the only supported value,
// in which case the sides control is not rendered at all.
func (s SidesSet) OnlyOneSided() bool { return s == SidesSet(SidesOneSided) }

// ContentOptimize is a print-content-optimize value.
type ContentOptimize int

const (
	ContentAuto           ContentOptimize = 0x01
	ContentGraphic        ContentOptimize = 0x02
	ContentPhoto          ContentOptimize = 0x04
	ContentText           ContentOptimize = 0x08
	ContentTextAndGraphic ContentOptimize = 0x10
)

// AllContentOptimize lists every content-optimize value in ascending bit
// order. The defaults page enumerates all of them; there is no supported
// mask for this option.
func AllContentOptimize() []ContentOptimize {
	return []ContentOptimize{
		ContentAuto,
		ContentGraphic,
		ContentPhoto,
		ContentText,
		ContentTextAndGraphic,
	}
}

// String returns the IPP keyword for the content-optimize value.
func (c ContentOptimize) String() string {
	switch c {
	case ContentAuto:
		return "auto"
	case ContentGraphic:
		return "graphic"
	case ContentPhoto:
		return "photo"
	case ContentText:
		return "text"
	case ContentTextAndGraphic:
		return "text-and-graphic"
	}
	return ""
}

// ParseContentOptimize maps an IPP keyword to a content-optimize value.
func ParseContentOptimize(s string) (ContentOptimize, bool) {
	switch s {
	case "auto":
		return ContentAuto, true
	case "graphic":
		return ContentGraphic, true
	case "photo":
		return ContentPhoto, true
	case "text":
		return ContentText, true
	case "text-and-graphic":
		return ContentTextAndGraphic, true
	}
	return 0, false
}

// Scaling is a print-scaling value.
type Scaling int

const (
	ScalingAuto    Scaling = 0x01
	ScalingAutoFit Scaling = 0x02
	ScalingFill    Scaling = 0x04
	ScalingFit     Scaling = 0x08
	ScalingNone    Scaling = 0x10
)

// AllScaling lists every scaling value in ascending bit order. Like
// content-optimize, the defaults page enumerates all of them.
func AllScaling() []Scaling {
	return []Scaling{ScalingAuto, ScalingAutoFit, ScalingFill, ScalingFit, ScalingNone}
}

// String returns the IPP keyword for the scaling value.
func (v Scaling) String() string {
	switch v {
	case ScalingAuto:
		return "auto"
	case ScalingAutoFit:
		return "auto-fit"
	case ScalingFill:
		return "fill"
	case ScalingFit:
		return "fit"
	case ScalingNone:
		return "none"
	}
	return ""
}

// ParseScaling maps an IPP keyword to a scaling value.
func ParseScaling(s string) (Scaling, bool) {
	switch s {
	case "auto":
		return ScalingAuto, true
	case "auto-fit":
		return ScalingAutoFit, true
	case "fill":
		return ScalingFill, true
	case "fit":
		return ScalingFit, true
	case "none":
		return ScalingNone, true
	}
	return 0, false
}

// Tracking is a media-tracking value for label media.
type Tracking int

const (
	TrackingContinuous Tracking = 0x01
	TrackingMark       Tracking = 0x02
	TrackingWeb        Tracking = 0x04
)

// AllTracking lists every tracking value in ascending bit order.
func AllTracking() []Tracking {
	return []Tracking{TrackingContinuous, TrackingMark, TrackingWeb}
}

// String returns the IPP keyword for the tracking value.
func (v Tracking) String() string {
	switch v {
	case TrackingContinuous:
		return "continuous"
	case TrackingMark:
		return "mark"
	case TrackingWeb:
		return "web"
	}
	return ""
}

// ParseTracking maps an IPP keyword to a tracking value.
func ParseTracking(s string) (Tracking, bool) {
	switch s {
	case "continuous":
		return TrackingContinuous, true
	case "mark":
		return TrackingMark, true
	case "web":
		return TrackingWeb, true
	}
	return 0, false
}

// TrackingSet is a set of supported tracking values.
type TrackingSet int

// Has reports whether the set contains v.
func (s TrackingSet) Has(v Tracking) bool { return int(s)&int(v) != 0 }

// With returns the set with v added.
func (s TrackingSet) With(v Tracking) TrackingSet { return s | TrackingSet(v) }

// IsEmpty reports whether no value is present.
func (s TrackingSet) IsEmpty() bool { return s == 0 }

// TrackingValues builds a set from the given values.
func TrackingValues(values ...Tracking) TrackingSet {
	var s TrackingSet
	for _, v := range values {
		s = s.With(v)
	}
	return s
}
