package webif

import (
	"fmt"
	"net/http"
	"strconv"

	"printdesk/server/media"
	"printdesk/server/printer"
)

// choice is one option in a select or radio group.
type choice struct {
	Value    string
	Label    string
	Selected bool
}

// defaultsView is the printing-defaults form. Controls whose backing
// capability is absent are omitted entirely rather than disabled.
type defaultsView struct {
	MediaSources []choice
	MediaPath    string
	Orientations []choice
	// ColorLabel collapses the color-mode control to static text for
	// grayscale-only printers.
	ColorLabel string
	ColorModes []choice
	ShowSides  bool
	Sides      []choice
	Qualities  []choice
	Darkness   []choice
	Speeds     []choice
	Contents   []choice
	Scalings   []choice
	// ResolutionText replaces the select when only one resolution
	// is supported.
	ResolutionText string
	Resolutions    []choice
}

// showMediaSource reports whether two sources hold the same size, in
// which case ready-media labels must name their source to stay
// distinguishable.
func showMediaSource(d printer.DriverOptions) bool {
	for i := range d.Sources {
		if d.MediaReady[i].Width <= 0 {
			continue
		}
		for j := i + 1; j < len(d.Sources); j++ {
			if d.MediaReady[i].Width == d.MediaReady[j].Width && d.MediaReady[i].Length == d.MediaReady[j].Length {
				return true
			}
		}
	}
	return false
}

func buildDefaultsView(d printer.DriverOptions, mediaPath string) defaultsView {
	view := defaultsView{MediaPath: mediaPath}

	showSource := showMediaSource(d)
	for i, source := range d.Sources {
		if source == sourceManual {
			continue
		}
		view.MediaSources = append(view.MediaSources, choice{
			Value:    source,
			Label:    localizeMedia(d.MediaReady[i], showSource),
			Selected: source == d.MediaDefault.Source,
		})
	}

	for _, ol := range orientationLabels {
		view.Orientations = append(view.Orientations, choice{
			Value:    strconv.Itoa(int(ol.value)),
			Label:    ol.label,
			Selected: ol.value == d.OrientationDefault,
		})
	}

	bw := printer.ColorModes(printer.ColorModeAuto, printer.ColorModeMonochrome)
	bwAuto := printer.ColorModes(printer.ColorModeAuto, printer.ColorModeAutoMonochrome, printer.ColorModeMonochrome)
	if d.ColorSupported == bw || d.ColorSupported == bwAuto {
		view.ColorLabel = "B&W"
	} else {
		for _, mode := range printer.AllColorModes() {
			if mode == printer.ColorModeAutoMonochrome || !d.ColorSupported.Has(mode) {
				continue
			}
			kw := mode.String()
			view.ColorModes = append(view.ColorModes, choice{
				Value:    kw,
				Label:    localizeKeyword("print-color-mode", kw),
				Selected: mode == d.ColorDefault,
			})
		}
	}

	if !d.SidesSupported.IsEmpty() && !d.SidesSupported.OnlyOneSided() {
		view.ShowSides = true
		for _, s := range printer.AllSides() {
			if !d.SidesSupported.Has(s) {
				continue
			}
			kw := s.String()
			view.Sides = append(view.Sides, choice{
				Value:    kw,
				Label:    localizeKeyword("sides", kw),
				Selected: s == d.SidesDefault,
			})
		}
	}

	for q := printer.QualityDraft; q <= printer.QualityHigh; q++ {
		kw := q.String()
		view.Qualities = append(view.Qualities, choice{
			Value:    kw,
			Label:    localizeKeyword("print-quality", kw),
			Selected: q == d.QualityDefault,
		})
	}

	if d.DarknessSupported > 1 {
		for i := 0; i < d.DarknessSupported; i++ {
			percent := 100 * i / (d.DarknessSupported - 1)
			view.Darkness = append(view.Darkness, choice{
				Value:    strconv.Itoa(percent),
				Label:    fmt.Sprintf("%d%%", percent),
				Selected: percent == d.DarknessConfigured,
			})
		}
	}

	if d.SpeedSupported[1] > 0 {
		view.Speeds = append(view.Speeds, choice{
			Value:    "0",
			Label:    "Auto",
			Selected: d.SpeedDefault == 0,
		})
		for i := d.SpeedSupported[0]; i <= d.SpeedSupported[1]; i += media.HundredthsPerInch {
			if i == 0 {
				continue
			}
			inches := i / media.HundredthsPerInch
			unit := "inches"
			if inches == 1 {
				unit = "inch"
			}
			view.Speeds = append(view.Speeds, choice{
				Value:    strconv.Itoa(inches),
				Label:    fmt.Sprintf("%d %s/sec", inches, unit),
				Selected: i == d.SpeedDefault,
			})
		}
	}

	for _, c := range printer.AllContentOptimize() {
		kw := c.String()
		view.Contents = append(view.Contents, choice{
			Value:    kw,
			Label:    localizeKeyword("print-content-optimize", kw),
			Selected: c == d.ContentDefault,
		})
	}

	for _, s := range printer.AllScaling() {
		kw := s.String()
		view.Scalings = append(view.Scalings, choice{
			Value:    kw,
			Label:    localizeKeyword("print-scaling", kw),
			Selected: s == d.ScalingDefault,
		})
	}

	if len(d.Resolutions) == 1 {
		view.ResolutionText = d.Resolutions[0].String()
	} else {
		for _, r := range d.Resolutions {
			view.Resolutions = append(view.Resolutions, choice{
				Value:    r.String(),
				Label:    r.String(),
				Selected: r == d.ResolutionDefault,
			})
		}
	}

	return view
}

// applyDefaultFields folds a defaults submission into the driver
// options. Absent fields keep their value; a keyword that does not
// name a supported enum value leaves the field unchanged.
func applyDefaultFields(d *printer.DriverOptions, form Form) {
	if v, ok := form.Get("media-source"); ok {
		if i := d.SourceIndex(v); i >= 0 && i < len(d.MediaReady) {
			d.MediaDefault = d.MediaReady[i]
		}
	}
	if v, ok := form.Get("orientation-requested"); ok {
		n, _ := strconv.Atoi(v)
		d.OrientationDefault = printer.Orientation(n)
	}
	if v, ok := form.Get("print-color-mode"); ok {
		if mode, ok := printer.ParseColorMode(v); ok {
			d.ColorDefault = mode
		}
	}
	if v, ok := form.Get("print-content-optimize"); ok {
		if c, ok := printer.ParseContentOptimize(v); ok {
			d.ContentDefault = c
		}
	}
	if v, ok := form.Get("print-darkness"); ok {
		n, _ := strconv.Atoi(v)
		d.DarknessConfigured = n
	}
	if v, ok := form.Get("print-quality"); ok {
		if q, ok := printer.ParseQuality(v); ok {
			d.QualityDefault = q
		}
	}
	if v, ok := form.Get("print-speed"); ok {
		n, _ := strconv.Atoi(v)
		d.SpeedDefault = n * media.HundredthsPerInch
	}
	if v, ok := form.Get("printer-resolution"); ok {
		x, y := d.ResolutionDefault.X, d.ResolutionDefault.Y
		n, _ := fmt.Sscanf(v, "%dx%ddpi", &x, &y)
		if n == 1 {
			y = x
		}
		if n >= 1 {
			d.ResolutionDefault = printer.Resolution{X: x, Y: y}
		}
	}
	if v, ok := form.Get("sides"); ok {
		if s, ok := printer.ParseSides(v); ok {
			d.SidesDefault = s
		}
	}
	if v, ok := form.Get("print-scaling"); ok {
		if s, ok := printer.ParseScaling(v); ok {
			d.ScalingDefault = s
		}
	}
}

func applyDefaults(p *printer.Printer, form Form) {
	p.UpdateDriver(func(d *printer.DriverOptions) {
		applyDefaultFields(d, form)
	})
}

func (wi *WebIF) handleDefaults(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	var banner string
	if r.Method == http.MethodPost {
		form, ok := parseForm(r)
		switch {
		case !ok:
			banner = bannerInvalidFormData
		case !wi.validForm(r, form):
			banner = bannerInvalidFormSubmission
		default:
			applyDefaults(p, form)
			banner = bannerChangesSaved
			wi.log.Info("printing defaults updated", "printer", p.Name())
		}
	}
	view := buildDefaultsView(p.Driver(), wi.pagePath(p, "media"))
	wi.render(w, r, p, "printing", "Printing Defaults", 0, banner, view)
}
