package webif

import (
	"fmt"
	"net/http"
	"strconv"

	"printdesk/server/media"
	"printdesk/server/printer"
)

// sourceManual is the media source that is never offered in the size
// choosers or the defaults page; manual feed has no persistent loaded
// media.
const sourceManual = "manual"

// fallback custom-size bounds when the driver's range markers carry no
// usable dimensions: 1x1 inch up to 9x22 inches.
var (
	fallbackCustomMin = media.Size{Width: media.HundredthsPerInch, Length: media.HundredthsPerInch}
	fallbackCustomMax = media.Size{Width: 9 * media.HundredthsPerInch, Length: 22 * media.HundredthsPerInch}
)

// mediaChooser is the form section for one media source.
type mediaChooser struct {
	Title  string
	Prefix string

	Sizes          []choice
	HasCustom      bool
	CustomSelected bool

	// Custom size bounds and current values, in inches.
	MinWidth, MaxWidth, Width    string
	MinLength, MaxLength, Length string

	ShowBorderless bool
	Borderless     bool

	// Offset bounds and current values, in millimeters.
	ShowLeftOffset                           bool
	LeftOffsetMin, LeftOffsetMax, LeftOffset string
	ShowTopOffset                            bool
	TopOffsetMin, TopOffsetMax, TopOffset    string

	Trackings []choice
	Types     []choice
}

type mediaView struct {
	Choosers []mediaChooser
}

func inches(hundredths int) string {
	return strconv.FormatFloat(float64(hundredths)/media.HundredthsPerInch, 'f', 2, 64)
}

func millimeters(hundredths int) string {
	return strconv.FormatFloat(float64(hundredths)/media.HundredthsPerMM, 'g', -1, 64)
}

// customRange finds the custom/roll size range markers in the supported
// size list. Custom sizes are offered only when both markers exist; a
// marker whose dimensions cannot be decoded falls back to the default
// bounds.
func customRange(supported []string) (min, max media.Size, ok bool) {
	var haveMin, haveMax bool
	for _, name := range supported {
		isMin, isMax := media.IsRangeKeyword(name)
		switch {
		case isMin && !haveMin:
			haveMin = true
			if size, parsed := media.Parse(name); parsed {
				min = size
			}
		case isMax && !haveMax:
			haveMax = true
			if size, parsed := media.Parse(name); parsed {
				max = size
			}
		}
		if haveMin && haveMax {
			break
		}
	}
	if !haveMin || !haveMax {
		return media.Size{}, media.Size{}, false
	}
	if min.Width <= 0 || min.Length <= 0 {
		min = fallbackCustomMin
	}
	if max.Width <= 0 || max.Length <= 0 {
		max = fallbackCustomMax
	}
	return min, max, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func buildMediaChooser(d printer.DriverOptions, index int) mediaChooser {
	source := d.Sources[index]
	m := d.MediaReady[index]
	ch := mediaChooser{
		Title:  localizeKeyword("media-source", source),
		Prefix: fmt.Sprintf("ready%d", index),
	}

	min, max, hasCustom := customRange(d.MediaSupported)
	ch.HasCustom = hasCustom

	selected := 0
	cur := 0
	if hasCustom {
		ch.Sizes = append(ch.Sizes, choice{Value: "custom", Label: "Custom Size"})
		cur = 1
	}
	for _, name := range d.MediaSupported {
		if isMin, isMax := media.IsRangeKeyword(name); isMin || isMax {
			continue
		}
		ch.Sizes = append(ch.Sizes, choice{Value: name, Label: localizeKeyword("media", name)})
		if name == m.SizeName {
			selected = cur
		}
		cur++
	}
	if len(ch.Sizes) > 0 {
		ch.Sizes[selected].Selected = true
	}
	ch.CustomSelected = hasCustom && selected == 0

	if hasCustom {
		ch.MinWidth, ch.MaxWidth = inches(min.Width), inches(max.Width)
		ch.MinLength, ch.MaxLength = inches(min.Length), inches(max.Length)
		ch.Width = inches(clamp(m.Width, min.Width, max.Width))
		ch.Length = inches(clamp(m.Length, min.Length, max.Length))
	}

	if d.Borderless {
		ch.ShowBorderless = true
		ch.Borderless = m.BottomMargin == 0 && m.LeftMargin == 0 && m.RightMargin == 0 && m.TopMargin == 0
	}

	if d.LeftOffsetSupported[1] != 0 {
		ch.ShowLeftOffset = true
		ch.LeftOffsetMin = millimeters(d.LeftOffsetSupported[0])
		ch.LeftOffsetMax = millimeters(d.LeftOffsetSupported[1])
		ch.LeftOffset = millimeters(m.LeftOffset)
	}
	if d.TopOffsetSupported[1] != 0 {
		ch.ShowTopOffset = true
		ch.TopOffsetMin = millimeters(d.TopOffsetSupported[0])
		ch.TopOffsetMax = millimeters(d.TopOffsetSupported[1])
		ch.TopOffset = millimeters(m.TopOffset)
	}

	if !d.TrackingSupported.IsEmpty() {
		for _, t := range printer.AllTracking() {
			if !d.TrackingSupported.Has(t) {
				continue
			}
			kw := t.String()
			ch.Trackings = append(ch.Trackings, choice{
				Value:    kw,
				Label:    localizeKeyword("media-tracking", kw),
				Selected: t == m.Tracking,
			})
		}
	}

	for _, mt := range d.TypeSupported {
		ch.Types = append(ch.Types, choice{
			Value:    mt,
			Label:    localizeKeyword("media-type", mt),
			Selected: mt == m.Type,
		})
	}

	return ch
}

func buildMediaView(d printer.DriverOptions) mediaView {
	var view mediaView
	for i, source := range d.Sources {
		if source == sourceManual {
			continue
		}
		view.Choosers = append(view.Choosers, buildMediaChooser(d, i))
	}
	return view
}

// rebuildReadyMedia constructs the full ready-media list from a
// submission. Sources without a size field are left unconfigured;
// every submitted group is stamped with its source and margins even
// when the size keyword cannot be resolved.
func rebuildReadyMedia(d printer.DriverOptions, form Form) []printer.MediaCol {
	ready := make([]printer.MediaCol, len(d.Sources))
	for i, source := range d.Sources {
		prefix := fmt.Sprintf("ready%d", i)
		sizeName, ok := form.Get(prefix + "-size")
		if !ok {
			continue
		}
		m := &ready[i]
		if sizeName == "custom" {
			w, wok := form.Get(prefix + "-custom-width")
			l, lok := form.Get(prefix + "-custom-length")
			if wok && lok {
				wIn, _ := strconv.ParseFloat(w, 64)
				lIn, _ := strconv.ParseFloat(l, 64)
				m.SizeName = media.CustomName(source, wIn, lIn)
				m.Width = media.CustomDimension(wIn)
				m.Length = media.CustomDimension(lIn)
			}
		} else if size, parsed := media.Parse(sizeName); parsed {
			m.SizeName = sizeName
			m.Width = size.Width
			m.Length = size.Length
		}
		m.Source = source
		if !form.Has(prefix + "-borderless") {
			m.BottomMargin, m.TopMargin = d.BottomTop, d.BottomTop
			m.LeftMargin, m.RightMargin = d.LeftRight, d.LeftRight
		}
		if v, ok := form.Get(prefix + "-top-offset"); ok {
			f, _ := strconv.ParseFloat(v, 64)
			m.TopOffset = int(media.HundredthsPerMM * f)
		}
		if v, ok := form.Get(prefix + "-tracking"); ok {
			if t, tok := printer.ParseTracking(v); tok {
				m.Tracking = t
			}
		}
		if v, ok := form.Get(prefix + "-type"); ok {
			m.Type = v
		}
	}
	return ready
}

func (wi *WebIF) handleMedia(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	var banner string
	if r.Method == http.MethodPost {
		form, ok := parseForm(r)
		switch {
		case !ok:
			banner = bannerInvalidFormData
		case !wi.validForm(r, form):
			banner = bannerInvalidFormSubmission
		default:
			if err := p.SetReadyMedia(rebuildReadyMedia(p.Driver(), form)); err != nil {
				wi.log.Error("ready media update failed", "printer", p.Name(), "error", err.Error())
				banner = bannerInvalidFormData
			} else {
				banner = bannerChangesSaved
				wi.log.Info("ready media updated", "printer", p.Name())
			}
		}
	}
	wi.render(w, r, p, "media", "Media", 0, banner, buildMediaView(p.Driver()))
}
