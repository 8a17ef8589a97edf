package webif

import (
	"testing"

	"printdesk/server/printer"
)

func threeTrayDriver() printer.DriverOptions {
	d := testDriver()
	d.Sources = []string{"tray-1", "tray-2", "tray-3"}
	d.MediaReady = []printer.MediaCol{
		{SizeName: "na_letter_8.5x11in", Width: 21590, Length: 27940, Source: "tray-1", Type: "stationery"},
		{SizeName: "iso_a4_210x297mm", Width: 21000, Length: 29700, Source: "tray-2", Type: "stationery"},
		{SizeName: "na_legal_8.5x14in", Width: 21590, Length: 35560, Source: "tray-3", Type: "stationery"},
	}
	return d
}

func TestRebuildReadyMediaOmittedSourceIsZeroed(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "na_legal_8.5x14in",
		"ready1-size", "iso_a4_210x297mm",
	))
	if len(ready) != 3 {
		t.Fatalf("got %d entries, want 3", len(ready))
	}
	if ready[0].SizeName != "na_legal_8.5x14in" || ready[0].Width != 21590 || ready[0].Length != 35560 {
		t.Errorf("ready[0] = %+v", ready[0])
	}
	if ready[1].SizeName != "iso_a4_210x297mm" {
		t.Errorf("ready[1] = %+v", ready[1])
	}
	if !ready[2].IsZero() {
		t.Errorf("omitted source not zeroed: %+v", ready[2])
	}
}

func TestRebuildReadyMediaCustomSize(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "custom",
		"ready0-custom-width", "8.27",
		"ready0-custom-length", "11.69",
	))
	m := ready[0]
	if m.SizeName != "custom_tray-1_8.27x11.69in" {
		t.Errorf("SizeName = %q", m.SizeName)
	}
	// Dimensions truncate rather than round.
	if m.Width != 21005 {
		t.Errorf("Width = %d, want 21005", m.Width)
	}
	if m.Length != 29692 {
		t.Errorf("Length = %d, want 29692", m.Length)
	}
}

func TestRebuildReadyMediaCustomNeedsBothDimensions(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "custom",
		"ready0-custom-width", "4",
	))
	m := ready[0]
	if m.SizeName != "" || m.Width != 0 || m.Length != 0 {
		t.Errorf("half a custom size should leave dimensions unset: %+v", m)
	}
	if m.Source != "tray-1" {
		t.Errorf("Source = %q, want tray-1", m.Source)
	}
	if m.BottomMargin != d.BottomTop || m.LeftMargin != d.LeftRight {
		t.Errorf("margins not stamped: %+v", m)
	}
}

func TestRebuildReadyMediaUnresolvableSizeKeepsGroupFields(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready1-size", "no_such_size",
		"ready1-type", "stationery-letterhead",
		"ready1-top-offset", "1.5",
	))
	m := ready[1]
	if m.SizeName != "" || m.Width != 0 {
		t.Errorf("unresolvable size should not set dimensions: %+v", m)
	}
	if m.Source != "tray-2" || m.Type != "stationery-letterhead" {
		t.Errorf("group fields missing: %+v", m)
	}
	if m.TopOffset != 150 {
		t.Errorf("TopOffset = %d, want 150", m.TopOffset)
	}
}

func TestRebuildReadyMediaBorderless(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "na_letter_8.5x11in",
		"ready0-borderless", "on",
		"ready1-size", "iso_a4_210x297mm",
	))
	if m := ready[0]; m.BottomMargin != 0 || m.LeftMargin != 0 || m.RightMargin != 0 || m.TopMargin != 0 {
		t.Errorf("borderless entry has margins: %+v", m)
	}
	m := ready[1]
	if m.BottomMargin != d.BottomTop || m.TopMargin != d.BottomTop {
		t.Errorf("bottom/top margins = %d/%d, want %d", m.BottomMargin, m.TopMargin, d.BottomTop)
	}
	if m.LeftMargin != d.LeftRight || m.RightMargin != d.LeftRight {
		t.Errorf("left/right margins = %d/%d, want %d", m.LeftMargin, m.RightMargin, d.LeftRight)
	}
}

// Left offset comes from driver configuration only; the form field is
// rendered but never read back, and the top offset uses the
// hundredths-per-millimeter scale rather than the size scale.
func TestRebuildReadyMediaOffsetHandling(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "na_letter_8.5x11in",
		"ready0-left-offset", "5",
		"ready0-top-offset", "5",
	))
	if ready[0].LeftOffset != 0 {
		t.Errorf("LeftOffset = %d, want 0", ready[0].LeftOffset)
	}
	if ready[0].TopOffset != 500 {
		t.Errorf("TopOffset = %d, want 500", ready[0].TopOffset)
	}
}

func TestRebuildReadyMediaTracking(t *testing.T) {
	d := threeTrayDriver()
	ready := rebuildReadyMedia(d, formOf(
		"ready0-size", "na_letter_8.5x11in",
		"ready0-tracking", "mark",
		"ready1-size", "iso_a4_210x297mm",
		"ready1-tracking", "sideways",
	))
	if ready[0].Tracking != printer.TrackingMark {
		t.Errorf("Tracking = %v, want mark", ready[0].Tracking)
	}
	if ready[1].Tracking != 0 {
		t.Errorf("unknown tracking keyword stored: %v", ready[1].Tracking)
	}
}

func TestBuildMediaChooserSelection(t *testing.T) {
	d := testDriver()
	ch := buildMediaChooser(d, 0)
	if !ch.HasCustom {
		t.Fatal("driver with range markers should offer custom size")
	}
	if ch.Sizes[0].Value != "custom" || ch.Sizes[0].Label != "Custom Size" {
		t.Fatalf("first option = %+v, want custom", ch.Sizes[0])
	}
	if ch.CustomSelected {
		t.Error("standard size loaded but custom selected")
	}
	var selected string
	for _, c := range ch.Sizes {
		if c.Selected {
			selected = c.Value
		}
	}
	if selected != "na_letter_8.5x11in" {
		t.Errorf("selected = %q, want na_letter_8.5x11in", selected)
	}
	for _, c := range ch.Sizes {
		if isMin, isMax := c.Value == "custom_min_3x5in", c.Value == "custom_max_8.5x14in"; isMin || isMax {
			t.Errorf("range marker %q offered as a size", c.Value)
		}
	}
}

func TestBuildMediaChooserCustomLoaded(t *testing.T) {
	d := testDriver()
	d.MediaReady[0] = printer.MediaCol{
		SizeName: "custom_tray-1_4.00x6.00in",
		Width:    10160,
		Length:   15240,
		Source:   "tray-1",
	}
	ch := buildMediaChooser(d, 0)
	if !ch.CustomSelected {
		t.Fatal("custom size loaded but not selected")
	}
	if ch.Width != "4.00" || ch.Length != "6.00" {
		t.Errorf("custom dims = %s x %s, want 4.00 x 6.00", ch.Width, ch.Length)
	}
}

func TestBuildMediaChooserBounds(t *testing.T) {
	d := testDriver()
	ch := buildMediaChooser(d, 0)
	if ch.MinWidth != "3.00" || ch.MinLength != "5.00" {
		t.Errorf("min = %s x %s, want 3.00 x 5.00", ch.MinWidth, ch.MinLength)
	}
	if ch.MaxWidth != "8.50" || ch.MaxLength != "14.00" {
		t.Errorf("max = %s x %s, want 8.50 x 14.00", ch.MaxWidth, ch.MaxLength)
	}

	// Values clamp into the advertised range.
	d.MediaReady[0] = printer.MediaCol{SizeName: "custom_tray-1_1.00x2.00in", Width: 2540, Length: 5080, Source: "tray-1"}
	ch = buildMediaChooser(d, 0)
	if ch.Width != "3.00" || ch.Length != "5.00" {
		t.Errorf("clamped dims = %s x %s, want 3.00 x 5.00", ch.Width, ch.Length)
	}
}

func TestCustomRangeFallbackBounds(t *testing.T) {
	min, max, ok := customRange([]string{"custom_min_bad", "custom_max_bad", "na_letter_8.5x11in"})
	if !ok {
		t.Fatal("markers present, custom should be offered")
	}
	if min.Width != 2540 || min.Length != 2540 {
		t.Errorf("fallback min = %dx%d, want 2540x2540", min.Width, min.Length)
	}
	if max.Width != 9*2540 || max.Length != 22*2540 {
		t.Errorf("fallback max = %dx%d, want %dx%d", max.Width, max.Length, 9*2540, 22*2540)
	}

	if _, _, ok := customRange([]string{"custom_min_3x5in", "na_letter_8.5x11in"}); ok {
		t.Error("custom offered with only a min marker")
	}
}

func TestBuildMediaViewSkipsManual(t *testing.T) {
	d := testDriver()
	view := buildMediaView(d)
	if len(view.Choosers) != 2 {
		t.Fatalf("got %d choosers, want 2", len(view.Choosers))
	}
	for _, ch := range view.Choosers {
		if ch.Title == "Manual" {
			t.Error("manual source got a chooser")
		}
	}
	if view.Choosers[0].Prefix != "ready0" || view.Choosers[1].Prefix != "ready1" {
		t.Errorf("prefixes = %s,%s", view.Choosers[0].Prefix, view.Choosers[1].Prefix)
	}
}
