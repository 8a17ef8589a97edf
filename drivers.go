package main

import (
	"fmt"
	"sort"

	"printdesk/server/printer"
)

// driverPresets are the built-in queue drivers selectable with
// -driver. Real deployments would load these from a driver catalog;
// the presets cover the two capability shapes the admin pages care
// about: a cut-sheet office printer and a thermal label printer.
var driverPresets = map[string]func() printer.DriverOptions{
	"office-generic": officeDriver,
	"label-2inch":    labelDriver,
}

func driverOptions(name string) (printer.DriverOptions, error) {
	preset, ok := driverPresets[name]
	if !ok {
		names := make([]string, 0, len(driverPresets))
		for n := range driverPresets {
			names = append(names, n)
		}
		sort.Strings(names)
		return printer.DriverOptions{}, fmt.Errorf("unknown driver %q (available: %v)", name, names)
	}
	return preset(), nil
}

// officeDriver models a duplexing color office printer with two trays
// plus a manual feed slot.
func officeDriver() printer.DriverOptions {
	const margin = 423 // 1/6 inch in hundredths of millimeters

	letter := printer.MediaCol{
		SizeName: "na_letter_8.5x11in", Width: 21590, Length: 27940,
		BottomMargin: margin, TopMargin: margin, LeftMargin: margin, RightMargin: margin,
		Source: "tray-1", Type: "stationery",
	}
	a4 := printer.MediaCol{
		SizeName: "iso_a4_210x297mm", Width: 21000, Length: 29700,
		BottomMargin: margin, TopMargin: margin, LeftMargin: margin, RightMargin: margin,
		Source: "tray-2", Type: "stationery",
	}

	return printer.DriverOptions{
		ColorSupported: printer.ColorModes(printer.ColorModeAuto, printer.ColorModeAutoMonochrome,
			printer.ColorModeColor, printer.ColorModeMonochrome),
		ColorDefault:   printer.ColorModeAuto,
		ContentDefault: printer.ContentAuto,
		ScalingDefault: printer.ScalingAuto,
		SidesSupported: printer.SidesValues(printer.SidesOneSided,
			printer.SidesTwoSidedLongEdge, printer.SidesTwoSidedShortEdge),
		SidesDefault: printer.SidesOneSided,

		OrientationDefault: printer.OrientationNone,
		QualityDefault:     printer.QualityNormal,

		ResolutionDefault: printer.Resolution{X: 600, Y: 600},
		Resolutions:       []printer.Resolution{{X: 300, Y: 300}, {X: 600, Y: 600}},

		MediaSupported: []string{
			"na_letter_8.5x11in",
			"na_legal_8.5x14in",
			"na_executive_7.25x10.5in",
			"iso_a4_210x297mm",
			"iso_a5_148x210mm",
			"na_number-10_4.125x9.5in",
			"iso_dl_110x220mm",
		},
		TypeSupported: []string{"stationery", "stationery-letterhead", "labels", "photographic-glossy"},
		Sources:       []string{"tray-1", "tray-2", "manual"},

		MediaDefault: letter,
		MediaReady:   []printer.MediaCol{letter, a4, {}},

		BottomTop: margin,
		LeftRight: margin,
	}
}

// labelDriver models a 2-inch thermal label printer: darkness and
// speed controls, tracking, custom sizes, borderless.
func labelDriver() printer.DriverOptions {
	label := printer.MediaCol{
		SizeName: "oe_2x3-label_2x3in", Width: 5080, Length: 7620,
		Source: "main-roll", Type: "labels",
		Tracking: printer.TrackingWeb,
	}

	return printer.DriverOptions{
		ColorSupported: printer.ColorModes(printer.ColorModeAuto, printer.ColorModeMonochrome),
		ColorDefault:   printer.ColorModeMonochrome,
		ContentDefault: printer.ContentAuto,
		ScalingDefault: printer.ScalingAuto,
		SidesSupported: printer.SidesValues(printer.SidesOneSided),
		SidesDefault:   printer.SidesOneSided,

		OrientationDefault: printer.OrientationNone,
		QualityDefault:     printer.QualityNormal,

		DarknessConfigured: 50,
		DarknessSupported:  16,

		SpeedDefault:   0,
		SpeedSupported: [2]int{2540, 4 * 2540},

		ResolutionDefault: printer.Resolution{X: 203, Y: 203},
		Resolutions:       []printer.Resolution{{X: 203, Y: 203}},

		MediaSupported: []string{
			"oe_1.25x0.25-label_1.25x0.25in",
			"oe_2x3-label_2x3in",
			"oe_2x4-label_2x4in",
			"roll_min_0.75x0.25in",
			"roll_max_2x12in",
		},
		TypeSupported: []string{"labels", "labels-continuous"},
		Sources:       []string{"main-roll"},

		MediaDefault: label,
		MediaReady:   []printer.MediaCol{label},

		Borderless:         true,
		TopOffsetSupported: [2]int{-1500, 1500},
		TrackingSupported: printer.TrackingValues(printer.TrackingContinuous,
			printer.TrackingMark, printer.TrackingWeb),
	}
}
