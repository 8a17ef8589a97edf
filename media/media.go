// Package media resolves PWG self-describing media size names and the
// unit conversions between form values (inches, millimeters) and the
// internal hundredths-of-millimeter representation.
package media

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit scale factors for the internal hundredths-of-millimeter
// representation. Sizes and print speeds convert from inches with
// HundredthsPerInch; media top offsets convert from millimeter form
// fields with HundredthsPerMM. The two scales are not interchangeable.
const (
	HundredthsPerInch = 2540
	HundredthsPerMM   = 100
)

// Size is a resolved media size with dimensions in hundredths of
// millimeters.
type Size struct {
	Name   string
	Width  int
	Length int
}

// legacyNames maps the class_name prefix of well-known PWG size names
// to their legacy PPD names, which drive display-label special cases.
var legacyNames = map[string]string{
	"na_letter":    "Letter",
	"na_legal":     "Legal",
	"na_number-10": "Env10",
	"iso_a4":       "A4",
	"iso_a5":       "A5",
	"iso_a6":       "A6",
	"iso_dl":       "EnvDL",
}

// Parse resolves a PWG self-describing size name such as
// "na_letter_8.5x11in" or "iso_a4_210x297mm" into its dimensions. The
// final underscore-separated token carries "<width>x<length><unit>"
// with unit "in" or "mm". Synthesized custom names parse the same way.
func Parse(name string) (Size, bool) {
	idx := strings.LastIndex(name, "_")
	if idx < 0 || idx == len(name)-1 {
		return Size{}, false
	}
	dims := name[idx+1:]

	var scale float64
	switch {
	case strings.HasSuffix(dims, "in"):
		scale = HundredthsPerInch
		dims = strings.TrimSuffix(dims, "in")
	case strings.HasSuffix(dims, "mm"):
		scale = HundredthsPerMM
		dims = strings.TrimSuffix(dims, "mm")
	default:
		return Size{}, false
	}

	wstr, lstr, ok := strings.Cut(dims, "x")
	if !ok {
		return Size{}, false
	}
	w, err := strconv.ParseFloat(wstr, 64)
	if err != nil {
		return Size{}, false
	}
	l, err := strconv.ParseFloat(lstr, 64)
	if err != nil {
		return Size{}, false
	}
	if w <= 0 || l <= 0 {
		return Size{}, false
	}

	return Size{
		Name:   name,
		Width:  int(math.Round(w * scale)),
		Length: int(math.Round(l * scale)),
	}, true
}

// LegacyName returns the PPD-style name for well-known sizes ("Letter",
// "Env10", ...), or "" when the size has none.
func LegacyName(name string) string {
	idx := strings.LastIndex(name, "_")
	if idx < 0 {
		return ""
	}
	return legacyNames[name[:idx]]
}

// CustomName synthesizes the stored size name for administrator-entered
// custom dimensions, e.g. "custom_main_8.50x14.00in".
func CustomName(source string, widthInches, lengthInches float64) string {
	return fmt.Sprintf("custom_%s_%.2fx%.2fin", source, widthInches, lengthInches)
}

// CustomDimension converts an inch value from a custom size form field
// to hundredths of millimeters, truncating like the stored values
// always have.
func CustomDimension(inches float64) int {
	return int(HundredthsPerInch * inches)
}

// IsRangeKeyword reports whether a supported-size keyword marks the
// min or max bound of a custom size range: a "custom_" or "roll_"
// prefixed name containing a "_min_" or "_max_" token.
func IsRangeKeyword(name string) (isMin, isMax bool) {
	if !strings.HasPrefix(name, "custom_") && !strings.HasPrefix(name, "roll_") {
		return false, false
	}
	if strings.Contains(name, "_min_") {
		return true, false
	}
	if strings.Contains(name, "_max_") {
		return false, true
	}
	return false, false
}
