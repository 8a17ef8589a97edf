package webif

import (
	"fmt"
	"strings"

	"printdesk/server/media"
	"printdesk/server/printer"
)

// localizeKeyword renders an IPP keyword as human-readable English.
// attr selects attribute-specific handling; unknown keywords fall back
// to title-casing with hyphens turned into spaces.
func localizeKeyword(attr, keyword string) string {
	switch keyword {
	case "bi-level":
		return "B&W (no shading)"
	case "monochrome":
		return "B&W"
	case "main-roll":
		return "Main"
	case "alternate-roll":
		return "Alternate"
	case "labels":
		return "Cut Labels"
	case "labels-continuous":
		return "Continuous Labels"
	case "stationery":
		return "Plain Paper"
	case "stationery-letterhead":
		return "Letterhead"
	case "one-sided":
		return "Off"
	case "two-sided-long-edge":
		return "On (Portrait)"
	case "two-sided-short-edge":
		return "On (Landscape)"
	case "continuous":
		if attr == "media-type" {
			return "Continuous Paper"
		}
	}

	if strings.HasPrefix(keyword, "photographic") {
		if rest, ok := strings.CutPrefix(keyword, "photographic-"); ok && rest != "" {
			return fmt.Sprintf("%c%s Photo Paper", toUpper(rest[0]), rest[1:])
		}
		return "Photo Paper"
	}

	if attr == "media" {
		if legacy := media.LegacyName(keyword); legacy != "" {
			switch legacy {
			case "Letter":
				return "US Letter"
			case "Legal":
				return "US Legal"
			case "Env10":
				return "#10 Envelope"
			case "EnvDL":
				return "DL Envelope"
			default:
				return legacy
			}
		}
		if size, ok := media.Parse(keyword); ok {
			if size.Width%media.HundredthsPerMM == 0 && size.Width%media.HundredthsPerInch != 0 {
				return fmt.Sprintf("%d x %dmm", size.Width/media.HundredthsPerMM, size.Length/media.HundredthsPerMM)
			}
			return fmt.Sprintf("%g x %g\"", float64(size.Width)/media.HundredthsPerInch, float64(size.Length)/media.HundredthsPerInch)
		}
	}

	return titleCase(keyword)
}

// localizeMedia summarizes a ready media entry as "size (type)", with
// the source appended when several slots share the same size.
func localizeMedia(m printer.MediaCol, includeSource bool) string {
	size := "Unknown"
	if m.SizeName != "" {
		size = localizeKeyword("media", m.SizeName)
	}
	mtype := "Unknown"
	if m.Type != "" {
		mtype = localizeKeyword("media-type", m.Type)
	}
	if includeSource {
		return fmt.Sprintf("%s (%s) from %s", size, mtype, localizeKeyword("media-source", m.Source))
	}
	return fmt.Sprintf("%s (%s)", size, mtype)
}

func titleCase(keyword string) string {
	var b strings.Builder
	b.Grow(len(keyword))
	up := true
	for i := 0; i < len(keyword); i++ {
		c := keyword[i]
		if c == '-' {
			b.WriteByte(' ')
			up = true
			continue
		}
		if up {
			c = toUpper(c)
			up = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
