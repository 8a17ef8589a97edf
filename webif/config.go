package webif

import (
	"fmt"
	"net/http"
	"strconv"

	"printdesk/server/printer"
)

// configView carries the current identity values into the form.
type configView struct {
	DNSSDName          string
	Location           string
	Latitude           string
	Longitude          string
	Organization       string
	OrganizationalUnit string
	ContactName        string
	ContactEmail       string
	ContactTelephone   string
}

func buildConfigView(id printer.Identity) configView {
	view := configView{
		DNSSDName:          id.DNSSDName,
		Location:           id.Location,
		Organization:       id.Organization,
		OrganizationalUnit: id.OrganizationalUnit,
		ContactName:        id.Contact.Name,
		ContactEmail:       id.Contact.Email,
		ContactTelephone:   id.Contact.Telephone,
	}
	if lat, lon, ok := parseGeo(id.GeoLocation); ok {
		view.Latitude = strconv.FormatFloat(lat, 'g', -1, 64)
		view.Longitude = strconv.FormatFloat(lon, 'g', -1, 64)
	}
	return view
}

// parseGeo decodes a "geo:lat,lon" URI.
func parseGeo(s string) (lat, lon float64, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	if n, err := fmt.Sscanf(s, "geo:%g,%g", &lat, &lon); err != nil || n != 2 {
		return 0, 0, false
	}
	return lat, lon, true
}

// applyConfig folds a submission into the printer identity. Fields
// absent from the form are left untouched; present-but-empty fields
// clear their value. The geolocation pair is handled together, and the
// contact block is replaced wholesale as soon as any contact field is
// submitted.
func applyConfig(p *printer.Printer, form Form) printer.Identity {
	return p.UpdateIdentity(func(id *printer.Identity) {
		if v, ok := form.Get("dns_sd_name"); ok {
			id.DNSSDName = v
		}
		if v, ok := form.Get("location"); ok {
			id.Location = v
		}
		if lat, latOK := form.Get("geo_location_lat"); latOK {
			if lon, lonOK := form.Get("geo_location_lon"); lonOK {
				if lat != "" && lon != "" {
					latF, _ := strconv.ParseFloat(lat, 64)
					lonF, _ := strconv.ParseFloat(lon, 64)
					id.GeoLocation = fmt.Sprintf("geo:%g,%g", latF, lonF)
				} else {
					id.GeoLocation = ""
				}
			}
		}
		if v, ok := form.Get("organization"); ok {
			id.Organization = v
		}
		if v, ok := form.Get("organizational_unit"); ok {
			id.OrganizationalUnit = v
		}
		if form.Has("contact_name") || form.Has("contact_email") || form.Has("contact_telephone") {
			var contact printer.Contact
			if v, ok := form.Get("contact_name"); ok {
				contact.Name = v
			}
			if v, ok := form.Get("contact_email"); ok {
				contact.Email = v
			}
			if v, ok := form.Get("contact_telephone"); ok {
				contact.Telephone = v
			}
			id.Contact = contact
		}
	})
}

func (wi *WebIF) handleConfig(w http.ResponseWriter, r *http.Request, p *printer.Printer) {
	var banner string
	if r.Method == http.MethodPost {
		form, ok := parseForm(r)
		switch {
		case !ok:
			banner = bannerInvalidFormData
		case !wi.validForm(r, form):
			banner = bannerInvalidFormSubmission
		default:
			applyConfig(p, form)
			banner = bannerChangesSaved
			wi.log.Info("printer configuration updated", "printer", p.Name())
		}
	}
	wi.render(w, r, p, "config", "Configuration", 0, banner, buildConfigView(p.Identity()))
}
