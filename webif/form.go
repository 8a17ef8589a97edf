package webif

import (
	"net/http"
	"net/url"
)

// Banner messages shown inline when a submission cannot be applied.
// The page re-renders with the banner; no error crosses the handler
// boundary.
const (
	bannerInvalidFormData       = "Invalid form data."
	bannerInvalidFormSubmission = "Invalid form submission."
	bannerInvalidJobID          = "Invalid Job ID."
	bannerInvalidGetData        = "Invalid GET data."
	bannerChangesSaved          = "Changes saved."
)

// Form is one parsed request-scoped submission. Field presence matters:
// a present-but-empty field clears a value while an absent field leaves
// it untouched, so lookups return an explicit ok flag.
type Form struct {
	values url.Values
}

// parseForm decodes the POST body (or the query string on GET) into a
// Form. A submission with no fields at all reports ok=false, matching
// the "Invalid form data." handling.
func parseForm(r *http.Request) (Form, bool) {
	if err := r.ParseForm(); err != nil {
		return Form{}, false
	}
	var src url.Values
	if r.Method == http.MethodPost {
		src = r.PostForm
	} else {
		src = r.URL.Query()
	}
	if len(src) == 0 {
		return Form{}, false
	}
	return Form{values: src}, true
}

// NewForm builds a Form directly from values; used by tests and by
// callers that already hold parsed fields.
func NewForm(values url.Values) Form {
	return Form{values: values}
}

// Get returns the first value for name and whether the field was
// present in the submission.
func (f Form) Get(name string) (string, bool) {
	if f.values == nil {
		return "", false
	}
	vs, ok := f.values[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Has reports whether the field was present, regardless of value.
func (f Form) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Values exposes the underlying field map for validation hooks.
func (f Form) Values() url.Values {
	return f.values
}
