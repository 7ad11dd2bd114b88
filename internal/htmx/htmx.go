package htmx

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the header htmx sets on every request it issues.
const RequestHeaderKey = "HX-Request"

// RefreshHeaderKey makes htmx reload the whole page when set to "true".
const RefreshHeaderKey = "HX-Refresh"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// Render writes fragment for htmx requests and full otherwise.
// A nil component falls back to the other one.
func Render(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	target := full
	if IsHTMXRequest(r) && fragment != nil {
		target = fragment
	}
	if target == nil {
		target = fragment
	}
	if target == nil {
		return
	}
	templ.Handler(target).ServeHTTP(w, r)
}
