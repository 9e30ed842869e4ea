package htmx

import "net/http"

// IsHTMX reports whether the request was issued by htmx.
// Boosted requests expect a full page and are not counted.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true" && r.Header.Get(HeaderHXBoosted) != "true"
}

// Target returns the id of the element htmx will swap into.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
