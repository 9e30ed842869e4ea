// Package htmx reads htmx request headers and sets its response headers
// for fragment renders.
package htmx
