// Package views renders the contact page and its htmx fragments from a
// contactform.Snapshot.
package views
