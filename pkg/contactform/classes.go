package contactform

import (
	"slices"
	"strings"
)

// CSS classes applied to the widget elements.
const (
	ClassHidden = "hidden"

	// MessageClass identifies the message region inside a form.
	MessageClass = "form-message"
)

var (
	messageBaseClasses    = []string{MessageClass, "mt-4", "p-3", "rounded-md"}
	messageSuccessClasses = []string{"bg-green-100", "text-green-800", "dark:bg-green-900", "dark:text-green-200"}
	messageFailureClasses = []string{"bg-red-100", "text-red-800", "dark:bg-red-900", "dark:text-red-200"}
	buttonDisabledClasses = []string{"opacity-50", "cursor-not-allowed"}
)

// ClassList is an ordered set of CSS class names.
type ClassList []string

// NewClassList builds a ClassList from space-separated class strings.
func NewClassList(classes ...string) ClassList {
	var l ClassList
	for _, c := range classes {
		l.Add(strings.Fields(c)...)
	}
	return l
}

// Add appends classes that are not present yet.
func (l *ClassList) Add(classes ...string) {
	for _, c := range classes {
		if c != "" && !slices.Contains(*l, c) {
			*l = append(*l, c)
		}
	}
}

// Remove deletes the given classes.
func (l *ClassList) Remove(classes ...string) {
	*l = slices.DeleteFunc(*l, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// Has reports whether class is present.
func (l ClassList) Has(class string) bool {
	return slices.Contains(l, class)
}

// String renders the list as a class attribute value.
func (l ClassList) String() string {
	return strings.Join(l, " ")
}

// Clone returns an independent copy.
func (l ClassList) Clone() ClassList {
	return slices.Clone(l)
}
