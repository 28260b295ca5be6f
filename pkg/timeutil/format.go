// Package timeutil provides time formatting utilities for augur.
//
// Dates in the dashboard are shown as month/day/year with a
// two-digit month and day and a four-digit year.
package timeutil

import "time"

// DateLayout is the month/day/year layout used by the detail panel.
const DateLayout = "01/02/2006"

// None is shown in place of an absent value.
const None = "None"

// FormatDate formats t as "MM/DD/YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate formats t when ok is true and returns None otherwise.
func FormatOptionalDate(t time.Time, ok bool) string {
	if !ok {
		return None
	}
	return FormatDate(t)
}
