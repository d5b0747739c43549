package domain

import "time"

// DateLayout is the calendar date format used by the APOD feed.
const DateLayout = "2006-01-02"

// InvalidDate is rendered for dates that cannot be parsed.
const InvalidDate = "Invalid Date"

// FormatDate renders a YYYY-MM-DD date in US-English long form,
// e.g. "2024-06-12" becomes "June 12, 2024".
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return InvalidDate
	}
	return t.Format("January 2, 2006")
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD calendar date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
