package rendering

import "time"

// FormatDate turns an ISO date ("2024-03-01") into its long display form
// ("March 2024"). Empty input formats to empty display text and unparsable
// input is passed through unchanged; display formatting never errors.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2006")
		}
	}
	return iso
}

// DateRange renders "start - end" for an entry. A current entry shows
// "Present" regardless of whatever endDate holds; the flag always wins.
func DateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := "Present"
	if !current {
		to = FormatDate(end)
	}
	return from + " - " + to
}
