package ticker

import "time"

// Display window policy: a blocked-date notice runs from two days before the
// blocked day through the end of the day after it. Computed from the blocked
// day on every read so the policy has a single home.
const (
	windowDaysBefore = 2
	windowDaysAfter  = 1
)

// Window returns the inclusive display window for a notice about the given
// blocked day ("2006-01-02").
func Window(date string) (start, end time.Time, err error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = day.AddDate(0, 0, -windowDaysBefore)
	end = day.AddDate(0, 0, windowDaysAfter+1).Add(-time.Second)
	return start, end, nil
}

// WindowCovers reports whether now falls within the display window for date.
func WindowCovers(date string, now time.Time) bool {
	start, end, err := Window(date)
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}
