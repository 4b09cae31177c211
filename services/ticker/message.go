package ticker

import (
	"fmt"
	"strings"
	"time"
)

// ComposeMessage builds the visitor-facing ticker text for a blocked day from
// the admin's reason and the affected slots. An empty slot list means the
// whole day is closed.
func ComposeMessage(reason, date string, timeSlots []string) string {
	pretty := date
	if day, err := time.ParseInLocation("2006-01-02", date, time.UTC); err == nil {
		pretty = day.Format("Monday, Jan 2, 2006")
	}

	if len(timeSlots) == 0 {
		return fmt.Sprintf("%s on %s. The clinic is not taking appointments that day.", reason, pretty)
	}
	return fmt.Sprintf("%s on %s. Affected slots: %s.", reason, pretty, strings.Join(timeSlots, ", "))
}
