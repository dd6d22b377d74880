package classify

import (
	"fmt"
	"time"
)

// Countdown formats the time remaining until target as the schedule header
// shows it. The thresholds are product-visible boundaries:
//
//	<= 0        "now"
//	< 60 min    minutes
//	< 24 h      hours, plus minutes when non-zero
//	>= 24 h     weekday and short date instead of a duration
func Countdown(now, target time.Time, loc *time.Location) string {
	d := target.Sub(now)
	if d <= 0 {
		return "now"
	}
	if d < time.Hour {
		mins := int(d / time.Minute)
		if mins < 1 {
			mins = 1
		}
		return fmt.Sprintf("in %d min", mins)
	}
	if d < 24*time.Hour {
		hours := int(d / time.Hour)
		mins := int(d/time.Minute) % 60
		if mins == 0 {
			return fmt.Sprintf("in %d h", hours)
		}
		return fmt.Sprintf("in %d h %d min", hours, mins)
	}
	return target.In(loc).Format("Mon, Jan 2")
}
