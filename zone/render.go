package zone

import (
	"fmt"
	"time"
)

// Record is the rendered view of one zone at one adjusted instant.
type Record struct {
	Clock       string // hour:minute, 12-hour form
	Meridiem    string // "AM" or "PM"
	Date        string // full weekday, month and day
	Daytime     bool   // picks the sun/moon glyph
	RelativeDay string // "Today", "Tomorrow", "In 2 days", ...
}

// Render maps (reference instant, offset minutes, location) to a display
// record. Pure and deterministic: identical inputs always produce identical
// records. The offset is applied to the instant before zone conversion, so
// DST transitions resolve according to the zone's rules at the shifted
// moment.
func Render(ref time.Time, offsetMinutes int, loc *time.Location) Record {
	local := ref.Add(time.Duration(offsetMinutes) * time.Minute).In(loc)

	return Record{
		Clock:       local.Format("3:04"),
		Meridiem:    local.Format("PM"),
		Date:        local.Format("Monday, January 2"),
		Daytime:     Daytime(local.Hour()),
		RelativeDay: RelativeDayLabel(dayDelta(local, ref)),
	}
}

// Daytime reports the fixed day/night heuristic: local hour in [6, 18).
// Not tied to actual sunrise or sunset.
func Daytime(hour int) bool {
	return hour >= 6 && hour < 18
}

// RelativeDayLabel maps a whole-day difference to its label.
func RelativeDayLabel(days int) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1:
		return fmt.Sprintf("In %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// dayDelta is the whole-day difference between the zone-local date and the
// reference date taken as-is in the reference's own zone. The reference date
// is deliberately NOT converted to the target zone, reproducing the source
// behavior; near-midnight instants can therefore label a zone a day ahead or
// behind of what a fully zone-aware comparison would say.
func dayDelta(local, ref time.Time) int {
	return int(dateOnly(local).Sub(dateOnly(ref)).Hours() / 24)
}

// dateOnly pins a wall-clock date to midnight UTC so calendar dates subtract
// to exact multiples of 24h.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
