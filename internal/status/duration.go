package status

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesBetween returns the whole minutes from one "HH:MM" clock time to
// another on the same day. No midnight wraparound is applied; callers only
// pass times where from <= to.
func MinutesBetween(from, to string) int {
	return clockMinutes(to) - clockMinutes(from)
}

func clockMinutes(clock string) int {
	h, m, found := strings.Cut(clock, ":")
	if !found {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// FormatDuration renders a minute count in the source locale: "1시간 30분",
// "1시간" when the minutes part is zero, "45분" when under an hour. Zero
// minutes never reaches this function through the status engine, since a
// lecture starting now makes the room in_use.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%d시간 %d분", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d시간", hours)
	default:
		return fmt.Sprintf("%d분", mins)
	}
}
