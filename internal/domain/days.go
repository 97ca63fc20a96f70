package domain

import "time"

// dayNames maps weekday ordinals (Monday = 0) to display names, matching the
// numbering used by house calendars.
var dayNames = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

// DayName returns the display name for a weekday, with Monday first.
func DayName(d time.Weekday) string {
	// time.Weekday counts from Sunday; shift so Monday is 0.
	return dayNames[(int(d)+6)%7]
}
