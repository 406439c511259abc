package listing

import (
	"fmt"
	"regexp"
	"time"
)

var locationCodeRe = regexp.MustCompile(`-\s*([A-Z]+)`)

// GenerateRefID derives the externally visible listing identifier from the
// listing's location and the given instant. The shape is
//
//	<location code><yy><week><weekday><minutes since midnight>
//
// where the location code is the run of uppercase letters after the first "-"
// in the location (empty when there is none), the week number is Sunday-based
// with week 00 covering days before the year's first Sunday, and the weekday
// digit runs 0 (Sunday) through 6 (Saturday).
//
// The result is deterministic for a (location, instant) pair but NOT globally
// unique: two listings created in the same UTC minute from locations sharing
// an uppercase suffix collide. The unique index on ref_id rejects the second
// insert.
func GenerateRefID(location string, now time.Time) string {
	now = now.UTC()

	locationCode := ""
	if m := locationCodeRe.FindStringSubmatch(location); m != nil {
		locationCode = m[1]
	}

	yearTwoDigits := fmt.Sprintf("%02d", now.Year()%100)
	week := fmt.Sprintf("%02d", sundayWeek(now))
	weekday := int(now.Weekday())
	minutes := fmt.Sprintf("%04d", now.Hour()*60+now.Minute())

	return fmt.Sprintf("%s%s%s%d%s", locationCode, yearTwoDigits, week, weekday, minutes)
}

// sundayWeek returns the week of the year with Sunday as the first day.
// All days preceding the year's first Sunday are in week 0.
func sundayWeek(t time.Time) int {
	yday := t.YearDay() - 1
	wday := int(t.Weekday())
	return (yday + 7 - wday) / 7
}
