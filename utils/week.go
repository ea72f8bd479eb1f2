package utils

import (
	"fmt"
	"regexp"
	"time"
)

// Week tokens have the fixed shape YY-MM-wN (two-digit year and month,
// week-of-month ordinal). The fixed width makes lexicographic order match
// chronological order.
var WeekPattern = regexp.MustCompile(`^\d{2}-\d{2}-w\d+$`)

// KST is the study group's calendar timezone (UTC+9, no DST)
var KST = time.FixedZone("KST", 9*60*60)

// CurrentWeek computes the week token for the given instant on the KST calendar.
// The week-of-month ordinal is ceil(day/7).
func CurrentWeek(now time.Time) string {
	kst := now.In(KST)
	year := kst.Year() % 100
	month := int(kst.Month())
	weekNum := (kst.Day() + 6) / 7
	return fmt.Sprintf("%02d-%02d-w%d", year, month, weekNum)
}

// IsValidWeek reports whether s is a well-formed week token
func IsValidWeek(s string) bool {
	return WeekPattern.MatchString(s)
}

// KSTDate formats the given instant as a YYYY-MM-DD string on the KST calendar
func KSTDate(t time.Time) string {
	return t.In(KST).Format("2006-01-02")
}
