package domain

import (
	"fmt"
	"time"
)

// DayLayout is the canonical calendar-day key format.
const DayLayout = "2006-01-02"

// ReportDateLayout is the day/month/year header used in shared reports.
const ReportDateLayout = "02/01/2006"

// DayKey returns the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(orLocal(loc)).Format(DayLayout)
}

// SameCalendarDay reports whether a and b fall on the same calendar day in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	loc = orLocal(loc)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ISOWeekKey returns the ISO-8601 week of t in loc, e.g. "2024-W37". The year
// is the ISO week-year, so Dec 30 2024 is "2025-W01".
func ISOWeekKey(t time.Time, loc *time.Location) string {
	year, week := t.In(orLocal(loc)).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
