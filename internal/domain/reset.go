package domain

import "time"

// PeriodKey returns the marker identifying the current reset period for a
// cadence: the calendar day for daily domains, the ISO week for weekly ones.
func PeriodKey(c ResetCadence, now time.Time, loc *time.Location) string {
	if c == ResetWeekly {
		return ISOWeekKey(now, loc)
	}
	return DayKey(now, loc)
}

// ResetDecision is the outcome of evaluating one cadence at cold start.
type ResetDecision struct {
	Cadence  ResetCadence
	Previous string
	Current  string
	Discard  bool
}

// EvaluateReset compares the stored marker with the current period. A
// missing marker counts as a different period.
func EvaluateReset(c ResetCadence, stored string, now time.Time, loc *time.Location) ResetDecision {
	cur := PeriodKey(c, now, loc)
	return ResetDecision{
		Cadence:  c,
		Previous: stored,
		Current:  cur,
		Discard:  stored != cur,
	}
}
