package domain

import "time"

// DateRange is a pair of calendar dates with From <= To. Comparisons are
// date-only; both ends are normalized to midnight UTC.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: ToDateOnly(from), To: ToDateOnly(to)}
}

// ToDateOnly drops the time-of-day component.
func ToDateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the existing range r conflicts with a requested
// range. The predicate is deliberately asymmetric in its boundary handling
// (strict "ends after" in the first two clauses, inclusive bounds in the
// nested clause), so back-to-back bookings are admitted only in some boundary
// combinations. The booking repository relies on this exact formula; do not
// replace it with a symmetric interval test.
func (r DateRange) Overlaps(requested DateRange) bool {
	ef, et := r.From, r.To
	rf, rt := requested.From, requested.To

	if !ef.After(rf) && et.After(rf) {
		return true
	}
	if !ef.After(rt) && et.After(rt) {
		return true
	}
	return !ef.Before(rf) && !et.After(rt)
}

// ContainsDay reports whether the given day falls inside the range,
// boundaries included.
func (r DateRange) ContainsDay(day time.Time) bool {
	d := ToDateOnly(day)
	return !r.From.After(d) && !r.To.Before(d)
}
