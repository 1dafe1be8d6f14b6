package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func dr(from, to int) DateRange {
	return DateRange{From: day(from), To: day(to)}
}

func TestDateRange_Overlaps_Boundaries(t *testing.T) {
	existing := dr(10, 15)

	tests := []struct {
		name      string
		requested DateRange
		want      bool
	}{
		{"overlapping the start", dr(8, 12), true},
		{"overlapping the end", dr(13, 17), true},
		{"nested inside existing", dr(11, 14), true},
		{"existing nested inside requested", dr(8, 17), true},
		{"identical range", dr(10, 15), true},
		{"disjoint earlier", dr(1, 2), false},
		{"disjoint later", dr(20, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.requested))
		})
	}
}

// The predicate is asymmetric on purpose: a new booking starting the day an
// existing one ends passes, while a new booking ending the day an existing
// one starts conflicts.
func TestDateRange_Overlaps_BackToBack(t *testing.T) {
	assert.False(t, dr(10, 15).Overlaps(dr(15, 20)), "new starts on existing end")
	assert.True(t, dr(15, 20).Overlaps(dr(10, 15)), "new ends on existing start")
}

func TestDateRange_Overlaps_SingleDay(t *testing.T) {
	assert.True(t, dr(10, 10).Overlaps(dr(10, 10)))
	assert.False(t, dr(10, 10).Overlaps(dr(11, 11)))
}

func TestDateRange_ContainsDay(t *testing.T) {
	r := dr(10, 15)

	assert.True(t, r.ContainsDay(day(10)))
	assert.True(t, r.ContainsDay(day(12)))
	assert.True(t, r.ContainsDay(day(15)))
	assert.False(t, r.ContainsDay(day(9)))
	assert.False(t, r.ContainsDay(day(16)))

	// time-of-day is ignored
	noon := day(15).Add(12 * time.Hour)
	assert.True(t, r.ContainsDay(noon))
}

func TestNewDateRange_NormalizesToMidnightUTC(t *testing.T) {
	from := time.Date(2026, 9, 10, 18, 30, 12, 0, time.UTC)
	to := time.Date(2026, 9, 12, 3, 0, 0, 0, time.UTC)

	r := NewDateRange(from, to)

	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), r.To)
}

func TestUsageForCountries(t *testing.T) {
	assert.Equal(t, UsageDomestic, UsageForCountries(nil))
	assert.Equal(t, UsageDomestic, UsageForCountries([]string{}))
	assert.Equal(t, UsageForeign, UsageForCountries([]string{"Austria"}))
}
