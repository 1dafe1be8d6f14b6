package domain

import (
	"fmt"
	"time"
)

type CarUsage string

const (
	UsageDomestic CarUsage = "DOMESTIC"
	UsageForeign  CarUsage = "FOREIGN"
)

// UsageForCountries derives the usage kind from the presence of foreign
// country names; it is never supplied by the caller directly.
func UsageForCountries(countries []string) CarUsage {
	if len(countries) > 0 {
		return UsageForeign
	}
	return UsageDomestic
}

// Booking binds a car to a date range and a usage kind. Bookings are created
// only by the rental service after all checks pass and are never mutated or
// deleted afterwards.
type Booking struct {
	ID        int64     `json:"id"`
	CarVIN    string    `json:"car_vin"`
	FromDate  time.Time `json:"from_date"`
	ToDate    time.Time `json:"to_date"`
	Usage     CarUsage  `json:"usage"`
	CreatedAt time.Time `json:"created_at"`
}

func (b Booking) Range() DateRange {
	return NewDateRange(b.FromDate, b.ToDate)
}

func (b Booking) Equal(other Booking) bool {
	return b.ID == other.ID &&
		b.CarVIN == other.CarVIN &&
		b.FromDate.Equal(other.FromDate) &&
		b.ToDate.Equal(other.ToDate) &&
		b.Usage == other.Usage
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking[id=%d, vin=%s, from=%s, to=%s, usage=%s]",
		b.ID, b.CarVIN, b.FromDate.Format("2006-01-02"), b.ToDate.Format("2006-01-02"), b.Usage)
}
