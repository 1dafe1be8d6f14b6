package rental

import (
	"context"
	"time"

	"carrental/internal/domain"
)

// CarRepository is the catalog the service books against. FindByVIN returns
// (nil, nil) for an unknown VIN.
type CarRepository interface {
	FindByVIN(ctx context.Context, vin string) (*domain.Car, error)
	FindAll(ctx context.Context) ([]domain.Car, error)
	FindAllExcluding(ctx context.Context, vins []string) ([]domain.Car, error)
}

// BookingRepository is the reservation store. Create assigns the booking ID.
type BookingRepository interface {
	FindOverlapping(ctx context.Context, vin string, requested domain.DateRange) ([]domain.Booking, error)
	FindBookedVINsAt(ctx context.Context, at time.Time) ([]string, error)
	Create(ctx context.Context, b *domain.Booking) error
}

// CountryChecker answers whether a car may legally be used in all of the
// given countries. The call is synchronous and may take seconds; there is no
// timeout or retry contract, a single answer per call.
type CountryChecker interface {
	IsCountriesAllowed(ctx context.Context, vin string, countries []string) (bool, error)
}
