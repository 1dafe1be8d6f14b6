package repository

import (
	"context"
	"time"

	"carrental/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CarVIN    string    `gorm:"column:car_vin;index"`
	FromDate  time.Time `gorm:"column:from_date"`
	ToDate    time.Time `gorm:"column:to_date"`
	Usage     string    `gorm:"column:usage_type"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:        m.ID,
		CarVIN:    m.CarVIN,
		FromDate:  m.FromDate,
		ToDate:    m.ToDate,
		Usage:     domain.CarUsage(m.Usage),
		CreatedAt: m.CreatedAt,
	}
}

// FindOverlapping returns every booking of the car whose range conflicts with
// the requested one. Candidates are narrowed by VIN in SQL and the boundary
// predicate itself runs in Go (domain.DateRange.Overlaps), so the Postgres and
// SQLite backends cannot diverge on date comparison semantics.
func (r *BookingRepository) FindOverlapping(ctx context.Context, vin string, requested domain.DateRange) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where("car_vin = ?", vin).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0)
	for _, m := range rows {
		b := toDomainBooking(m)
		if b.Range().Overlaps(requested) {
			out = append(out, b)
		}
	}
	return out, nil
}

// FindBookedVINsAt lists the VINs of all cars with a booking active at the
// given instant (date-only containment, boundaries included).
func (r *BookingRepository) FindBookedVINsAt(ctx context.Context, at time.Time) ([]string, error) {
	day := domain.ToDateOnly(at)
	var vins []string
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Distinct("car_vin").
		Where("from_date <= ? AND to_date >= ?", day, day).
		Pluck("car_vin", &vins)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return vins, nil
}

// Create persists the booking and writes the assigned identifier back.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := bookingModel{
		CarVIN:   b.CarVIN,
		FromDate: b.FromDate,
		ToDate:   b.ToDate,
		Usage:    string(b.Usage),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	return nil
}
