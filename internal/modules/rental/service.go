package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"carrental/internal/domain"
	"carrental/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cars     CarRepository
	bookings BookingRepository
	checker  CountryChecker
	clock    clock.Clock
	log      *logrus.Entry

	mu       sync.Mutex
	carLocks map[string]*sync.Mutex
}

func NewService(cars CarRepository, bookings BookingRepository, checker CountryChecker, clk clock.Clock, log *logrus.Entry) *Service {
	return &Service{
		cars:     cars,
		bookings: bookings,
		checker:  checker,
		clock:    clk,
		log:      log,
		carLocks: make(map[string]*sync.Mutex),
	}
}

// BookCar runs the ordered validation checks and, if they all pass, persists
// exactly one new booking. Every refusal is a *Rejection; any store or
// checker failure comes back as a plain wrapped error.
func (s *Service) BookCar(ctx context.Context, req BookCarRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.VIN) == "" {
		return nil, reject(CodeMissingVehicleID, "missing VIN value")
	}
	if req.FromDate == nil {
		return nil, reject(CodeMissingFromDate, "missing rental opening date value")
	}
	if req.ToDate == nil {
		return nil, reject(CodeMissingToDate, "missing rental ending date value")
	}

	from := domain.ToDateOnly(*req.FromDate)
	to := domain.ToDateOnly(*req.ToDate)
	if to.Before(from) {
		return nil, reject(CodeToBeforeFrom,
			"rental ending date (%s) is earlier than opening date (%s)",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	// "Today" is sampled exactly once per validation call.
	today := domain.ToDateOnly(s.clock.Now())
	if from.Before(today) {
		return nil, reject(CodeFromBeforeToday, "rental opening date can't be earlier than today")
	}

	car, err := s.cars.FindByVIN(ctx, req.VIN)
	if err != nil {
		return nil, fmt.Errorf("look up car: %w", err)
	}
	if car == nil {
		return nil, reject(CodeUnknownVehicle, "no car was found for VIN=%s", req.VIN)
	}

	requested := domain.DateRange{From: from, To: to}

	// Fail fast on an existing conflict before paying for the slow
	// eligibility call. The authoritative check runs again under the
	// per-car lock below.
	conflicts, err := s.bookings.FindOverlapping(ctx, car.VIN, requested)
	if err != nil {
		return nil, fmt.Errorf("check booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, s.rejectBooked(car.VIN, requested)
	}

	if len(req.ForeignCountries) > 0 {
		s.log.WithFields(logrus.Fields{
			"vin":       car.VIN,
			"countries": req.ForeignCountries,
		}).Info("asking country checker for foreign usage verdict")

		allowed, err := s.checker.IsCountriesAllowed(ctx, car.VIN, req.ForeignCountries)
		if err != nil {
			return nil, fmt.Errorf("country eligibility check: %w", err)
		}
		if !allowed {
			return nil, reject(CodeForeignUseForbidden,
				"car (VIN=%s) is not allowed to be used in foreign countries: %s",
				car.VIN, strings.Join(req.ForeignCountries, ", "))
		}
	}

	// Check-and-reserve: the conflict re-check and the insert are atomic per
	// car, so two racing requests cannot both observe "no conflict". Requests
	// for different cars never contend here.
	unlock := s.lockCar(car.VIN)
	defer unlock()

	conflicts, err = s.bookings.FindOverlapping(ctx, car.VIN, requested)
	if err != nil {
		return nil, fmt.Errorf("check booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, s.rejectBooked(car.VIN, requested)
	}

	b := &domain.Booking{
		CarVIN:   car.VIN,
		FromDate: from,
		ToDate:   to,
		Usage:    domain.UsageForCountries(req.ForeignCountries),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		// 23505 unique_violation / 23P01 exclusion_violation from the
		// Postgres no-double-booking constraint.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_no_double_booking" &&
			(pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, s.rejectBooked(car.VIN, requested)
		}
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"vin":        b.CarVIN,
		"from":       b.FromDate.Format("2006-01-02"),
		"to":         b.ToDate.Format("2006-01-02"),
		"usage":      b.Usage,
	}).Info("booking created")

	return b, nil
}

// FindAvailableCars lists every car with no booking active right now. An
// empty booked list returns the whole catalog explicitly; NOT IN over an
// empty set is a degenerate query on some engines.
func (s *Service) FindAvailableCars(ctx context.Context) ([]domain.Car, error) {
	now := s.clock.Now()
	booked, err := s.bookings.FindBookedVINsAt(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list booked cars: %w", err)
	}
	s.log.WithField("booked", len(booked)).Debug("cars currently booked")

	if len(booked) == 0 {
		return s.cars.FindAll(ctx)
	}
	return s.cars.FindAllExcluding(ctx, booked)
}

// GetCarDetails returns (nil, nil) for an unknown VIN.
func (s *Service) GetCarDetails(ctx context.Context, vin string) (*domain.Car, error) {
	return s.cars.FindByVIN(ctx, vin)
}

func (s *Service) rejectBooked(vin string, r domain.DateRange) *Rejection {
	return reject(CodeAlreadyBooked,
		"car (VIN=%s) is booked in time period: %s - %s",
		vin, r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
}

func (s *Service) lockCar(vin string) func() {
	s.mu.Lock()
	m, ok := s.carLocks[vin]
	if !ok {
		m = &sync.Mutex{}
		s.carLocks[vin] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
