package repository

import (
	"context"
	"errors"

	"carrental/internal/domain"

	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

type carModel struct {
	VIN              string `gorm:"column:vin;primaryKey"`
	Make             string `gorm:"column:make"`
	Model            string `gorm:"column:model"`
	YearOfProduction int    `gorm:"column:year_of_production"`
	FuelType         string `gorm:"column:fuel_type"`
	Plate            string `gorm:"column:plate"`
	Category         string `gorm:"column:category"`
}

func (carModel) TableName() string { return "cars" }

func toDomainCar(m carModel) domain.Car {
	return domain.Car{
		VIN:              m.VIN,
		Make:             m.Make,
		Model:            m.Model,
		YearOfProduction: m.YearOfProduction,
		FuelType:         domain.Fuel(m.FuelType),
		Plate:            m.Plate,
		Category:         domain.CarCategory(m.Category),
	}
}

func toCarModel(c domain.Car) carModel {
	return carModel{
		VIN:              c.VIN,
		Make:             c.Make,
		Model:            c.Model,
		YearOfProduction: c.YearOfProduction,
		FuelType:         string(c.FuelType),
		Plate:            c.Plate,
		Category:         string(c.Category),
	}
}

// FindByVIN returns (nil, nil) when no car carries the given VIN; callers
// treat absence as a domain condition, not an error.
func (r *CarRepository) FindByVIN(ctx context.Context, vin string) (*domain.Car, error) {
	var m carModel
	tx := r.db.WithContext(ctx).First(&m, "vin = ?", vin)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	c := toDomainCar(m)
	return &c, nil
}

func (r *CarRepository) FindAll(ctx context.Context) ([]domain.Car, error) {
	var rows []carModel
	tx := r.db.WithContext(ctx).Order("vin").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Car, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCar(m))
	}
	return out, nil
}

// FindAllExcluding lists every car whose VIN is not in vins. The list must be
// non-empty; NOT IN over an empty set is a degenerate query on some engines,
// so the empty case is handled by the caller with FindAll.
func (r *CarRepository) FindAllExcluding(ctx context.Context, vins []string) ([]domain.Car, error) {
	var rows []carModel
	tx := r.db.WithContext(ctx).Where("vin NOT IN ?", vins).Order("vin").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Car, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCar(m))
	}
	return out, nil
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	m := toCarModel(*c)
	return r.db.WithContext(ctx).Create(&m).Error
}
