package domain

import "fmt"

type Fuel string

const (
	FuelGasoline Fuel = "GASOLINE"
	FuelDiesel   Fuel = "DIESEL"
	FuelHybrid   Fuel = "HYBRID"
	FuelElectric Fuel = "ELECTRIC"
)

type CarCategory string

const (
	CategorySedan     CarCategory = "SEDAN"
	CategoryHatchback CarCategory = "HATCHBACK"
	CategoryKombi     CarCategory = "KOMBI"
	CategorySUV       CarCategory = "SUV"
	CategoryVan       CarCategory = "VAN"
)

func ValidCarCategories() []CarCategory {
	return []CarCategory{CategorySedan, CategoryHatchback, CategoryKombi, CategorySUV, CategoryVan}
}

func ParseCarCategory(s string) (CarCategory, error) {
	for _, c := range ValidCarCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown car category: %q", s)
}

// Car is a catalog record. The VIN is globally unique and immutable; a car is
// never mutated once it is in the catalog.
type Car struct {
	VIN              string      `json:"vin"`
	Make             string      `json:"make"`
	Model            string      `json:"model"`
	YearOfProduction int         `json:"year_of_production"`
	FuelType         Fuel        `json:"fuel_type"`
	Plate            string      `json:"plate"`
	Category         CarCategory `json:"category"`
}

func (c Car) Equal(other Car) bool {
	return c.VIN == other.VIN &&
		c.Make == other.Make &&
		c.Model == other.Model &&
		c.YearOfProduction == other.YearOfProduction &&
		c.FuelType == other.FuelType &&
		c.Plate == other.Plate &&
		c.Category == other.Category
}

func (c Car) String() string {
	return fmt.Sprintf("Car[vin=%s, make=%s, model=%s, year=%d, fuel=%s, plate=%s, category=%s]",
		c.VIN, c.Make, c.Model, c.YearOfProduction, c.FuelType, c.Plate, c.Category)
}
