package main

import (
	"context"
	"log"
	"os"

	"carrental/internal/database"
	"carrental/internal/domain"
	"carrental/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carrental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (bookings reference cars)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM cars")

	log.Println("Creating car fleet...")
	cars := []domain.Car{
		{VIN: "WVWZZZ1JZXW000001", Make: "Volkswagen", Model: "Golf", YearOfProduction: 2021, FuelType: domain.FuelGasoline, Plate: "ABC-123", Category: domain.CategoryHatchback},
		{VIN: "WVWZZZ1JZXW000002", Make: "Volkswagen", Model: "Passat", YearOfProduction: 2022, FuelType: domain.FuelDiesel, Plate: "ABC-124", Category: domain.CategoryKombi},
		{VIN: "WAUZZZ4G1EN000003", Make: "Audi", Model: "A4", YearOfProduction: 2023, FuelType: domain.FuelGasoline, Plate: "AUD-401", Category: domain.CategorySedan},
		{VIN: "WBA3A5C58DF000004", Make: "BMW", Model: "320d", YearOfProduction: 2020, FuelType: domain.FuelDiesel, Plate: "BMW-320", Category: domain.CategorySedan},
		{VIN: "JTDKN3DU0A0000005", Make: "Toyota", Model: "Prius", YearOfProduction: 2022, FuelType: domain.FuelHybrid, Plate: "TOY-555", Category: domain.CategoryHatchback},
		{VIN: "5YJ3E1EA7KF000006", Make: "Tesla", Model: "Model 3", YearOfProduction: 2024, FuelType: domain.FuelElectric, Plate: "TSL-003", Category: domain.CategorySedan},
		{VIN: "VF1RFB00X66000007", Make: "Renault", Model: "Trafic", YearOfProduction: 2019, FuelType: domain.FuelDiesel, Plate: "REN-777", Category: domain.CategoryVan},
		{VIN: "KMHJ3815GLU000008", Make: "Hyundai", Model: "Tucson", YearOfProduction: 2023, FuelType: domain.FuelHybrid, Plate: "HYU-808", Category: domain.CategorySUV},
	}

	carRepo := repository.NewCarRepository(db)
	ctx := context.Background()
	for _, c := range cars {
		car := c
		if err := carRepo.Create(ctx, &car); err != nil {
			log.Fatalf("failed to seed car %s: %v", car.VIN, err)
		}
		log.Println("Seeded:", car.String())
	}

	log.Printf("Done, %d cars seeded", len(cars))
}
