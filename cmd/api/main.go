package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"carrental/internal/database"
	"carrental/internal/modules/eligibility"
	"carrental/internal/modules/rental"
	"carrental/internal/pkg/clock"
	"carrental/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carrental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	checker := eligibility.NewChecker(logrus.WithField("component", "eligibility"))
	rentalService := rental.NewService(
		carRepo,
		bookingRepo,
		checker,
		clock.System(),
		logrus.WithField("component", "rental"),
	)
	rentalHandler := rental.NewHandler(rentalService, logrus.WithField("component", "http"))

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		rentalHandler.RegisterRoutes(v1)
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
