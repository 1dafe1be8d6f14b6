package repository

import "gorm.io/gorm"

// AutoMigrate creates the cars and bookings tables. On Postgres it also
// installs the no-double-booking exclusion constraint, a safety net behind
// the service's per-car lock for deployments where several instances share
// one database.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&carModel{}, &bookingModel{}); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_double_booking'
	) THEN
		ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking
			EXCLUDE USING gist (
				car_vin WITH =,
				daterange(from_date::date, to_date::date, '[]') WITH &&
			);
	END IF;
END
$$`).Error
}
