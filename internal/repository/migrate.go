package repository

import "gorm.io/gorm"

// Migrate brings the schema up to date for every table the
// repositories own. On Postgres it also installs the exclusion
// constraint that forbids overlapping bookings per (hotel, customer)
// at the storage layer.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&accountModel{},
		&hotelModel{},
		&amenityModel{},
		&hotelAmenityModel{},
		&hotelImageModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	// Inclusive bounds on both sides: boundary-touching stays conflict.
	return db.Exec(`
DO $$
BEGIN
    ALTER TABLE bookings ADD CONSTRAINT ` + NoDoubleBookingConstraint + `
        EXCLUDE USING gist (
            hotel_id WITH =,
            customer_id WITH =,
            daterange(start_date::date, end_date::date, '[]') WITH &&
        );
EXCEPTION
    WHEN duplicate_table THEN NULL;
    WHEN duplicate_object THEN NULL;
END $$;
`).Error
}
