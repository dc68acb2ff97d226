package database

import (
	"gorm.io/gorm"
)

// bookingConstraints mirror the enum and range rules enforced by the service
var bookingConstraints = []struct {
	name  string
	check string
}{
	{"chk_bookings_trip_type", "trip_type IN ('oneway', 'roundtrip')"},
	{"chk_bookings_payment_status", "payment_status IN ('pending', 'paid', 'failed')"},
	{"chk_bookings_passenger_count", "passenger_count >= 1"},
	{"chk_bookings_payment_amount", "payment_amount >= 0"},
}

// MigrateConstraints adds CHECK constraints to the bookings table
func MigrateConstraints(db *gorm.DB) error {
	for _, c := range bookingConstraints {
		if err := db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS ` + c.name).Error; err != nil {
			return err
		}
		if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT ` + c.name + ` CHECK (` + c.check + `)`).Error; err != nil {
			return err
		}
	}

	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings (created_at)`).Error
}
