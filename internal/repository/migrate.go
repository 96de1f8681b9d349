package repository

import "gorm.io/gorm"

// Migrate brings the schema up to date and installs the partial unique
// index that makes double-booking a constraint violation rather than a
// race.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&venueModel{},
		&accountModel{},
		&bookingModel{},
		&settingsModel{},
		&notificationModel{},
	); err != nil {
		return err
	}

	// One confirmed booking per court and slot. Works on both postgres
	// and sqlite.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		 ON bookings (venue_id, date, time_slot, court_number)
		 WHERE status = 'booked'`,
	).Error
}
