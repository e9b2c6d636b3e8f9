package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	// TranslateError maps driver duplicate-key failures to
	// gorm.ErrDuplicatedKey, which the booking service relies on for the
	// slot-conflict path.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// EnsureSlotIndex creates the partial unique index that closes the
// check-then-insert race on slot conflicts: only one pending or confirmed
// booking may hold a (date, time) pair at a time. Cancelled and completed
// bookings are excluded so freed slots can be rebooked.
func EnsureSlotIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings (appointment_date, appointment_time)
		WHERE status IN ('pending', 'confirmed')
	`).Error
}
