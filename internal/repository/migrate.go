package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every collection the
// service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&donorModel{},
		&donationModel{},
		&bloodRequestModel{},
		&notificationModel{},
		&feedbackModel{},
	)
}
