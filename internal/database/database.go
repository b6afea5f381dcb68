package database

import (
	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the database and brings the schema up to date.
func Init(databaseURL string) (*gorm.DB, error) {
	db, err := Open(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Open(databaseURL string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates every table the application uses. Parents are
// listed before children so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.Manager{},
		&models.Estate{},
		&models.Building{},
		&models.House{},
		&models.Facility{},
		&models.HouseView{},
		&models.HouseGallery{},
		&models.Review{},
		&models.Favorite{},
		&models.Enquiry{},
		&models.Complaint{},
		&models.Feedback{},
		&models.Notification{},
	)
}
