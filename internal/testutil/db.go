// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/banit/househunt-backend/internal/database"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see a different empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixture is a small manager graph used across package tests.
type Fixture struct {
	Manager  models.Manager
	Estate   models.Estate
	Active   models.Building
	Inactive models.Building
	HouseA   models.House
	HouseB   models.House
	Hidden   models.House
	User     models.User
}

// Seed inserts one manager with an active and an inactive building.
// HouseA and HouseB sit in the active building (Nairobi CBD), Hidden in the
// inactive one.
func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{}
	f.Manager = models.Manager{Name: "Jane Wanjiku", Email: "jane@estates.test", Phone: "0700000001", County: "Nairobi"}
	require.NoError(t, db.Create(&f.Manager).Error)

	f.Estate = models.Estate{ManagerID: f.Manager.ID, Name: "Kilimani Gardens", Description: "Quiet estate"}
	require.NoError(t, db.Create(&f.Estate).Error)

	f.Active = models.Building{
		EstateID:  f.Estate.ID,
		Name:      "Block A",
		Latitude:  -1.286389,
		Longitude: 36.817223,
		Status:    models.BuildingActive,
	}
	require.NoError(t, db.Create(&f.Active).Error)

	f.Inactive = models.Building{
		EstateID:  f.Estate.ID,
		Name:      "Block B",
		Latitude:  -1.286389,
		Longitude: 36.817223,
	}
	require.NoError(t, db.Create(&f.Inactive).Error)

	f.HouseA = models.House{BuildingID: f.Active.ID, Category: "bedsitter", Rent: 12000, Bedrooms: 1, Kitchens: 1, Bathrooms: 1, TotalRooms: 2, Vacancies: 2}
	f.HouseB = models.House{BuildingID: f.Active.ID, Category: "two-bedroom", Rent: 35000, Bedrooms: 2, Kitchens: 1, Bathrooms: 2, TotalRooms: 4, Vacancies: 0}
	f.Hidden = models.House{BuildingID: f.Inactive.ID, Category: "bedsitter", Rent: 9000, Bedrooms: 1, Kitchens: 1, Bathrooms: 1, TotalRooms: 2, Vacancies: 1}
	require.NoError(t, db.Create(&f.HouseA).Error)
	require.NoError(t, db.Create(&f.HouseB).Error)
	require.NoError(t, db.Create(&f.Hidden).Error)

	f.User = CreateUser(t, db, "tenant@example.test", "secret-pass")
	return f
}

// CreateUser inserts a user with the given plain-text password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	u := models.User{Name: "Test Tenant", Email: email, Password: password}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// AddReview inserts a review directly, bypassing the upsert path.
func AddReview(t *testing.T, db *gorm.DB, userID, houseID uint, rating int) models.Review {
	t.Helper()

	r := models.Review{UserID: userID, HouseID: houseID, Rating: rating, Message: "review"}
	require.NoError(t, db.Create(&r).Error)
	return r
}
