package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User account statuses. Deleted accounts are kept and can be restored.
const (
	UserStatusActive  = 0
	UserStatusDeleted = 2
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Email             string    `json:"email" gorm:"unique;not null"`
	Phone             string    `json:"phone"`
	Password          string    `json:"-" gorm:"not null"` // Hide password in JSON
	RememberToken     *string   `json:"-" gorm:"uniqueIndex"`
	ResidentialCounty string    `json:"residential_county"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	LocationName      string    `json:"location_name"`
	ProfileImage      string    `json:"profile_image"`
	ActivelySearching bool      `json:"actively_searching" gorm:"default:true"`
	Status            int       `json:"status" gorm:"default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	Preferences *UserPreference `json:"preferences,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Favorites   []Favorite      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type UserPreference struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	County        string    `json:"county"`
	MinRent       float64   `json:"min_rent" gorm:"default:0"`
	MaxRent       float64   `json:"max_rent" gorm:"default:0"`
	HouseCategory string    `json:"house_category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate hook for password hashing
func (u *User) BeforeCreate(tx *gorm.DB) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) UpdatePassword(newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// HasFavorite reports whether houseID is among the loaded favorites.
func (u *User) HasFavorite(houseID uint) bool {
	if u == nil {
		return false
	}
	for _, f := range u.Favorites {
		if f.HouseID == houseID {
			return true
		}
	}
	return false
}
