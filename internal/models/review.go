package models

import (
	"time"
)

// Review is unique per (user, house); resubmitting overwrites it.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HouseID   uint      `json:"house_id" gorm:"not null;uniqueIndex:idx_reviews_user_house,priority:2"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_user_house,priority:1"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty"`
}
