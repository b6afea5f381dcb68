package models

import "time"

type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_house,priority:1"`
	HouseID   uint      `json:"house_id" gorm:"not null;uniqueIndex:idx_favorites_user_house,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	House *House `json:"house,omitempty"`
}
