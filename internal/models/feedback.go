package models

import (
	"strconv"
	"time"
)

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Feedback  string    `json:"feedback" gorm:"type:text;not null"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// NotificationBroadcast addresses a notification to every user.
const NotificationBroadcast = "all"

// Notification goes to one user, identified by id, or to everyone.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Recipient string    `json:"recipient" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRecipient is the Recipient value addressing a single user.
func UserRecipient(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
