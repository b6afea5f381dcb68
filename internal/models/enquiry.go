package models

import "time"

type Enquiry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ManagerID uint      `json:"manager_id" gorm:"not null;index"`
	HouseID   uint      `json:"house_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

const ComplaintOpen = "open"

type Complaint struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ManagerID uint      `json:"manager_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
