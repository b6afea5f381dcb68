package models

import "time"

type Manager struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Phone        string    `json:"phone"`
	County       string    `json:"county"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Estates []Estate `json:"estates,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE"`
}

type Estate struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ManagerID   uint      `json:"manager_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Manager   *Manager   `json:"manager,omitempty"`
	Buildings []Building `json:"buildings,omitempty" gorm:"foreignKey:EstateID;constraint:OnDelete:CASCADE"`
}
