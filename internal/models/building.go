package models

import "time"

type BuildingStatus int

const (
	BuildingInactive BuildingStatus = 0
	BuildingActive   BuildingStatus = 1
)

type Building struct {
	ID                    uint           `json:"id" gorm:"primaryKey"`
	EstateID              uint           `json:"estate_id" gorm:"not null;index"`
	Name                  string         `json:"name" gorm:"not null"`
	ProfileImage          string         `json:"profile_image"`
	OccupationCertificate string         `json:"occupation_certificate"`
	Latitude              float64        `json:"latitude" gorm:"type:decimal(10,7)"`
	Longitude             float64        `json:"longitude" gorm:"type:decimal(10,7)"`
	Description           string         `json:"description"`
	Status                BuildingStatus `json:"status" gorm:"default:0;index"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`

	Estate *Estate `json:"estate,omitempty"`
	Houses []House `json:"houses,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

func (b Building) IsActive() bool {
	return b.Status == BuildingActive
}
