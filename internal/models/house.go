package models

import "time"

type House struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BuildingID  uint      `json:"building_id" gorm:"not null;index"`
	Category    string    `json:"category" gorm:"not null"`
	Rent        float64   `json:"rent" gorm:"type:decimal(10,2);check:rent >= 0"`
	Bedrooms    int       `json:"bedrooms"`
	Kitchens    int       `json:"kitchens"`
	Bathrooms   int       `json:"bathrooms"`
	Balconies   int       `json:"balconies"`
	TotalRooms  int       `json:"total_rooms"`
	Vacancies   int       `json:"vacancies" gorm:"default:0;check:vacancies >= 0"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Building   *Building      `json:"building,omitempty"`
	Facilities []Facility     `json:"facilities,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	HouseView  *HouseView     `json:"house_views,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Gallery    []HouseGallery `json:"gallery,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Reviews    []Review       `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Facility struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HouseID   uint      `json:"house_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HouseView holds the single view counter of a house.
type HouseView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HouseID   uint      `json:"house_id" gorm:"uniqueIndex;not null"`
	Counts    int       `json:"counts" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HouseGallery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HouseID   uint      `json:"house_id" gorm:"not null;index"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HouseGallery) TableName() string {
	return "house_galleries"
}
