package types

import (
	"time"

	"github.com/banit/househunt-backend/internal/models"
)

type ManagerRef struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	County       string `json:"county"`
	ProfileImage string `json:"profile_image"`
}

type EstateData struct {
	ID          uint        `json:"id"`
	ManagerID   uint        `json:"manager_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Manager     *ManagerRef `json:"manager"`
}

type BuildingData struct {
	ID                    uint                  `json:"id"`
	EstateID              uint                  `json:"estate_id"`
	Name                  string                `json:"name"`
	ProfileImage          string                `json:"profile_image"`
	OccupationCertificate string                `json:"occupation_certificate"`
	Longitude             float64               `json:"longitude"`
	Latitude              float64               `json:"latitude"`
	Description           string                `json:"description"`
	Status                models.BuildingStatus `json:"status"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	Estate                *EstateData           `json:"estate"`
}

// Reviewer is the reduced review form: who reviewed, nothing else.
type Reviewer struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type ReviewData struct {
	ID        uint      `json:"id"`
	HouseID   uint      `json:"house_id"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *Reviewer `json:"user,omitempty"`
}

type HouseData struct {
	ID          uint      `json:"id"`
	BuildingID  uint      `json:"building_id"`
	Category    string    `json:"category"`
	Rent        float64   `json:"rent"`
	Bedrooms    int       `json:"bedrooms"`
	Kitchens    int       `json:"kitchens"`
	Bathrooms   int       `json:"bathrooms"`
	Balconies   int       `json:"balconies"`
	TotalRooms  int       `json:"total_rooms"`
	Vacancies   int       `json:"vacancies"`
	Description string    `json:"description"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Reviews holds []ReviewData, or []Reviewer when only reviewers are requested.
	Reviews       interface{}           `json:"reviews"`
	AverageReview float64               `json:"average_review"`
	Facilities    []models.Facility     `json:"facilities"`
	HouseViews    *models.HouseView     `json:"house_views"`
	Gallery       []models.HouseGallery `json:"gallery"`
	Building      *BuildingData         `json:"building"`
}

type ManagerSummary struct {
	ID             uint        `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	County         string      `json:"county"`
	ProfileImage   string      `json:"profile_image"`
	AverageRatings float64     `json:"average_ratings"`
	TotalReviews   int         `json:"total_reviews"`
	ActiveHouses   int         `json:"active_houses"`
	Houses         []HouseData `json:"houses"`
}

type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	LastPage    int   `json:"lastPage"`
}

type ManagerPage struct {
	Managers   []ManagerSummary `json:"managers"`
	Pagination Pagination       `json:"pagination"`
}

type HousePage struct {
	Houses     []HouseData `json:"houses"`
	Pagination Pagination  `json:"pagination"`
}

type NearbyBuilding struct {
	Building   models.Building `json:"building"`
	DistanceKm float64         `json:"distance_km"`
}
