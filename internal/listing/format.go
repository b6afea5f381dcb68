package listing

import (
	"sort"

	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/types"
)

type FormatOptions struct {
	// ReviewersOnly reduces each review to the reviewer's id, name and picture.
	ReviewersOnly bool
}

// FormatHouse assembles the nested presentation of a house. building and
// estate may be nil when the caller did not load them; estate.Manager is
// used for the innermost manager object when present. is_favorite is taken
// from the viewer's loaded favorites.
func FormatHouse(house models.House, building *models.Building, estate *models.Estate, viewer *models.User, opts FormatOptions) types.HouseData {
	data := types.HouseData{
		ID:            house.ID,
		BuildingID:    house.BuildingID,
		Category:      house.Category,
		Rent:          house.Rent,
		Bedrooms:      house.Bedrooms,
		Kitchens:      house.Kitchens,
		Bathrooms:     house.Bathrooms,
		Balconies:     house.Balconies,
		TotalRooms:    house.TotalRooms,
		Vacancies:     house.Vacancies,
		Description:   house.Description,
		IsFavorite:    viewer.HasFavorite(house.ID),
		CreatedAt:     house.CreatedAt,
		UpdatedAt:     house.UpdatedAt,
		AverageReview: AverageRating(house.Reviews),
		Facilities:    house.Facilities,
		HouseViews:    house.HouseView,
		Gallery:       orderedGallery(house.Gallery),
	}
	if data.Facilities == nil {
		data.Facilities = []models.Facility{}
	}

	if opts.ReviewersOnly {
		data.Reviews = reviewers(house.Reviews)
	} else {
		data.Reviews = fullReviews(house.Reviews)
	}

	if building != nil {
		data.Building = formatBuilding(*building, estate)
	}

	return data
}

// FormatPlacedHouse formats a house whose Building.Estate.Manager chain was
// preloaded on the house itself.
func FormatPlacedHouse(house models.House, viewer *models.User, opts FormatOptions) types.HouseData {
	var estate *models.Estate
	if house.Building != nil {
		estate = house.Building.Estate
	}
	return FormatHouse(house, house.Building, estate, viewer, opts)
}

func formatBuilding(b models.Building, estate *models.Estate) *types.BuildingData {
	data := &types.BuildingData{
		ID:                    b.ID,
		EstateID:              b.EstateID,
		Name:                  b.Name,
		ProfileImage:          b.ProfileImage,
		OccupationCertificate: b.OccupationCertificate,
		Longitude:             b.Longitude,
		Latitude:              b.Latitude,
		Description:           b.Description,
		Status:                b.Status,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
	if estate == nil {
		return data
	}

	data.Estate = &types.EstateData{
		ID:          estate.ID,
		ManagerID:   estate.ManagerID,
		Name:        estate.Name,
		Description: estate.Description,
		CreatedAt:   estate.CreatedAt,
		UpdatedAt:   estate.UpdatedAt,
	}
	if estate.Manager != nil {
		data.Estate.Manager = managerRef(*estate.Manager)
	}
	return data
}

func managerRef(m models.Manager) *types.ManagerRef {
	return &types.ManagerRef{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		County:       m.County,
		ProfileImage: m.ProfileImage,
	}
}

func fullReviews(reviews []models.Review) []types.ReviewData {
	out := make([]types.ReviewData, 0, len(reviews))
	for _, r := range reviews {
		rd := types.ReviewData{
			ID:        r.ID,
			HouseID:   r.HouseID,
			UserID:    r.UserID,
			Message:   r.Message,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if r.User != nil {
			rd.User = &types.Reviewer{ID: r.User.ID, Name: r.User.Name, ProfilePicture: r.User.ProfileImage}
		}
		out = append(out, rd)
	}
	return out
}

func reviewers(reviews []models.Review) []types.Reviewer {
	out := make([]types.Reviewer, 0, len(reviews))
	for _, r := range reviews {
		rv := types.Reviewer{ID: r.UserID}
		if r.User != nil {
			rv.Name = r.User.Name
			rv.ProfilePicture = r.User.ProfileImage
		}
		out = append(out, rv)
	}
	return out
}

func orderedGallery(gallery []models.HouseGallery) []models.HouseGallery {
	out := make([]models.HouseGallery, len(gallery))
	copy(out, gallery)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}
