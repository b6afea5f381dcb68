package listing

import (
	"sort"

	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/internal/utils"
)

// RankLimit is how many managers the ranked view returns.
const RankLimit = 6

// SummarizeManager folds every house under the manager's active buildings.
// The average is review-weighted: the sum of all raw ratings divided by the
// number of reviews, not an average of per-house averages.
func SummarizeManager(m models.Manager, viewer *models.User) types.ManagerSummary {
	var (
		ratingSum    int
		reviewCount  int
		activeHouses int
		houses       = make([]types.HouseData, 0)
	)

	owner := m
	owner.Estates = nil

	for _, estate := range m.Estates {
		e := estate
		e.Manager = &owner
		e.Buildings = nil

		for _, building := range estate.Buildings {
			if !building.IsActive() {
				continue
			}
			b := building
			b.Houses = nil

			for _, house := range building.Houses {
				houses = append(houses, FormatHouse(house, &b, &e, viewer, FormatOptions{}))

				sum, count := RatingSum(house.Reviews)
				ratingSum += sum
				reviewCount += count
				if house.Vacancies > 0 {
					activeHouses++
				}
			}
		}
	}

	var average float64
	if reviewCount > 0 {
		average = float64(ratingSum) / float64(reviewCount)
	}

	return types.ManagerSummary{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		County:         m.County,
		ProfileImage:   m.ProfileImage,
		AverageRatings: average,
		TotalReviews:   reviewCount,
		ActiveHouses:   activeHouses,
		Houses:         houses,
	}
}

// RankManagers summarizes all managers and returns them by average rating,
// highest first. Managers with equal averages keep their load order. A
// limit <= 0 returns every manager.
func RankManagers(managers []models.Manager, viewer *models.User, limit int) []types.ManagerSummary {
	summaries := make([]types.ManagerSummary, 0, len(managers))
	for _, m := range managers {
		summaries = append(summaries, SummarizeManager(m, viewer))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AverageRatings > summaries[j].AverageRatings
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}

// PaginateManagers windows managers in load order and summarizes only the
// requested page.
func PaginateManagers(managers []models.Manager, page, perPage int, viewer *models.User) types.ManagerPage {
	page, perPage = utils.NormalizePage(page, perPage)
	start, end := utils.PageWindow(len(managers), page, perPage)

	items := make([]types.ManagerSummary, 0, end-start)
	for _, m := range managers[start:end] {
		items = append(items, SummarizeManager(m, viewer))
	}

	return types.ManagerPage{
		Managers:   items,
		Pagination: utils.NewPagination(int64(len(managers)), page, perPage),
	}
}

// ApplyViewer recomputes is_favorite on already summarized houses, so
// viewer-independent summaries can be shared between requests.
func ApplyViewer(summaries []types.ManagerSummary, viewer *models.User) {
	for i := range summaries {
		for j := range summaries[i].Houses {
			summaries[i].Houses[j].IsFavorite = viewer.HasFavorite(summaries[i].Houses[j].ID)
		}
	}
}
