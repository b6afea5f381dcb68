package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/banit/househunt-backend/internal/geo"
	"github.com/banit/househunt-backend/internal/listing"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

// FeaturedCount is how many houses the featured selections return.
const FeaturedCount = 6

type HouseService struct {
	houses        *repository.HouseRepository
	reviews       *repository.ReviewRepository
	favorites     *repository.FavoriteRepository
	cache         *RankingCache
	defaultRadius float64
	newRand       func() *rand.Rand
}

func NewHouseService(
	houses *repository.HouseRepository,
	reviews *repository.ReviewRepository,
	favorites *repository.FavoriteRepository,
	cache *RankingCache,
	defaultRadiusKm float64,
) *HouseService {
	return &HouseService{
		houses:        houses,
		reviews:       reviews,
		favorites:     favorites,
		cache:         cache,
		defaultRadius: defaultRadiusKm,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// WithRandSource makes featured selections draw from a fixed seed.
func (s *HouseService) WithRandSource(seed int64) *HouseService {
	s.newRand = func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
	return s
}

type ReviewRequest struct {
	HouseID uint   `json:"house_id" binding:"required"`
	Message string `json:"message"`
	Rating  int    `json:"rating" binding:"required"`
}

func formatAll(houses []models.House, viewer *models.User) []types.HouseData {
	out := make([]types.HouseData, 0, len(houses))
	for _, h := range houses {
		out = append(out, listing.FormatPlacedHouse(h, viewer, listing.FormatOptions{ReviewersOnly: true}))
	}
	return out
}

// FindNearby returns active buildings strictly closer than radiusKm to the
// point, nearest first when sortByDistance is set.
func (s *HouseService) FindNearby(ctx context.Context, lat, lon, radiusKm float64, sortByDistance bool) ([]types.NearbyBuilding, error) {
	ref := geo.Point{Lat: lat, Lon: lon}
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := geo.ValidateRadius(radiusKm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	buildings, err := s.houses.FetchActiveBuildings(ctx)
	if err != nil {
		return nil, err
	}

	located, err := geo.WithinRadius(ref, radiusKm, buildings, buildingPoint, sortByDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := make([]types.NearbyBuilding, 0, len(located))
	for _, l := range located {
		out = append(out, types.NearbyBuilding{Building: l.Item, DistanceKm: l.DistanceKm})
	}
	return out, nil
}

func buildingPoint(b models.Building) geo.Point {
	return geo.Point{Lat: b.Latitude, Lon: b.Longitude}
}

// SearchByLocation lists houses in buildings near the point, nearest
// building first. A zero radius uses the configured default.
func (s *HouseService) SearchByLocation(ctx context.Context, lat, lon, radiusKm float64, viewer *models.User) ([]types.HouseData, error) {
	if radiusKm == 0 {
		radiusKm = s.defaultRadius
	}

	nearby, err := s.FindNearby(ctx, lat, lon, radiusKm, true)
	if err != nil {
		return nil, err
	}

	buildingIDs := make([]uint, 0, len(nearby))
	rank := make(map[uint]int, len(nearby))
	for i, n := range nearby {
		buildingIDs = append(buildingIDs, n.Building.ID)
		rank[n.Building.ID] = i
	}

	houses, err := s.houses.FindInBuildings(ctx, buildingIDs)
	if err != nil {
		return nil, err
	}

	ordered := make([][]models.House, len(nearby))
	for _, h := range houses {
		ordered[rank[h.BuildingID]] = append(ordered[rank[h.BuildingID]], h)
	}
	flat := make([]models.House, 0, len(houses))
	for _, group := range ordered {
		flat = append(flat, group...)
	}

	return formatAll(flat, viewer), nil
}

// AggregateHouseRating is the mean rating of the house, 0 without reviews.
func (s *HouseService) AggregateHouseRating(ctx context.Context, houseID uint) (float64, error) {
	if err := s.mustExist(ctx, houseID); err != nil {
		return 0, err
	}

	reviews, err := s.reviews.FetchReviewsForHouse(ctx, houseID)
	if err != nil {
		return 0, err
	}
	return listing.AverageRating(reviews), nil
}

func (s *HouseService) HouseReviews(ctx context.Context, houseID uint) ([]models.Review, error) {
	if err := s.mustExist(ctx, houseID); err != nil {
		return nil, err
	}
	return s.reviews.FetchReviewsForHouse(ctx, houseID)
}

func (s *HouseService) GetHouse(ctx context.Context, houseID uint, viewer *models.User) (*types.HouseData, error) {
	house, err := s.houses.FindByID(ctx, houseID)
	if err != nil {
		return nil, err
	}
	data := listing.FormatPlacedHouse(*house, viewer, listing.FormatOptions{})
	return &data, nil
}

// ListHouses pages through vacant houses in an order shuffled by seed, so
// a client that keeps its seed sees stable pages.
func (s *HouseService) ListHouses(ctx context.Context, page, perPage int, seed int64, viewer *models.User) (*types.HousePage, error) {
	page, perPage = utils.NormalizePage(page, perPage)

	ids, err := s.houses.VacantHouseIDs(ctx)
	if err != nil {
		return nil, err
	}
	ids = utils.Shuffle(ids, rand.New(rand.NewSource(seed)))

	start, end := utils.PageWindow(len(ids), page, perPage)
	houses, err := s.houses.FindByIDs(ctx, ids[start:end])
	if err != nil {
		return nil, err
	}

	return &types.HousePage{
		Houses:     formatAll(houses, viewer),
		Pagination: utils.NewPagination(int64(len(ids)), page, perPage),
	}, nil
}

// RecommendedHouses samples houses matching the viewer's preferences, or
// any vacant houses when the viewer has none.
func (s *HouseService) RecommendedHouses(ctx context.Context, viewer *models.User) ([]types.HouseData, error) {
	var (
		houses []models.House
		err    error
	)

	if viewer != nil && viewer.Preferences != nil {
		houses, err = s.houses.MatchPreferences(ctx, *viewer.Preferences)
		if err != nil {
			return nil, err
		}
	} else {
		ids, err := s.houses.VacantHouseIDs(ctx)
		if err != nil {
			return nil, err
		}
		houses, err = s.houses.FindByIDs(ctx, utils.Sample(ids, FeaturedCount, s.newRand()))
		if err != nil {
			return nil, err
		}
	}

	return formatAll(utils.Sample(houses, FeaturedCount, s.newRand()), viewer), nil
}

func (s *HouseService) SearchByKeyword(ctx context.Context, keyword string, viewer *models.User) ([]types.HouseData, error) {
	keyword = utils.SanitizeString(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrValidation)
	}

	houses, err := s.houses.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return formatAll(houses, viewer), nil
}

// RecordView counts one view of the house. The cached ranking carries view
// counts, so it is dropped as well.
func (s *HouseService) RecordView(ctx context.Context, houseID uint) (*models.HouseView, error) {
	if err := s.mustExist(ctx, houseID); err != nil {
		return nil, err
	}

	view, err := s.houses.IncrementHouseView(ctx, houseID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return view, nil
}

// RecordReview creates or replaces the user's review of the house and
// drops the cached manager ranking.
func (s *HouseService) RecordReview(ctx context.Context, user *models.User, req ReviewRequest) (*models.Review, error) {
	if !utils.IsValidRating(req.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if err := s.mustExist(ctx, req.HouseID); err != nil {
		return nil, err
	}

	review, err := s.reviews.UpsertReview(ctx, user.ID, req.HouseID, utils.SanitizeString(req.Message), req.Rating)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	logger.WithFields(logger.Fields{
		"user_id":  user.ID,
		"house_id": req.HouseID,
		"rating":   req.Rating,
	}).Info("review recorded")

	return review, nil
}

// AddFavorite is idempotent.
func (s *HouseService) AddFavorite(ctx context.Context, user *models.User, houseID uint) (*models.Favorite, error) {
	if err := s.mustExist(ctx, houseID); err != nil {
		return nil, err
	}
	return s.favorites.Add(ctx, user.ID, houseID)
}

func (s *HouseService) RemoveFavorite(ctx context.Context, user *models.User, houseID uint) error {
	return s.favorites.Remove(ctx, user.ID, houseID)
}

// Favorites samples the user's favorite houses.
func (s *HouseService) Favorites(ctx context.Context, user *models.User) ([]types.HouseData, error) {
	houses, err := s.favorites.Houses(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	picked := utils.Sample(houses, FeaturedCount, s.newRand())
	out := make([]types.HouseData, 0, len(picked))
	for _, h := range picked {
		data := listing.FormatPlacedHouse(h, user, listing.FormatOptions{ReviewersOnly: true})
		data.IsFavorite = true
		out = append(out, data)
	}
	return out, nil
}

func (s *HouseService) mustExist(ctx context.Context, houseID uint) error {
	exists, err := s.houses.Exists(ctx, houseID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: house %d", ErrNotFound, houseID)
	}
	return nil
}
