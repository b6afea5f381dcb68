package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
)

type HouseHandler struct {
	houseService  *services.HouseService
	defaultRadius float64
}

func NewHouseHandler(houseService *services.HouseService, defaultRadiusKm float64) *HouseHandler {
	return &HouseHandler{houseService: houseService, defaultRadius: defaultRadiusKm}
}

type houseRequest struct {
	HouseID uint `json:"house_id" binding:"required"`
}

// GetAllHouses pages through vacant houses. Clients pass back the seed
// from the first page to keep the shuffled order across pages.
func (h *HouseHandler) GetAllHouses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(utils.DefaultPageSize)))

	seed, err := strconv.ParseInt(c.Query("seed"), 10, 64)
	if err != nil {
		seed = time.Now().UnixNano()
	}

	result, err := h.houseService.ListHouses(c.Request.Context(), page, perPage, seed, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to fetch houses", err)
		return
	}

	utils.SendSuccess(c, "Houses retrieved successfully", gin.H{
		"houses":     result.Houses,
		"pagination": result.Pagination,
		"seed":       seed,
	})
}

func (h *HouseHandler) GetHouse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	house, err := h.houseService.GetHouse(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to fetch house", err)
		return
	}

	utils.SendSuccess(c, "House retrieved successfully", house)
}

func (h *HouseHandler) GetMyHouses(c *gin.Context) {
	houses, err := h.houseService.RecommendedHouses(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to fetch houses", err)
		return
	}

	utils.SendSuccess(c, "Houses retrieved successfully", houses)
}

func (h *HouseHandler) SearchHouses(c *gin.Context) {
	houses, err := h.houseService.SearchByKeyword(c.Request.Context(), c.Query("keyword"), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Search failed", err)
		return
	}

	utils.SendSuccess(c, "Houses retrieved successfully", houses)
}

// GetNearbyBuildings lists active buildings within radius km of a point.
func (h *HouseHandler) GetNearbyBuildings(c *gin.Context) {
	lat, ok := queryFloat(c, "latitude")
	if !ok {
		return
	}
	lon, ok := queryFloat(c, "longitude")
	if !ok {
		return
	}
	radius, ok := optionalFloat(c, "radius", h.defaultRadius)
	if !ok {
		return
	}
	sortByDistance := c.DefaultQuery("sort", "true") != "false"

	buildings, err := h.houseService.FindNearby(c.Request.Context(), lat, lon, radius, sortByDistance)
	if err != nil {
		respondError(c, "Failed to find nearby buildings", err)
		return
	}

	utils.SendSuccess(c, "Nearby buildings retrieved successfully", buildings)
}

func (h *HouseHandler) SearchByLocation(c *gin.Context) {
	lat, ok := queryFloat(c, "latitude")
	if !ok {
		return
	}
	lon, ok := queryFloat(c, "longitude")
	if !ok {
		return
	}
	radius, ok := optionalFloat(c, "radius", 0)
	if !ok {
		return
	}

	houses, err := h.houseService.SearchByLocation(c.Request.Context(), lat, lon, radius, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to search by location", err)
		return
	}

	utils.SendSuccess(c, "Houses retrieved successfully", houses)
}

func (h *HouseHandler) SaveView(c *gin.Context) {
	var req houseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	view, err := h.houseService.RecordView(c.Request.Context(), req.HouseID)
	if err != nil {
		respondError(c, "Failed to record view", err)
		return
	}

	utils.SendSuccess(c, "View recorded", view)
}

func (h *HouseHandler) GetFavorites(c *gin.Context) {
	houses, err := h.houseService.Favorites(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to fetch favorites", err)
		return
	}

	utils.SendSuccess(c, "Favorites retrieved successfully", houses)
}

func (h *HouseHandler) AddFavorite(c *gin.Context) {
	var req houseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	fav, err := h.houseService.AddFavorite(c.Request.Context(), middleware.CurrentUser(c), req.HouseID)
	if err != nil {
		respondError(c, "Failed to add favorite", err)
		return
	}

	utils.SendSuccess(c, "Favorite saved", fav)
}

func (h *HouseHandler) DeleteFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.houseService.RemoveFavorite(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, "Failed to remove favorite", err)
		return
	}

	utils.SendSuccess(c, "Favorite removed", nil)
}
