package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/banit/househunt-backend/internal/api/middleware"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/internal/utils"
)

type ManagerHandler struct {
	managerService *services.ManagerService
}

func NewManagerHandler(managerService *services.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: managerService}
}

func (h *ManagerHandler) GetAllManagers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(utils.DefaultPageSize)))

	result, err := h.managerService.PaginateManagers(c.Request.Context(), page, perPage, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to fetch managers", err)
		return
	}

	utils.SendSuccess(c, "Managers retrieved successfully", result)
}

func (h *ManagerHandler) GetRankedManagers(c *gin.Context) {
	managers, err := h.managerService.RankManagers(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, "Failed to rank managers", err)
		return
	}

	utils.SendSuccess(c, "Managers ranked successfully", managers)
}

func (h *ManagerHandler) SendEnquiry(c *gin.Context) {
	var req services.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	enquiry, err := h.managerService.SubmitEnquiry(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, "Failed to send enquiry", err)
		return
	}

	utils.SendCreated(c, "Enquiry sent successfully", enquiry)
}

func (h *ManagerHandler) SendComplaint(c *gin.Context) {
	var req services.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	complaint, err := h.managerService.SubmitComplaint(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, "Failed to file complaint", err)
		return
	}

	utils.SendCreated(c, "Complaint filed successfully", complaint)
}
