package services

import (
	"context"
	"fmt"

	"github.com/banit/househunt-backend/internal/listing"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

type ManagerService struct {
	managers *repository.ManagerRepository
	houses   *repository.HouseRepository
	cache    *RankingCache
	mailer   Mailer
}

func NewManagerService(managers *repository.ManagerRepository, houses *repository.HouseRepository, cache *RankingCache, mailer Mailer) *ManagerService {
	return &ManagerService{
		managers: managers,
		houses:   houses,
		cache:    cache,
		mailer:   mailer,
	}
}

type EnquiryRequest struct {
	ManagerID uint   `json:"manager_id" binding:"required"`
	HouseID   uint   `json:"house_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type ComplaintRequest struct {
	ManagerID uint   `json:"manager_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// RankManagers returns up to listing.RankLimit managers by review-weighted
// average rating. The ranking is shared through the cache; only the
// viewer's favorite flags are computed per call.
func (s *ManagerService) RankManagers(ctx context.Context, viewer *models.User) ([]types.ManagerSummary, error) {
	ranked, ok := s.cache.Get(ctx)
	if !ok {
		managers, err := s.managers.FetchActiveManagersWithHouses(ctx)
		if err != nil {
			return nil, err
		}
		ranked = listing.RankManagers(managers, nil, listing.RankLimit)
		s.cache.Set(ctx, ranked)
		logger.WithFields(logger.Fields{"managers": len(managers)}).Debug("manager ranking rebuilt")
	}

	listing.ApplyViewer(ranked, viewer)
	return ranked, nil
}

func (s *ManagerService) PaginateManagers(ctx context.Context, page, perPage int, viewer *models.User) (*types.ManagerPage, error) {
	managers, err := s.managers.FetchActiveManagersWithHouses(ctx)
	if err != nil {
		return nil, err
	}

	result := listing.PaginateManagers(managers, page, perPage, viewer)
	return &result, nil
}

// SubmitEnquiry stores the enquiry and emails the manager. A failed email
// is logged; the enquiry stays recorded.
func (s *ManagerService) SubmitEnquiry(ctx context.Context, tenant *models.User, req EnquiryRequest) (*models.Enquiry, error) {
	title := utils.SanitizeString(req.Title)
	message := utils.SanitizeString(req.Message)
	if title == "" || message == "" {
		return nil, fmt.Errorf("%w: title and message are required", ErrValidation)
	}

	manager, err := s.managers.FindByID(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	exists, err := s.houses.Exists(ctx, req.HouseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: house %d", ErrNotFound, req.HouseID)
	}

	enquiry := &models.Enquiry{
		UserID:    tenant.ID,
		ManagerID: manager.ID,
		HouseID:   req.HouseID,
		Title:     title,
		Message:   message,
	}
	if err := s.managers.CreateEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}

	if err := s.mailer.SendEmail(manager.Email, enquirySubject(*enquiry), enquiryBody(*manager, *tenant, *enquiry)); err != nil {
		logger.WithFields(logger.Fields{
			"enquiry_id": enquiry.ID,
			"manager_id": manager.ID,
			"error":      err,
		}).Error("failed to email enquiry")
	}

	return enquiry, nil
}

func (s *ManagerService) SubmitComplaint(ctx context.Context, tenant *models.User, req ComplaintRequest) (*models.Complaint, error) {
	message := utils.SanitizeString(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	manager, err := s.managers.FindByID(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:    tenant.ID,
		ManagerID: manager.ID,
		Message:   message,
		Status:    models.ComplaintOpen,
	}
	if err := s.managers.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}

	if err := s.mailer.SendEmail(manager.Email, "Tenant complaint", complaintBody(*manager, *tenant, *complaint)); err != nil {
		logger.WithFields(logger.Fields{
			"complaint_id": complaint.ID,
			"manager_id":   manager.ID,
			"error":        err,
		}).Error("failed to email complaint")
	}

	return complaint, nil
}
