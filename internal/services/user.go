package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/banit/househunt-backend/internal/geo"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

type UserService struct {
	users         *repository.UserRepository
	notifications *repository.NotificationRepository
	geocoder      Geocoder
	images        ImageStore
}

func NewUserService(
	users *repository.UserRepository,
	notifications *repository.NotificationRepository,
	geocoder Geocoder,
	images ImageStore,
) *UserService {
	return &UserService{
		users:         users,
		notifications: notifications,
		geocoder:      geocoder,
		images:        images,
	}
}

type UpdateProfileRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone"`
	ResidentialCounty string `json:"residential_county"`
	ActivelySearching *bool  `json:"actively_searching"`
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
	Category string `json:"category"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*models.User, error) {
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone number is not valid", ErrValidation)
	}

	fields := map[string]interface{}{
		"name":               name,
		"phone":              utils.SanitizeString(req.Phone),
		"residential_county": utils.SanitizeString(req.ResidentialCounty),
	}
	if req.ActivelySearching != nil {
		fields["actively_searching"] = *req.ActivelySearching
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// UpdateLocation stores the user's coordinates and the place name the
// geocoder resolves for them.
func (s *UserService) UpdateLocation(ctx context.Context, userID uint, req UpdateLocationRequest) (*models.User, error) {
	p := geo.Point{Lat: req.Latitude, Lon: req.Longitude}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fields := map[string]interface{}{
		"latitude":      p.Lat,
		"longitude":     p.Lon,
		"location_name": s.geocoder.LocationName(ctx, p),
	}
	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdatePreferences(ctx context.Context, userID uint, req PreferenceRequest) (*models.UserPreference, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	pref := req.model(userID)
	if err := s.users.UpsertPreferences(ctx, pref); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Preferences, nil
}

// UploadProfileImage stores the image and points the profile at it.
func (s *UserService) UploadProfileImage(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader) (*models.User, error) {
	result, err := s.images.UploadProfileImage(ctx, userID, file, header)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateFields(ctx, userID, map[string]interface{}{"profile_image": result.URL}); err != nil {
		if delErr := s.images.DeleteImage(ctx, result.Key); delErr != nil {
			logger.WithFields(logger.Fields{"key": result.Key, "error": delErr}).Warn("failed to remove orphaned profile image")
		}
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	if !utils.IsValidPassword(req.NewPassword) {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)
	}
	if err := user.UpdatePassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Changing the password also ends the current session.
	return s.users.UpdateFields(ctx, userID, map[string]interface{}{
		"password":       user.Password,
		"remember_token": nil,
	})
}

func (s *UserService) SendFeedback(ctx context.Context, userID uint, req FeedbackRequest) (*models.Feedback, error) {
	text := utils.SanitizeString(req.Feedback)
	if text == "" {
		return nil, fmt.Errorf("%w: feedback is required", ErrValidation)
	}

	feedback := &models.Feedback{
		UserID:   userID,
		Feedback: text,
		Category: utils.SanitizeString(req.Category),
	}
	if err := s.users.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	logger.WithFields(logger.Fields{"user_id": userID, "category": feedback.Category}).Info("feedback received")
	return feedback, nil
}

// Notifications groups the user's notifications and broadcasts by day,
// newest day first, and pages over the days.
func (s *UserService) Notifications(ctx context.Context, userID uint, page, perPage int) (*types.NotificationPage, error) {
	page, perPage = utils.NormalizePage(page, perPage)

	notifications, err := s.notifications.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := groupByDay(notifications)
	start, end := utils.PageWindow(len(groups), page, perPage)

	return &types.NotificationPage{
		Groups:     groups[start:end],
		Pagination: utils.NewPagination(int64(len(groups)), page, perPage),
	}, nil
}

// groupByDay expects notifications sorted newest first.
func groupByDay(notifications []models.Notification) []types.NotificationGroup {
	groups := make([]types.NotificationGroup, 0)
	for _, n := range notifications {
		day := n.CreatedAt.Format(time.DateOnly)
		if last := len(groups) - 1; last >= 0 && groups[last].Date == day {
			groups[last].Notifications = append(groups[last].Notifications, n)
			continue
		}
		groups = append(groups, types.NotificationGroup{Date: day, Notifications: []models.Notification{n}})
	}
	return groups
}

// DeleteAccount marks the account deleted and ends its session. The row
// and its data are kept.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.users.UpdateFields(ctx, userID, map[string]interface{}{
		"status":         models.UserStatusDeleted,
		"remember_token": nil,
	})
	if err != nil {
		return err
	}

	logger.WithFields(logger.Fields{"user_id": userID}).Info("account deleted")
	return nil
}
