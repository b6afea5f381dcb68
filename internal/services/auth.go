package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/geo"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/internal/utils"
	"github.com/banit/househunt-backend/pkg/logger"
)

type AuthService struct {
	users    *repository.UserRepository
	geocoder Geocoder
	config   *config.Config
}

func NewAuthService(users *repository.UserRepository, geocoder Geocoder, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		geocoder: geocoder,
		config:   cfg,
	}
}

type PreferenceRequest struct {
	County        string  `json:"county"`
	MinRent       float64 `json:"min_rent"`
	MaxRent       float64 `json:"max_rent"`
	HouseCategory string  `json:"house_category"`
}

type RegisterRequest struct {
	Name              string             `json:"name" binding:"required"`
	Email             string             `json:"email" binding:"required"`
	Phone             string             `json:"phone"`
	Password          string             `json:"password" binding:"required"`
	ResidentialCounty string             `json:"residential_county"`
	Latitude          *float64           `json:"latitude"`
	Longitude         *float64           `json:"longitude"`
	Preferences       *PreferenceRequest `json:"preferences"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is the outcome of checking a bearer token. User is nil for
// unauthorized results and for tokens accepted by the legacy key check.
type AuthResult struct {
	Authorized bool
	User       *models.User
}

func (p *PreferenceRequest) validate() error {
	if p.MinRent < 0 || p.MaxRent < 0 {
		return fmt.Errorf("%w: rent cannot be negative", ErrValidation)
	}
	if p.MaxRent > 0 && p.MinRent > p.MaxRent {
		return fmt.Errorf("%w: min_rent cannot be greater than max_rent", ErrValidation)
	}
	return nil
}

func (p *PreferenceRequest) model(userID uint) *models.UserPreference {
	return &models.UserPreference{
		UserID:        userID,
		County:        utils.SanitizeString(p.County),
		MinRent:       p.MinRent,
		MaxRent:       p.MaxRent,
		HouseCategory: utils.SanitizeString(p.HouseCategory),
	}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*types.AuthResponse, error) {
	email := strings.ToLower(utils.SanitizeString(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone number is not valid", ErrValidation)
	}

	taken, err := s.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: user with this email", ErrConflict)
	}

	user := &models.User{
		Name:              utils.SanitizeString(req.Name),
		Email:             email,
		Phone:             utils.SanitizeString(req.Phone),
		Password:          req.Password, // hashed in BeforeCreate
		ResidentialCounty: utils.SanitizeString(req.ResidentialCounty),
		ActivelySearching: true,
	}

	if req.Latitude != nil && req.Longitude != nil {
		p := geo.Point{Lat: *req.Latitude, Lon: *req.Longitude}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		user.Latitude, user.Longitude = p.Lat, p.Lon
		user.LocationName = s.geocoder.LocationName(ctx, p)
	}

	var pref *models.UserPreference
	if req.Preferences != nil {
		if err := req.Preferences.validate(); err != nil {
			return nil, err
		}
		pref = req.Preferences.model(0)
	}

	if err := s.users.CreateWithPreferences(ctx, user, pref); err != nil {
		return nil, err
	}

	logger.WithFields(logger.Fields{"user_id": user.ID}).Info("user registered")
	return s.issueSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*types.AuthResponse, error) {
	email := strings.ToLower(utils.SanitizeString(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, err
	}

	if user.Status != models.UserStatusActive || !user.CheckPassword(req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.issueSession(ctx, user)
}

// Logout revokes the user's session token.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	return s.users.SetRememberToken(ctx, userID, nil)
}

// Authorize checks a bearer token. The user store is authoritative: a
// token is valid only while it is the current remember token of an active
// account and its signature and expiry check out. When LegacyTokenFallback is set,
// tokens unknown to the store may still pass the deprecated structural key
// check. Store failures are the only errors.
func (s *AuthService) Authorize(ctx context.Context, token string) (*AuthResult, error) {
	if token == "" {
		return &AuthResult{}, nil
	}

	user, err := s.users.FindUserByToken(ctx, token)
	switch {
	case err == nil:
		if _, err := utils.ValidateSessionToken(token, s.config.JWTSecret); err != nil {
			logger.WithFields(logger.Fields{"user_id": user.ID}).Debug("stored session token rejected")
			return &AuthResult{}, nil
		}
		if user.Status != models.UserStatusActive {
			return &AuthResult{}, nil
		}
		return &AuthResult{Authorized: true, User: user}, nil
	case errors.Is(err, ErrNotFound):
		if s.config.LegacyTokenFallback && utils.LegacyKeyPlausible(token) {
			logger.Warn("request authorized by legacy key check")
			return &AuthResult{Authorized: true}, nil
		}
		return &AuthResult{}, nil
	default:
		return nil, err
	}
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*types.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateSessionToken(user.ID, s.config.JWTSecret, s.config.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.users.SetRememberToken(ctx, user.ID, &token); err != nil {
		return nil, err
	}

	return &types.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      *user,
	}, nil
}
