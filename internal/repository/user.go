package repository

import (
	"context"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Preferences").Preload("Favorites")
}

// FindUserByToken returns the user holding the session token, with
// preferences and favorites loaded.
func (r *UserRepository) FindUserByToken(ctx context.Context, token string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.withRelations(ctx).Where("remember_token = ?", token).First(&user).Error; err != nil {
		return nil, wrap(err, "find user by token")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.withRelations(ctx).First(&user, id).Error; err != nil {
		return nil, wrap(err, "find user")
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.withRelations(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrap(err, "find user by email")
	}
	return &user, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, wrap(err, "check email")
	}
	return count > 0, nil
}

// CreateWithPreferences inserts the user and, when given, their
// preferences in one transaction.
func (r *UserRepository) CreateWithPreferences(ctx context.Context, user *models.User, pref *models.UserPreference) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return wrap(err, "create user")
		}
		if pref == nil {
			return nil
		}
		pref.UserID = user.ID
		if err := tx.Create(pref).Error; err != nil {
			return wrap(err, "create preferences")
		}
		user.Preferences = pref
		return nil
	})
}

// SetRememberToken stores the session token; nil clears it.
func (r *UserRepository) SetRememberToken(ctx context.Context, userID uint, token *string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("remember_token", token).Error, "set remember token")
}

func (r *UserRepository) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return wrap(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "update user")
	}
	return nil
}

// UpsertPreferences replaces the user's single preference row.
func (r *UserRepository) UpsertPreferences(ctx context.Context, pref *models.UserPreference) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"county", "min_rent", "max_rent", "house_category", "updated_at"}),
	}).Create(pref).Error, "upsert preferences")
}

func (r *UserRepository) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Create(f).Error, "create feedback")
}
