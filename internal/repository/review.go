package repository

import (
	"context"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) FetchReviewsForHouse(ctx context.Context, houseID uint) ([]models.Review, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("house_id = ?", houseID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, wrap(err, "fetch reviews")
	}
	return reviews, nil
}

// UpsertReview writes the user's review of a house in one statement. A
// second review by the same user replaces message and rating.
func (r *ReviewRepository) UpsertReview(ctx context.Context, userID, houseID uint, message string, rating int) (*models.Review, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	review := models.Review{UserID: userID, HouseID: houseID, Message: message, Rating: rating}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "house_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"message", "rating", "updated_at"}),
	}).Create(&review).Error
	if err != nil {
		return nil, wrap(err, "upsert review")
	}

	var stored models.Review
	err = r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND house_id = ?", userID, houseID).
		First(&stored).Error
	if err != nil {
		return nil, wrap(err, "read review")
	}
	return &stored, nil
}
