package repository

import (
	"context"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add stores the favorite, leaving an existing one untouched.
func (r *FavoriteRepository) Add(ctx context.Context, userID, houseID uint) (*models.Favorite, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	fav := models.Favorite{UserID: userID, HouseID: houseID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
	if err != nil {
		return nil, wrap(err, "add favorite")
	}

	var stored models.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ? AND house_id = ?", userID, houseID).First(&stored).Error; err != nil {
		return nil, wrap(err, "read favorite")
	}
	return &stored, nil
}

// Remove deletes the favorite and reports ErrNotFound when there was none.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, houseID uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND house_id = ?", userID, houseID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return wrap(res.Error, "remove favorite")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "remove favorite")
	}
	return nil
}

// Houses lists the user's favorite houses with their full graph.
func (r *FavoriteRepository) Houses(ctx context.Context, userID uint) ([]models.House, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var houses []models.House
	err := preloadHouse(r.db.WithContext(ctx)).
		Joins("JOIN favorites ON favorites.house_id = houses.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id").
		Find(&houses).Error
	if err != nil {
		return nil, wrap(err, "list favorites")
	}
	return houses, nil
}
