package repository

import (
	"context"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
)

type ManagerRepository struct {
	db *gorm.DB
}

func NewManagerRepository(db *gorm.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

// FetchActiveManagersWithHouses loads every manager with estates, active
// buildings only, and each house's reviews, facilities, views and gallery.
// Managers come back in id order.
func (r *ManagerRepository) FetchActiveManagersWithHouses(ctx context.Context) ([]models.Manager, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var managers []models.Manager
	err := r.db.WithContext(ctx).
		Preload("Estates", func(db *gorm.DB) *gorm.DB { return db.Order("estates.id") }).
		Preload("Estates.Buildings", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.BuildingActive).Order("buildings.id")
		}).
		Preload("Estates.Buildings.Houses", func(db *gorm.DB) *gorm.DB { return db.Order("houses.id") }).
		Preload("Estates.Buildings.Houses.Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") }).
		Preload("Estates.Buildings.Houses.Reviews.User").
		Preload("Estates.Buildings.Houses.Facilities").
		Preload("Estates.Buildings.Houses.HouseView").
		Preload("Estates.Buildings.Houses.Gallery").
		Order("managers.id").
		Find(&managers).Error
	if err != nil {
		return nil, wrap(err, "fetch managers")
	}
	return managers, nil
}

func (r *ManagerRepository) FindByID(ctx context.Context, id uint) (*models.Manager, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var m models.Manager
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, wrap(err, "find manager")
	}
	return &m, nil
}

func (r *ManagerRepository) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Create(e).Error, "create enquiry")
}

func (r *ManagerRepository) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Create(c).Error, "create complaint")
}
