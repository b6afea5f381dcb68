package repository

import (
	"context"
	"strings"
	"time"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HouseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

func (r *HouseRepository) FetchActiveBuildings(ctx context.Context) ([]models.Building, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var buildings []models.Building
	err := r.db.WithContext(ctx).
		Where("status = ?", models.BuildingActive).
		Order("id").
		Find(&buildings).Error
	if err != nil {
		return nil, wrap(err, "fetch buildings")
	}
	return buildings, nil
}

func (r *HouseRepository) FindByID(ctx context.Context, id uint) (*models.House, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var house models.House
	if err := preloadHouse(r.db.WithContext(ctx)).First(&house, id).Error; err != nil {
		return nil, wrap(err, "find house")
	}
	return &house, nil
}

func (r *HouseRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.House{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrap(err, "check house")
	}
	return count > 0, nil
}

// VacantHouseIDs lists ids of listable houses in id order.
func (r *HouseRepository) VacantHouseIDs(ctx context.Context) ([]uint, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []uint
	err := vacantInActiveBuildings(r.db.WithContext(ctx).Model(&models.House{})).
		Order("houses.id").
		Pluck("houses.id", &ids).Error
	if err != nil {
		return nil, wrap(err, "list vacant houses")
	}
	return ids, nil
}

// FindByIDs loads houses with their full graph, returned in the order of
// ids. Unknown ids are skipped.
func (r *HouseRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.House, error) {
	if len(ids) == 0 {
		return []models.House{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var houses []models.House
	if err := preloadHouse(r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&houses).Error; err != nil {
		return nil, wrap(err, "load houses")
	}

	byID := make(map[uint]models.House, len(houses))
	for _, h := range houses {
		byID[h.ID] = h
	}
	ordered := make([]models.House, 0, len(houses))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered, nil
}

// FindInBuildings loads every house of the given buildings.
func (r *HouseRepository) FindInBuildings(ctx context.Context, buildingIDs []uint) ([]models.House, error) {
	if len(buildingIDs) == 0 {
		return []models.House{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var houses []models.House
	err := preloadHouse(r.db.WithContext(ctx)).
		Where("building_id IN ?", buildingIDs).
		Order("id").
		Find(&houses).Error
	if err != nil {
		return nil, wrap(err, "load houses by building")
	}
	return houses, nil
}

// MatchPreferences returns listable houses whose rent falls in the
// preferred range or whose category matches.
func (r *HouseRepository) MatchPreferences(ctx context.Context, pref models.UserPreference) ([]models.House, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []uint
	err := vacantInActiveBuildings(r.db.WithContext(ctx).Model(&models.House{})).
		Where("(houses.rent BETWEEN ? AND ?) OR houses.category = ?", pref.MinRent, pref.MaxRent, pref.HouseCategory).
		Order("houses.id").
		Pluck("houses.id", &ids).Error
	if err != nil {
		return nil, wrap(err, "match preferences")
	}
	return r.FindByIDs(ctx, ids)
}

// Search matches keyword against building and estate names and
// descriptions and facility names, case-insensitively.
func (r *HouseRepository) Search(ctx context.Context, keyword string) ([]models.House, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pattern := "%" + strings.ToLower(keyword) + "%"

	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.House{}).
		Joins("JOIN buildings ON buildings.id = houses.building_id").
		Joins("JOIN estates ON estates.id = buildings.estate_id").
		Joins("LEFT JOIN facilities ON facilities.house_id = houses.id").
		Where("buildings.status = ?", models.BuildingActive).
		Where(
			r.db.Where("LOWER(buildings.name) LIKE ?", pattern).
				Or("LOWER(buildings.description) LIKE ?", pattern).
				Or("LOWER(estates.name) LIKE ?", pattern).
				Or("LOWER(estates.description) LIKE ?", pattern).
				Or("LOWER(facilities.name) LIKE ?", pattern),
		).
		Distinct().
		Order("houses.id").
		Pluck("houses.id", &ids).Error
	if err != nil {
		return nil, wrap(err, "search houses")
	}
	return r.FindByIDs(ctx, ids)
}

// IncrementHouseView bumps the house's view counter in one statement,
// creating the row at 1 on first view.
func (r *HouseRepository) IncrementHouseView(ctx context.Context, houseID uint) (*models.HouseView, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	view := models.HouseView{HouseID: houseID, Counts: 1}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "house_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"counts":     gorm.Expr("house_views.counts + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&view).Error
	if err != nil {
		return nil, wrap(err, "increment house view")
	}

	var stored models.HouseView
	if err := r.db.WithContext(ctx).Where("house_id = ?", houseID).First(&stored).Error; err != nil {
		return nil, wrap(err, "read house view")
	}
	return &stored, nil
}
