// Package repository is the data-access layer. Every call takes a context
// and runs under QueryTimeout.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
)

const QueryTimeout = 30 * time.Second

var (
	ErrNotFound      = errors.New("record not found")
	ErrDatabaseQuery = errors.New("database query failed")
)

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}

// wrap maps gorm's not-found to ErrNotFound and tags everything else as a
// query failure.
func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseQuery, op, err)
}

// preloadHouse loads everything the house formatter reads, including the
// building → estate → manager chain.
func preloadHouse(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.id") }).
		Preload("Reviews.User").
		Preload("Facilities").
		Preload("HouseView").
		Preload("Gallery").
		Preload("Building.Estate.Manager")
}

// vacantInActiveBuildings restricts a houses query to houses with at least
// one vacancy in an active building.
func vacantInActiveBuildings(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN buildings ON buildings.id = houses.building_id").
		Where("buildings.status = ? AND houses.vacancies > 0", models.BuildingActive)
}
