package repository

import (
	"context"

	"github.com/banit/househunt-backend/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return wrap(r.db.WithContext(ctx).Create(n).Error, "create notification")
}

// ForUser returns the user's own notifications and broadcasts, newest
// first.
func (r *NotificationRepository) ForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("recipient IN ?", []string{models.UserRecipient(userID), models.NotificationBroadcast}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, wrap(err, "fetch notifications")
	}
	return notifications, nil
}
