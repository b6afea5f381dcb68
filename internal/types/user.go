package types

import "github.com/banit/househunt-backend/internal/models"

// NotificationGroup holds one day's notifications; Date is YYYY-MM-DD.
type NotificationGroup struct {
	Date          string                `json:"date"`
	Notifications []models.Notification `json:"notifications"`
}

// NotificationPage paginates by day, not by notification.
type NotificationPage struct {
	Groups     []NotificationGroup `json:"notification_group"`
	Pagination Pagination          `json:"pagination"`
}
