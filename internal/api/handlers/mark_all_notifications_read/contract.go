package mark_all_notifications_read

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
)

type NotificationService interface {
	MarkAllRead(ctx context.Context, req *models.OwnerRequest) (*models.MarkAllReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
