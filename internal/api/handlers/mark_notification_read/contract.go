package mark_notification_read

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
)

type NotificationService interface {
	MarkRead(ctx context.Context, id int64, req *models.OwnerRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
