package notifications

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByOwner(ctx context.Context, owner domain.NotificationOwner, unreadOnly bool, limit uint64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, owner domain.NotificationOwner) (int64, error)
	MarkRead(ctx context.Context, id int64, owner domain.NotificationOwner) error
	MarkAllRead(ctx context.Context, owner domain.NotificationOwner) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
