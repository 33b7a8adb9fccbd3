package availability

import (
	"context"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписания коуча
type AvailabilityRepository interface {
	GetWeeklyTemplate(ctx context.Context, coachID int64) ([]*domain.AvailabilityRule, error)
	CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	UpsertRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	DeleteRule(ctx context.Context, coachID int64, day time.Weekday) error
	ListBlockedSlots(ctx context.Context, coachID int64, from, to *time.Time) ([]*domain.BlockedSlot, error)
	CreateBlockedSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, coachID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
