package schedule

import (
	"context"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

// AvailabilityRepository источник недельного расписания и блокировок коуча
type AvailabilityRepository interface {
	GetRuleByDay(ctx context.Context, coachID int64, day time.Weekday) (*domain.AvailabilityRule, error)
	GetBlockedSlots(ctx context.Context, coachID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
