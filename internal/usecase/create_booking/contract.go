package create_booking

import (
	"context"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/integrations/coachcatalog"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotGenerator сетка слотов коуча на дату
type SlotGenerator interface {
	Contains(ctx context.Context, coachID int64, date time.Time, slot types.TimeString) (bool, error)
}

// CoachCatalogClient интерфейс клиента каталога коучей
type CoachCatalogClient interface {
	GetCoach(ctx context.Context, coachID int64) (*coachcatalog.Coach, error)
}

// NotificationEmitter записывает уведомления; ошибок не возвращает
type NotificationEmitter interface {
	Emit(ctx context.Context, n *domain.Notification)
}

// TransitionRecorder счетчик переходов бронирований
type TransitionRecorder interface {
	Record(action, result string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
