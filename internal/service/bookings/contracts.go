package bookings

import (
	"context"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	bookingRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByCoachWithFilter(ctx context.Context, filter domain.CoachBookingsFilter) ([]*domain.Booking, error)
	GetExpiredPending(ctx context.Context, now time.Time, limit uint64) ([]*domain.Booking, error)
	Transition(ctx context.Context, id int64, t bookingRepo.Transition) (*domain.Booking, error)
}

// NotificationEmitter записывает уведомления о переходах; ошибок не возвращает
type NotificationEmitter interface {
	Emit(ctx context.Context, n *domain.Notification)
}

// TransitionRecorder счетчик переходов бронирований
type TransitionRecorder interface {
	Record(action, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
