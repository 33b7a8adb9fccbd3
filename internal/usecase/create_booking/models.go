package create_booking

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID  int64            // ID пользователя
	CoachID int64            // ID коуча
	Date    time.Time        // Дата бронирования (без времени)
	Time    types.TimeString // Начало часового слота (например, "10:00")
	Notes   *string          // Комментарий к заявке (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	CoachID     int64            // ID коуча
	UserID      int64            // ID пользователя
	BookingDate time.Time        // Дата бронирования
	BookingTime types.TimeString // Начало слота
	Status      string           // Статус бронирования (pending)
	Notes       *string          // Комментарий

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
