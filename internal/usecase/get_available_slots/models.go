package get_available_slots

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	RequesterID *int64    // ID запрашивающего пользователя (опционально, влияет только на Mine)
	CoachID     int64     // ID коуча
	Date        time.Time // Дата (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date    time.Time           // Дата, на которую запрашивались слоты
	CoachID int64               // ID коуча
	Slots   []domain.SlotStatus // Слоты в порядке времени, без дубликатов
}
