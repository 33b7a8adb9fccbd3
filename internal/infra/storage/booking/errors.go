package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда слот уже удерживается другим бронированием
	// (нарушение частичного уникального индекса bookings_active_slot_uniq)
	ErrSlotTaken = errors.New("booking.repository: slot already held")

	// ErrStatusMismatch возвращается, когда условное обновление не нашло строку в ожидаемом статусе
	ErrStatusMismatch = errors.New("booking.repository: booking is not in expected status")

	// ErrInvalidSlotTime возвращается, когда время не выровнено по часу (CHECK ограничение)
	ErrInvalidSlotTime = errors.New("booking.repository: booking time is not hour aligned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
