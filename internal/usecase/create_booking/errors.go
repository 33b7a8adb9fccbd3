package create_booking

import "errors"

var (
	// ErrCoachNotFound возвращается, когда коуч не найден в каталоге
	ErrCoachNotFound = errors.New("create_booking: coach not found")

	// ErrInvalidSlot возвращается, когда время не входит в текущую сетку коуча или уже прошло
	ErrInvalidSlot = errors.New("create_booking: invalid slot")

	// ErrSlotUnavailable возвращается, когда слот уже удерживается другим бронированием
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
