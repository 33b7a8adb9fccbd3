package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInvalidRule возвращается, когда сохраненное правило нельзя разложить на слоты
	ErrInvalidRule = errors.New("schedule: invalid availability rule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
