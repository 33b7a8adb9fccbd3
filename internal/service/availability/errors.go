package availability

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило на день недели не найдено
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrBlockedSlotNotFound возвращается, когда заблокированный слот не найден
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	// ErrConflict возвращается при нарушении уникальности правила или блокировки
	ErrConflict = errors.New("availability conflict")

	// ErrAccessDenied возвращается, когда пользователь управляет чужим расписанием
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
