package availability

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило доступности для дня недели не найдено
	ErrRuleNotFound = errors.New("availability.repository: availability rule not found")

	// ErrBlockedSlotNotFound возвращается, когда заблокированный слот не найден
	ErrBlockedSlotNotFound = errors.New("availability.repository: blocked slot not found")

	// ErrDuplicateRule возвращается при попытке создать второе правило на тот же день недели
	ErrDuplicateRule = errors.New("availability.repository: duplicate rule for coach and day of week")

	// ErrDuplicateBlockedSlot возвращается при повторной блокировке того же часа
	ErrDuplicateBlockedSlot = errors.New("availability.repository: slot already blocked")

	// ErrInvalidTimeRange возвращается, когда start_time не меньше end_time
	ErrInvalidTimeRange = errors.New("availability.repository: invalid time range")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
