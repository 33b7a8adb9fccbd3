package coachcatalog

import "errors"

var (
	// ErrCoachNotFound возвращается, когда каталог не знает коуча
	ErrCoachNotFound = errors.New("coach not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("coachcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("coachcatalog client: invalid response")
)
