package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.UserID == req.CoachID {
		return fmt.Errorf("%w: coach cannot book own session", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil || req.Time == types.EndOfDay {
		return fmt.Errorf("%w: invalid time format %q", ErrInvalidInput, req.Time)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что слот еще не начался
// Дата и время слота трактуются как UTC, now приводится к UTC
func validateNotInPast(date time.Time, slot types.TimeString, now time.Time) error {
	now = now.UTC()
	y, m, d := date.Date()
	start, err := slot.OnDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, slot)
	}

	if !start.After(now) {
		return fmt.Errorf("%w: slot %s %s is in the past", ErrInvalidSlot, date.Format(domain.DateFormat), slot)
	}

	return nil
}
