package availability

import (
	"fmt"
	"unicode/utf8"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// checkOwner проверяет, что пользователь управляет своим расписанием
func checkOwner(userID, coachID int64) error {
	if coachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if userID != coachID {
		return ErrAccessDenied
	}
	return nil
}

// parseWindow валидирует рабочее окно правила
// Начало выровнено по часу, конец выровнен по часу или равен 24:00, начало раньше конца.
func parseWindow(day int, start, end string) (types.TimeString, types.TimeString, error) {
	if day < domain.MinDayOfWeek || day > domain.MaxDayOfWeek {
		return "", "", fmt.Errorf("%w: dayOfWeek must be in [%d..%d]", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	startTime, err := types.NewTimeStringFromString(start)
	if err != nil || startTime == types.EndOfDay {
		return "", "", fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, start)
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, end)
	}

	if !startTime.IsWholeHour() {
		return "", "", fmt.Errorf("%w: startTime must be on the hour", ErrInvalidInput)
	}
	if endTime != types.EndOfDay && !endTime.IsWholeHour() {
		return "", "", fmt.Errorf("%w: endTime must be on the hour", ErrInvalidInput)
	}

	if !startTime.IsBefore(endTime) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return startTime, endTime, nil
}

// parseBlockedTime валидирует час блокировки
func parseBlockedTime(value string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil || t == types.EndOfDay || !t.IsWholeHour() {
		return "", fmt.Errorf("%w: time must be an hour in HH:00 format", ErrInvalidInput)
	}
	return t, nil
}

func validateReason(reason string) error {
	if utf8.RuneCountInString(reason) > domain.MaxBlockedSlotReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxBlockedSlotReasonLength)
	}
	return nil
}
