package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	availabilityRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// Generator строит сетку часовых слотов коуча на дату
// Состояния не хранит: сетка пересчитывается при каждом вызове из правила дня недели и блокировок.
type Generator struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewGenerator создает новый генератор сетки слотов
func NewGenerator(availabilityRepo AvailabilityRepository, logger Logger) *Generator {
	return &Generator{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Generate возвращает упорядоченные времена начала слотов на дату
// Пустая сетка означает нерабочий день. Прошедшие даты не отклоняются.
func (g *Generator) Generate(ctx context.Context, coachID int64, date time.Time) ([]types.TimeString, error) {
	if coachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Правило на день недели
	rule, err := g.availabilityRepo.GetRuleByDay(ctx, coachID, date.Weekday())
	if err != nil && !errors.Is(err, availabilityRepo.ErrRuleNotFound) {
		g.logger.Error("Generate: failed to get rule for coach=%d, day=%d: %v", coachID, date.Weekday(), err)
		return nil, fmt.Errorf("%w: Generate - get rule: %v", ErrInternal, err)
	}

	if !rule.IsWorkingDay() {
		return []types.TimeString{}, nil
	}

	// 2. Все часы рабочего окна, конец не включается
	hours, err := enumerateHours(rule.StartTime, rule.EndTime)
	if err != nil {
		g.logger.Error("Generate: rule id=%d of coach=%d is malformed: %v", rule.ID, coachID, err)
		return nil, fmt.Errorf("%w: rule id=%d: %v", ErrInvalidRule, rule.ID, err)
	}

	// 3. Исключаем заблокированные часы
	blocked, err := g.availabilityRepo.GetBlockedSlots(ctx, coachID, date)
	if err != nil {
		g.logger.Error("Generate: failed to get blocked slots for coach=%d, date=%s: %v",
			coachID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Generate - get blocked slots: %v", ErrInternal, err)
	}

	return excludeBlocked(hours, blocked), nil
}

// Contains проверяет, что время входит в текущую сетку коуча на дату
func (g *Generator) Contains(ctx context.Context, coachID int64, date time.Time, slot types.TimeString) (bool, error) {
	grid, err := g.Generate(ctx, coachID, date)
	if err != nil {
		return false, err
	}

	for _, t := range grid {
		if t == slot {
			return true, nil
		}
	}

	return false, nil
}

// enumerateHours перечисляет часы t, для которых t+60 <= end
func enumerateHours(start, end types.TimeString) ([]types.TimeString, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	hours := make([]types.TimeString, 0, 24)
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(end) {
			break
		}

		hours = append(hours, current)

		if slotEnd == types.EndOfDay {
			break
		}
		current = slotEnd
	}

	return hours, nil
}

func excludeBlocked(hours []types.TimeString, blocked []*domain.BlockedSlot) []types.TimeString {
	if len(blocked) == 0 {
		return hours
	}

	blockedSet := make(map[types.TimeString]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.BlockedTime] = struct{}{}
	}

	result := make([]types.TimeString, 0, len(hours))
	for _, h := range hours {
		if _, ok := blockedSet[h]; ok {
			continue
		}
		result = append(result, h)
	}

	return result
}
