package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	availabilityRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

// Service сервис управления недельным расписанием и блокировками коуча
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetWeeklyTemplate возвращает недельное расписание коуча
// Публичный метод - доступен всем
func (s *Service) GetWeeklyTemplate(ctx context.Context, coachID int64) (*models.WeeklyTemplateResponse, error) {
	if coachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	rules, err := s.availabilityRepo.GetWeeklyTemplate(ctx, coachID)
	if err != nil {
		s.logger.Error("GetWeeklyTemplate: repository error for coach=%d: %v", coachID, err)
		return nil, fmt.Errorf("%w: GetWeeklyTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeeklyTemplate: fetched %d rules for coach=%d", len(rules), coachID)
	return models.FromDomainWeeklyTemplate(coachID, rules), nil
}

// CreateRule создает правило на день недели, на котором правила еще нет
// Повторное правило на тот же день возвращает ErrConflict
func (s *Service) CreateRule(ctx context.Context, req *models.SetRuleRequest) (*models.RuleResponse, error) {
	rule, err := s.buildRule(req)
	if err != nil {
		s.logger.Warn("CreateRule: validation failed for coach=%d: %v", req.CoachID, err)
		return nil, err
	}

	created, err := s.availabilityRepo.CreateRule(ctx, rule)
	if err != nil {
		return nil, s.translateRuleError("CreateRule", rule, err)
	}

	s.logger.Info("CreateRule: created rule id=%d for coach=%d, day=%s, %s-%s",
		created.ID, created.CoachID, created.DayOfWeek, created.StartTime, created.EndTime)
	return models.FromDomainRule(created), nil
}

// SetRule создает или заменяет правило на день недели
func (s *Service) SetRule(ctx context.Context, req *models.SetRuleRequest) (*models.RuleResponse, error) {
	rule, err := s.buildRule(req)
	if err != nil {
		s.logger.Warn("SetRule: validation failed for coach=%d: %v", req.CoachID, err)
		return nil, err
	}

	saved, err := s.availabilityRepo.UpsertRule(ctx, rule)
	if err != nil {
		return nil, s.translateRuleError("SetRule", rule, err)
	}

	s.logger.Info("SetRule: saved rule id=%d for coach=%d, day=%s, %s-%s, available=%t",
		saved.ID, saved.CoachID, saved.DayOfWeek, saved.StartTime, saved.EndTime, saved.IsAvailable)
	return models.FromDomainRule(saved), nil
}

// DeleteRule удаляет правило на день недели, день становится нерабочим
func (s *Service) DeleteRule(ctx context.Context, req *models.DeleteRuleRequest) error {
	if err := checkOwner(req.UserID, req.CoachID); err != nil {
		s.logger.Warn("DeleteRule: user=%d cannot manage coach=%d: %v", req.UserID, req.CoachID, err)
		return err
	}
	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be in [%d..%d]", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	day := time.Weekday(req.DayOfWeek)
	if err := s.availabilityRepo.DeleteRule(ctx, req.CoachID, day); err != nil {
		if errors.Is(err, availabilityRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: no rule for coach=%d, day=%s", req.CoachID, day)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for coach=%d, day=%s: %v", req.CoachID, day, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: deleted rule for coach=%d, day=%s", req.CoachID, day)
	return nil
}

// ListBlockedSlots возвращает блокировки коуча за период
// Публичный метод - доступен всем
func (s *Service) ListBlockedSlots(ctx context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	if req.CoachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	slots, err := s.availabilityRepo.ListBlockedSlots(ctx, req.CoachID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListBlockedSlots: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: ListBlockedSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlockedSlots: fetched %d blocked slots for coach=%d", len(slots), req.CoachID)
	return models.FromDomainBlockedSlotList(req.CoachID, slots), nil
}

// BlockSlot блокирует один час коуча на дату
// Существующие бронирования на этот час не затрагиваются
func (s *Service) BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	if err := checkOwner(req.UserID, req.CoachID); err != nil {
		s.logger.Warn("BlockSlot: user=%d cannot manage coach=%d: %v", req.UserID, req.CoachID, err)
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	blockedTime, err := parseBlockedTime(req.Time)
	if err != nil {
		return nil, err
	}
	if err := validateReason(req.Reason); err != nil {
		return nil, err
	}

	created, err := s.availabilityRepo.CreateBlockedSlot(ctx, &domain.BlockedSlot{
		CoachID:     req.CoachID,
		BlockedDate: req.Date,
		BlockedTime: blockedTime,
		Reason:      req.Reason,
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateBlockedSlot) {
			s.logger.Warn("BlockSlot: %s %s already blocked for coach=%d",
				req.Date.Format(domain.DateFormat), blockedTime, req.CoachID)
			return nil, fmt.Errorf("%w: slot is already blocked", ErrConflict)
		}
		s.logger.Error("BlockSlot: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: blocked %s %s for coach=%d, id=%d",
		created.BlockedDate.Format(domain.DateFormat), created.BlockedTime, created.CoachID, created.ID)
	return models.FromDomainBlockedSlot(created), nil
}

// UnblockSlot снимает блокировку часа
func (s *Service) UnblockSlot(ctx context.Context, req *models.UnblockSlotRequest) error {
	if err := checkOwner(req.UserID, req.CoachID); err != nil {
		s.logger.Warn("UnblockSlot: user=%d cannot manage coach=%d: %v", req.UserID, req.CoachID, err)
		return err
	}
	if req.BlockedSlotID <= 0 {
		return fmt.Errorf("%w: blockedSlotID must be positive", ErrInvalidInput)
	}

	if err := s.availabilityRepo.DeleteBlockedSlot(ctx, req.CoachID, req.BlockedSlotID); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("UnblockSlot: blocked slot id=%d not found for coach=%d", req.BlockedSlotID, req.CoachID)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("UnblockSlot: repository error for blocked slot id=%d: %v", req.BlockedSlotID, err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: removed blocked slot id=%d for coach=%d", req.BlockedSlotID, req.CoachID)
	return nil
}

// Вспомогательные методы

func (s *Service) buildRule(req *models.SetRuleRequest) (*domain.AvailabilityRule, error) {
	if err := checkOwner(req.UserID, req.CoachID); err != nil {
		return nil, err
	}

	start, end, err := parseWindow(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityRule{
		CoachID:     req.CoachID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: ptr.Value(req.IsAvailable, true),
	}, nil
}

func (s *Service) translateRuleError(op string, rule *domain.AvailabilityRule, err error) error {
	switch {
	case errors.Is(err, availabilityRepo.ErrDuplicateRule):
		s.logger.Warn("%s: rule for coach=%d, day=%s already exists", op, rule.CoachID, rule.DayOfWeek)
		return fmt.Errorf("%w: rule for %s already exists", ErrConflict, rule.DayOfWeek)
	case errors.Is(err, availabilityRepo.ErrInvalidTimeRange):
		s.logger.Warn("%s: invalid time range for coach=%d: %v", op, rule.CoachID, err)
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	default:
		s.logger.Error("%s: repository error for coach=%d, day=%s: %v", op, rule.CoachID, rule.DayOfWeek, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
