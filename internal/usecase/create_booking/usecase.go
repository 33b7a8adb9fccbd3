package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	bookingRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/booking"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/integrations/coachcatalog"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications"
)

const (
	actionRequest = "request"

	resultOK          = "ok"
	resultUnavailable = "slot_unavailable"
	resultInvalidSlot = "invalid_slot"
	resultError       = "error"
)

// UseCase use case для создания заявки на бронирование
type UseCase struct {
	bookingRepo  BookingRepository
	generator    SlotGenerator
	coachClient  CoachCatalogClient
	emitter      NotificationEmitter
	recorder     TransitionRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	generator SlotGenerator,
	coachClient CoachCatalogClient,
	emitter NotificationEmitter,
	recorder TransitionRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		generator:    generator,
		coachClient:  coachClient,
		emitter:      emitter,
		recorder:     recorder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания заявки
// Занятость слота не проверяется чтением: вставка упирается в частичный уникальный индекс,
// и нарушение индекса транслируется в ErrSlotUnavailable. Из N конкурентных заявок на один слот
// успешна ровно одна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, coach=%d, date=%s, time=%s",
		req.UserID, req.CoachID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот не должен быть в прошлом
	if err := validateNotInPast(req.Date, req.Time, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.recorder.Record(actionRequest, resultInvalidSlot)
		return nil, err
	}

	// 3. Коуч существует в каталоге
	if _, err := uc.coachClient.GetCoach(ctx, req.CoachID); err != nil {
		if errors.Is(err, coachcatalog.ErrCoachNotFound) {
			uc.logger.Warn("CreateBooking: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("CreateBooking: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Проверка сетки и вставка в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Время должно входить в текущую сетку (рабочие часы минус блокировки)
		ok, err := uc.generator.Contains(txCtx, req.CoachID, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build slot grid: %v", err)
			return fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("CreateBooking: %s %s is not in the grid of coach=%d",
				req.Date.Format(domain.DateFormat), req.Time, req.CoachID)
			return fmt.Errorf("%w: %s %s is outside working hours or blocked",
				ErrInvalidSlot, req.Date.Format(domain.DateFormat), req.Time)
		}

		// 4.2. Вставка; индекс bookings_active_slot_uniq отклоняет второй удерживающий статус
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CoachID:     req.CoachID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			BookingTime: req.Time,
			Status:      domain.StatusPending,
			Notes:       normalizeNotes(req.Notes),
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				uc.logger.Warn("CreateBooking: slot %s %s of coach=%d is already held",
					req.Date.Format(domain.DateFormat), req.Time, req.CoachID)
				return ErrSlotUnavailable
			case errors.Is(err, bookingRepo.ErrInvalidSlotTime):
				return fmt.Errorf("%w: time must be on the hour", ErrInvalidSlot)
			default:
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		uc.recorder.Record(actionRequest, resultFor(err))
		if !isKnown(err) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.recorder.Record(actionRequest, resultOK)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомление коучу после коммита; его ошибка не влияет на результат
	uc.emitter.Emit(ctx, notifications.NewBookingRequested(result))

	return &Response{
		ID:          result.ID,
		CoachID:     result.CoachID,
		UserID:      result.UserID,
		BookingDate: result.BookingDate,
		BookingTime: result.BookingTime,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, ErrSlotUnavailable):
		return resultUnavailable
	case errors.Is(err, ErrInvalidSlot):
		return resultInvalidSlot
	default:
		return resultError
	}
}

func isKnown(err error) bool {
	return errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, ErrInvalidSlot) ||
		errors.Is(err, ErrInternal)
}
