package get_available_slots

import (
	"context"
	"fmt"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// UseCase use case для получения сетки слотов коуча со статусами
type UseCase struct {
	bookingRepo BookingRepository
	generator   SlotGenerator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	generator SlotGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		generator:   generator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Сетка и бронирования читаются в одной read-only транзакции, чтобы ответ отражал один снимок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: coach=%d, date=%s", req.CoachID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.CoachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var (
		grid     []types.TimeString
		bookings []*domain.Booking
	)

	// 2. Сетка и удерживающие бронирования на дату
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		grid, err = uc.generator.Generate(txCtx, req.CoachID, req.Date)
		if err != nil {
			return fmt.Errorf("generate grid: %v", err)
		}

		if len(grid) == 0 {
			return nil
		}

		bookings, err = uc.bookingRepo.GetByCoachWithFilter(txCtx, domain.CoachBookingsFilter{
			CoachID:   req.CoachID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			return fmt.Errorf("get bookings: %v", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: coach=%d, date=%s: %v", req.CoachID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Проекция бронирований на сетку
	slots := compileSlotStatuses(grid, bookings, req.RequesterID)

	uc.logger.Info("GetAvailableSlots: compiled %d slots for coach=%d, date=%s",
		len(slots), req.CoachID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		CoachID: req.CoachID,
		Slots:   slots,
	}, nil
}
