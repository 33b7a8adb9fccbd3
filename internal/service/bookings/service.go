package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	bookingRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/booking"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

// Действия и результаты для счетчика переходов
const (
	ActionConfirm = "confirm"
	ActionDecline = "decline"
	ActionCancel  = "cancel"
	ActionExpire  = "expire"

	ResultOK           = "ok"
	ResultInvalidState = "invalid_state"
	ResultDenied       = "denied"
	ResultError        = "error"
)

// Сколько просроченных заявок обрабатывается за один проход
const expireBatchSize = 100

// Options настройки причин по умолчанию
type Options struct {
	DefaultDeclineReason string
	DefaultCancelReason  string
}

// Service сервис жизненного цикла бронирований: подтверждение, отклонение, отмена, чтение
type Service struct {
	bookingRepo BookingRepository
	emitter     NotificationEmitter
	recorder    TransitionRecorder
	options     Options
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	emitter NotificationEmitter,
	recorder TransitionRecorder,
	options Options,
	logger Logger,
) *Service {
	if options.DefaultDeclineReason == "" {
		options.DefaultDeclineReason = domain.DefaultDeclineReason
	}
	if options.DefaultCancelReason == "" {
		options.DefaultCancelReason = domain.DefaultCancellationReason
	}

	return &Service{
		bookingRepo: bookingRepo,
		emitter:     emitter,
		recorder:    recorder,
		options:     options,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видят только его пользователь и коуч
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && booking.CoachID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, ptr.Value(req.Status, "any"))

	if req.CallerID != req.UserID {
		s.logger.Warn("GetUserBookings: user=%d cannot read history of user=%d", req.CallerID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCoachBookings получает бронирования коуча с фильтрацией по периоду и статусу
// Доступно только самому коучу
func (s *Service) GetCoachBookings(ctx context.Context, req *models.GetCoachBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetCoachBookings: fetching bookings for coach=%d, caller=%d", req.CoachID, req.CallerID)
	if req.StartDate != nil {
		logMsg += fmt.Sprintf(", from=%s", req.StartDate.Format(domain.DateFormat))
	}
	if req.EndDate != nil {
		logMsg += fmt.Sprintf(", to=%s", req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.CallerID != req.CoachID {
		s.logger.Warn("GetCoachBookings: user=%d is not coach=%d", req.CallerID, req.CoachID)
		return nil, ErrAccessDenied
	}

	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCoachBookings: invalid filter for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCoachWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCoachBookings: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCoachBookings: successfully fetched %d bookings for coach=%d", len(bookings), req.CoachID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает заявку: pending -> confirmed
// Доступно только коучу бронирования. Подтверждение не pending заявки - ошибка, а не no-op.
func (s *Service) Confirm(ctx context.Context, bookingID int64, req *models.ConfirmBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.load(ctx, "Confirm", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CoachID != req.UserID {
		s.logger.Warn("Confirm: user=%d is not coach of booking id=%d", req.UserID, bookingID)
		s.recorder.Record(ActionConfirm, ResultDenied)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		s.recorder.Record(ActionConfirm, ResultInvalidState)
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidState, booking.Status)
	}

	updated, err := s.transition(ctx, ActionConfirm, bookingID, bookingRepo.Transition{
		From: []domain.BookingStatus{domain.StatusPending},
		To:   domain.StatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: booking id=%d confirmed", bookingID)
	return models.FromDomainBooking(updated), nil
}

// Decline отклоняет заявку: pending -> declined
// Пустая причина заменяется причиной по умолчанию. Слот сразу освобождается.
func (s *Service) Decline(ctx context.Context, bookingID int64, req *models.DeclineBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Decline: declining booking id=%d by user=%d", bookingID, req.UserID)

	reason, err := s.normalizeReason(req.Reason, s.options.DefaultDeclineReason)
	if err != nil {
		return nil, err
	}

	booking, err := s.load(ctx, "Decline", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CoachID != req.UserID {
		s.logger.Warn("Decline: user=%d is not coach of booking id=%d", req.UserID, bookingID)
		s.recorder.Record(ActionDecline, ResultDenied)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeDeclined() {
		s.logger.Warn("Decline: booking id=%d cannot be declined, status=%s", bookingID, booking.Status)
		s.recorder.Record(ActionDecline, ResultInvalidState)
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidState, booking.Status)
	}

	updated, err := s.transition(ctx, ActionDecline, bookingID, bookingRepo.Transition{
		From:          []domain.BookingStatus{domain.StatusPending},
		To:            domain.StatusDeclined,
		DeclineReason: &reason,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Decline: booking id=%d declined, reason=%q", bookingID, reason)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование: pending|confirmed -> cancelled
// Пользователь отменяет только своё бронирование, коуч только бронирование к себе.
// Отмена коучем записывает уведомление пользователю с причиной.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d as %s", bookingID, req.UserID, req.Role)

	role, err := models.ToDomainActorRole(req.Role)
	if err != nil {
		s.logger.Warn("Cancel: invalid role=%q for booking id=%d", req.Role, bookingID)
		return nil, fmt.Errorf("%w: role must be user or coach", ErrInvalidInput)
	}

	reason, err := s.normalizeReason(req.Reason, s.options.DefaultCancelReason)
	if err != nil {
		return nil, err
	}

	booking, err := s.load(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if !canActAs(booking, role, req.UserID) {
		s.logger.Warn("Cancel: user=%d cannot cancel booking id=%d as %s", req.UserID, bookingID, role)
		s.recorder.Record(ActionCancel, ResultDenied)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		s.recorder.Record(ActionCancel, ResultInvalidState)
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidState, booking.Status)
	}

	updated, err := s.transition(ctx, ActionCancel, bookingID, bookingRepo.Transition{
		From:               domain.HoldingStatuses,
		To:                 domain.StatusCancelled,
		CancellationReason: &reason,
		CancelledBy:        &role,
	})
	if err != nil {
		return nil, err
	}

	if role == domain.ActorCoach {
		s.emitter.Emit(ctx, notifications.NewBookingCancelledByCoach(updated))
	}

	s.logger.Info("Cancel: booking id=%d cancelled by %s", bookingID, role)
	return models.FromDomainBooking(updated), nil
}

// ExpireStale отменяет pending заявки, чей час уже начался, и уведомляет пользователей
// Заявка, которую коуч успел подтвердить или отклонить, пропускается.
func (s *Service) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.bookingRepo.GetExpiredPending(ctx, now, expireBatchSize)
	if err != nil {
		s.logger.Error("ExpireStale: failed to list expired requests: %v", err)
		return 0, fmt.Errorf("%w: ExpireStale - repository error: %v", ErrInternal, err)
	}

	expired := 0
	system := domain.ActorSystem
	reason := domain.ExpiredCancellationReason

	for _, b := range stale {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		updated, err := s.bookingRepo.Transition(ctx, b.ID, bookingRepo.Transition{
			From:               []domain.BookingStatus{domain.StatusPending},
			To:                 domain.StatusCancelled,
			CancellationReason: &reason,
			CancelledBy:        &system,
		})
		if errors.Is(err, bookingRepo.ErrStatusMismatch) || errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.recorder.Record(ActionExpire, ResultInvalidState)
			continue
		}
		if err != nil {
			s.recorder.Record(ActionExpire, ResultError)
			s.logger.Error("ExpireStale: failed to expire booking id=%d: %v", b.ID, err)
			continue
		}

		s.recorder.Record(ActionExpire, ResultOK)
		s.emitter.Emit(ctx, notifications.NewBookingExpired(updated))
		expired++
	}

	if expired > 0 {
		s.logger.Info("ExpireStale: expired %d of %d stale requests", expired, len(stale))
	}

	return expired, nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

// transition выполняет условный UPDATE; проигранная гонка с другим переходом дает ErrInvalidState
func (s *Service) transition(ctx context.Context, action string, id int64, t bookingRepo.Transition) (*domain.Booking, error) {
	updated, err := s.bookingRepo.Transition(ctx, id, t)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStatusMismatch):
			s.logger.Warn("%s: booking id=%d changed status concurrently", action, id)
			s.recorder.Record(action, ResultInvalidState)
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidState)
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.recorder.Record(action, ResultError)
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("%s: repository error for booking id=%d: %v", action, id, err)
			s.recorder.Record(action, ResultError)
			return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, action, err)
		}
	}

	s.recorder.Record(action, ResultOK)
	return updated, nil
}

func (s *Service) normalizeReason(reason, fallback string) (string, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
		return "", fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	if reason == "" {
		return fallback, nil
	}
	return reason, nil
}

func canActAs(b *domain.Booking, role domain.ActorRole, userID int64) bool {
	switch role {
	case domain.ActorUser:
		return b.UserID == userID
	case domain.ActorCoach:
		return b.CoachID == userID
	default:
		return false
	}
}
