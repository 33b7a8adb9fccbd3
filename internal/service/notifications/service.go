package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	notificationRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/notification"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

// Список уведомлений ограничен последними записями
const defaultListLimit = 100

// Service сервис уведомлений: запись событий переходов и чтение inbox
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Emit записывает уведомление
// Ошибка записи только логируется: уведомление не влияет на результат перехода, который его вызвал.
func (s *Service) Emit(ctx context.Context, n *domain.Notification) {
	if n == nil {
		return
	}

	created, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		s.logger.Error("Emit: failed to record %s notification for %s=%d, booking=%d: %v",
			n.Type, n.RecipientRole, n.RecipientID(), ptr.Value(n.BookingID, 0), err)
		return
	}

	s.logger.Info("Emit: recorded %s notification id=%d for %s=%d",
		created.Type, created.ID, created.RecipientRole, created.RecipientID())
}

// List возвращает уведомления получателя, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.NotificationListResponse, error) {
	owner, err := req.Owner()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching notifications for %s=%d, unreadOnly=%t", owner.Role, owner.ID, req.UnreadOnly)

	list, err := s.notificationRepo.ListByOwner(ctx, owner, req.UnreadOnly, defaultListLimit)
	if err != nil {
		s.logger.Error("List: repository error for %s=%d: %v", owner.Role, owner.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, owner)
	if err != nil {
		s.logger.Error("List: failed to count unread for %s=%d: %v", owner.Role, owner.ID, err)
		return nil, fmt.Errorf("%w: List - count unread: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(list, unread), nil
}

// MarkRead отмечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64, req *models.OwnerRequest) error {
	owner, err := req.Owner()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if id <= 0 {
		return fmt.Errorf("%w: notificationID must be positive", ErrInvalidInput)
	}

	if err := s.notificationRepo.MarkRead(ctx, id, owner); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for %s=%d", id, owner.Role, owner.ID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked read by %s=%d", id, owner.Role, owner.ID)
	return nil
}

// MarkAllRead отмечает прочитанными все уведомления получателя
func (s *Service) MarkAllRead(ctx context.Context, req *models.OwnerRequest) (*models.MarkAllReadResponse, error) {
	owner, err := req.Owner()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.notificationRepo.MarkAllRead(ctx, owner)
	if err != nil {
		s.logger.Error("MarkAllRead: repository error for %s=%d: %v", owner.Role, owner.ID, err)
		return nil, fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: marked %d notifications read for %s=%d", updated, owner.Role, owner.ID)
	return &models.MarkAllReadResponse{Updated: updated}, nil
}
