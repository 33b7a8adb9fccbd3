package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

var (
	// ErrInvalidOwner возвращается при некорректном получателе уведомлений
	ErrInvalidOwner = errors.New("invalid input data")
)

// Request модели

// OwnerRequest идентифицирует inbox: вызывающий пользователь и его роль
type OwnerRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Owner конвертирует запрос в domain.NotificationOwner с валидацией
func (r *OwnerRequest) Owner() (domain.NotificationOwner, error) {
	if r == nil || r.UserID <= 0 {
		return domain.NotificationOwner{}, fmt.Errorf("%w: userID must be positive", ErrInvalidOwner)
	}

	role := domain.RecipientRole(r.Role)
	if r.Role == "" {
		role = domain.RecipientCoach
	}
	if !role.IsValid() {
		return domain.NotificationOwner{}, fmt.Errorf("%w: unknown role %q", ErrInvalidOwner, r.Role)
	}

	return domain.NotificationOwner{ID: r.UserID, Role: role}, nil
}

// ListRequest запрос списка уведомлений
type ListRequest struct {
	OwnerRequest
	UnreadOnly bool `json:"unreadOnly"`
}

// Response модели

// NotificationResponse уведомление в ответе
type NotificationResponse struct {
	ID            int64     `json:"id"`
	CoachID       int64     `json:"coachId"`
	UserID        int64     `json:"userId"`
	RecipientRole string    `json:"recipientRole"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	BookingID     *int64    `json:"bookingId,omitempty"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// MarkAllReadResponse ответ на отметку всех уведомлений
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		CoachID:       n.CoachID,
		UserID:        n.UserID,
		RecipientRole: string(n.RecipientRole),
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		BookingID:     n.BookingID,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(list []*domain.Notification, unread int64) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
		UnreadCount:   unread,
	}

	for _, n := range list {
		if n == nil {
			continue
		}
		resp.Notifications = append(resp.Notifications, FromDomainNotification(n))
	}

	return resp
}
