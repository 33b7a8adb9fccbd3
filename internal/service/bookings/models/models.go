package models

import (
	"errors"
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidRole возвращается при некорректной роли инициатора
	ErrInvalidRole = errors.New("invalid actor role")
)

// Request модели

// ConfirmBookingRequest запрос коуча на подтверждение заявки
type ConfirmBookingRequest struct {
	UserID int64 `json:"userId"`
}

// DeclineBookingRequest запрос коуча на отклонение заявки
type DeclineBookingRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// CancelBookingRequest запрос на отмену бронирования пользователем или коучем
type CancelBookingRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"` // user | coach
	Reason string `json:"reason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	CallerID int64   `json:"callerId"`
	UserID   int64   `json:"userId"`
	Status   *string `json:"status,omitempty"`
}

// GetCoachBookingsRequest запрос на получение бронирований коуча
type GetCoachBookingsRequest struct {
	CallerID        int64      `json:"callerId"`
	CoachID         int64      `json:"coachId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отклонённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCoachBookingsRequest) ToDomainFilter() (domain.CoachBookingsFilter, error) {
	filter := domain.CoachBookingsFilter{
		CoachID:         r.CoachID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	CoachID     int64   `json:"coachId"`
	UserID      int64   `json:"userId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	BookingTime string  `json:"bookingTime"` // "10:00"
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	DeclineReason      *string `json:"declineReason,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CoachID:            b.CoachID,
		UserID:             b.UserID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		BookingTime:        b.BookingTime.String(),
		Status:             string(b.Status),
		Notes:              b.Notes,
		DeclineReason:      b.DeclineReason,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledBy != nil {
		by := string(*b.CancelledBy)
		resp.CancelledBy = &by
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainActorRole конвертирует строку в роль инициатора отмены
func ToDomainActorRole(role string) (domain.ActorRole, error) {
	r := domain.ActorRole(role)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
