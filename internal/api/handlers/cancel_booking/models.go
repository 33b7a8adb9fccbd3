package cancel_booking

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model, тело опционально
type CancelBookingRequest struct {
	Role               string  `json:"role,omitempty" validate:"omitempty,oneof=user coach"`
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// Роль по умолчанию - пользователь
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	role := r.Role
	if role == "" {
		role = string(domain.ActorUser)
	}

	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		UserID: userID,
		Role:   role,
		Reason: reason,
	}
}
