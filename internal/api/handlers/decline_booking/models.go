package decline_booking

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
)

// DeclineBookingRequest HTTP request model, тело опционально
type DeclineBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *DeclineBookingRequest) ToServiceRequest(userID int64) *models.DeclineBookingRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.DeclineBookingRequest{
		UserID: userID,
		Reason: reason,
	}
}
