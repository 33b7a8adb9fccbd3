package create_availability_rule

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

// RuleRequest HTTP request model
type RuleRequest struct {
	DayOfWeek   *int   `json:"dayOfWeek" validate:"required,min=0,max=6"` // 0 = воскресенье
	StartTime   string `json:"startTime" validate:"required"`             // "09:00"
	EndTime     string `json:"endTime" validate:"required"`               // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RuleRequest) ToServiceRequest(userID, coachID int64) *models.SetRuleRequest {
	return &models.SetRuleRequest{
		UserID:      userID,
		CoachID:     coachID,
		DayOfWeek:   *r.DayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
	}
}
