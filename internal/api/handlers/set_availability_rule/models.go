package set_availability_rule

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

// RuleRequest HTTP request model
type RuleRequest struct {
	StartTime   string `json:"startTime" validate:"required"` // "09:00"
	EndTime     string `json:"endTime" validate:"required"`   // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса, день берется из пути
func (r *RuleRequest) ToServiceRequest(userID, coachID int64, dayOfWeek int) *models.SetRuleRequest {
	return &models.SetRuleRequest{
		UserID:      userID,
		CoachID:     coachID,
		DayOfWeek:   dayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
	}
}
